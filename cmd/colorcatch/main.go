// colorcatch is a terminal tile-matching game: catch pairs of colored tiles
// before the countdown runs out.
//
// Usage:
//
//	colorcatch                      - Start the main menu
//	colorcatch menu                 - Start the main menu
//	colorcatch play [difficulty]    - Play easy, medium or hard (picker if omitted)
//	colorcatch list                 - List difficulties
//	colorcatch scores [difficulty]  - Show high scores
//	colorcatch config               - Print the effective game config
//	colorcatch serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.colorcatch/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/games/colorcatch"
	"github.com/vovakirdan/color-catch/internal/platform/tui"
)

// interactiveAnnotation marks commands that take over the terminal.
// Their logs go to --log-file only, never to stderr.
const interactiveAnnotation = "interactive"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorcatch",
	Short: "Color Catch - match color pairs before the clock runs out",
	Long: `Color Catch is a tile-matching game for the terminal.

Tap two tiles of the same color to catch them. Clear the board to advance
a stage; the clock restarts five seconds shorter each time.

Available commands:
  menu     - Main menu (default)
  play     - Play a difficulty directly
  list     - Show difficulties
  scores   - View high scores
  config   - Print the effective game config
  serve    - Start SSH server for remote play

Examples:
  colorcatch
  colorcatch play hard
  colorcatch scores easy
  colorcatch serve --ssh :2222`,
	Annotations:       map[string]string{interactiveAnnotation: "true"},
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	SilenceUsage: true,
	Run:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorcatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and applies the game config before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	} else if cmd.Annotations[interactiveAnnotation] == "true" {
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorcatch",
		Level:           level,
	})
	colorcatch.SetLogger(logger)
	tui.SetLogger(logger)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	colorcatch.SetConfigPath(flagConfig)
	tui.SetDefaultDifficulty(string(cfg.Difficulty))
	logger.Debug("config loaded", "path", flagConfig, "difficulty", cfg.Difficulty)

	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
