package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/platform/tui"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a game",
	Long: `Start a game on the given difficulty, or pick one from the
difficulty popover when omitted.

Difficulties:
  easy   - 3×3 board
  medium - 4×4 board
  hard   - 5×5 board

Controls:
  Mouse click        - Tap a tile
  Arrows/h/j/k/l     - Move the cursor
  Space/Enter        - Tap the tile under the cursor
  R                  - Restart
  P                  - Pause
  B/Esc              - Leave (when paused or after game over)
  Q/Ctrl+C           - Quit

Examples:
  colorcatch play
  colorcatch play medium
  colorcatch play hard --seed 42
  colorcatch play easy --config ./my-colorcatch.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{interactiveAnnotation: "true"},
	Run:         runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		preset, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'colorcatch list' to see difficulties.")
			os.Exit(1)
		}
		gameID = string(preset)
	}

	cfg := runtimeConfig()
	store := openStore()

	err := playGame(store, cfg, gameID)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one game, asking for the difficulty first when gameID is empty.
func playGame(store *storage.Store, cfg core.RuntimeConfig, gameID string) error {
	if gameID == "" {
		var err error
		gameID, cfg, err = tui.RunDifficultyPicker(store, cfg)
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting game", "difficulty", gameID, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
