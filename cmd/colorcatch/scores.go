package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/platform/tui"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresClear       bool
	flagScoresInteractive bool
	flagScoresSession     string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top scores for a difficulty, or a summary of every
difficulty when none is given. With --session, list the games one
session played, newest first. Local games are recorded as "local";
SSH players get one session id per connection.

Examples:
  colorcatch scores
  colorcatch scores easy
  colorcatch scores hard --limit 25
  colorcatch scores medium --clear
  colorcatch scores --session local
  colorcatch scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the difficulty")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "Show the games played by one session")
}

func runScores(_ *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		preset, err := config.ParseDifficulty(args[0])
		if err != nil || !registry.Exists(string(preset)) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'colorcatch list' to see difficulties.")
			os.Exit(1)
		}
		gameID = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresInteractive:
		cfg := runtimeConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, gameID)
	case flagScoresClear && gameID != "":
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", gameID)
		}
	case flagScoresClear:
		err = errors.New("--clear needs a difficulty")
	case flagScoresSession != "":
		err = printSessionScores(os.Stdout, store, flagScoresSession, flagScoresLimit)
	case gameID != "":
		err = printTopScores(store, gameID)
	default:
		err = printSummary(store)
	}

	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'colorcatch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "Rank", "Score", "Stage", "Date", "Session")
	fmt.Printf("  %-4s  %-6s  %-6s  %-16s  %s\n", "----", "-----", "-----", "----", "-------")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.Stage, dateStr, entry.Session)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Best stage: %d  Games: %d  Average: %.1f\n",
		stats.HighScore, stats.BestStage, stats.GamesCount, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %s\n", "ID", "Best", "Stage", "Games", "Last played")
	fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %s\n", "--", "----", "-----", "-----", "-----------")

	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %s\n", g.ID, "-", "-", "0", "never")
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-6d  %-6d  %s\n",
			g.ID, st.HighScore, st.BestStage, st.GamesCount, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printSessionScores lists the games recorded for one session, newest first.
func printSessionScores(w io.Writer, store *storage.Store, session string, limit int) error {
	scores, err := store.SessionScores(session, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Games - session %s\n", session)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No games recorded for this session.")
		return nil
	}

	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %s\n", "ID", "Score", "Stage", "Date")
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %s\n", "--", "-----", "-----", "----")

	for _, entry := range scores {
		fmt.Fprintf(w, "  %-8s  %-6d  %-6d  %s\n",
			entry.GameID, entry.Score, entry.Stage, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
