package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties",
	Long:  `Shows every difficulty with its board size and best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional here
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Warn("could not read stats", "error", err)
		}
		store.Close()
	} else {
		logger.Debug("no scores database", "path", flagDBPath, "error", err)
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	fmt.Printf("  %-8s  %-5s  %-5s  %s\n", "ID", "Board", "Best", "Title")
	fmt.Printf("  %-8s  %-5s  %-5s  %s\n", "--", "-----", "----", "-----")

	for _, g := range games {
		board := "?"
		if p, err := config.ParseDifficulty(g.ID); err == nil {
			board = fmt.Sprintf("%d×%d", p.GridSize(), p.GridSize())
		}
		best := "-"
		if st, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d", st.HighScore)
		}
		fmt.Printf("  %-8s  %-5s  %-5s  %s\n", g.ID, board, best, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'colorcatch play <id>' to play.")
}
