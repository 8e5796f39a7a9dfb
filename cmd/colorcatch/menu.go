package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-catch/internal/platform/tui"
	"github.com/vovakirdan/color-catch/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Color Catch in interactive menu mode.

The menu offers Play (with a difficulty popover), Instructions,
High Scores and Quit. After a game you can play again or return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit (asks first)

Examples:
  colorcatch menu
  colorcatch menu --fps 30
  colorcatch menu --db ./scores.db`,
	Annotations: map[string]string{interactiveAnnotation: "true"},
	Run:         runMenu,
}

// openStore opens the scores database. Scores are optional: on failure the
// game runs without them.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()

	err := tui.RunApp(store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
