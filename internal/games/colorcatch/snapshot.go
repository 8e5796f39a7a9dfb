package colorcatch

import "github.com/vovakirdan/color-catch/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Difficulty string
	GridSize   int
	Colors     []core.Color
	Selection  []int
	Disabled   []int
	Score      int
	Countdown  int
	Stage      int
	Phase      string
	Cursor     int
	Paused     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var disabled []int
	for i := 0; i < g.state.Board().Len(); i++ {
		if g.state.IsDisabled(i) {
			disabled = append(disabled, i)
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Difficulty: string(g.preset),
		GridSize:   g.state.GridSize(),
		Colors:     g.state.Board().Colors(),
		Selection:  g.state.Selection(),
		Disabled:   disabled,
		Score:      g.state.Score(),
		Countdown:  g.state.Countdown(),
		Stage:      g.state.Stage(),
		Phase:      g.state.Phase().String(),
		Cursor:     g.cursor,
		Paused:     g.paused,
	}
}
