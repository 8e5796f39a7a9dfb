package colorcatch

import "github.com/vovakirdan/color-catch/internal/core"

// Phase is the lifecycle position of a game.
type Phase int

const (
	// PhaseIdle: board shown, timer not started yet.
	PhaseIdle Phase = iota
	// PhaseRunning: timer active, taps accepted.
	PhaseRunning
	// PhaseResolved: two tiles compared, waiting for the delayed clear.
	PhaseResolved
	// PhaseGameOver: countdown expired. Terminal until restart.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseResolved:
		return "resolved"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of comparing two selected tiles. It stays pending
// on the state until Settle clears the selection.
type Resolution struct {
	First, Second int
	Matched       bool
	AdvanceStage  bool
}

// State is a snapshot of one game. Reducers on Engine never modify a State
// in place; they return a new value that shares only immutable data.
type State struct {
	board     Board
	selection []int
	disabled  []bool
	nDisabled int
	score     int
	countdown int
	stage     int
	phase     Phase
	pending   *Resolution
}

// Board returns the current board.
func (s State) Board() Board {
	return s.board
}

// GridSize returns the side length of the board.
func (s State) GridSize() int {
	return s.board.Size()
}

// Selection returns the selected tile indices in tap order.
func (s State) Selection() []int {
	out := make([]int, len(s.selection))
	copy(out, s.selection)
	return out
}

// IsSelected reports whether the tile at index is selected.
func (s State) IsSelected(index int) bool {
	return s.selectedPos(index) >= 0
}

// IsDisabled reports whether the tile at index has been matched this stage.
func (s State) IsDisabled(index int) bool {
	return index >= 0 && index < len(s.disabled) && s.disabled[index]
}

// DisabledCount returns the number of matched tiles this stage.
func (s State) DisabledCount() int {
	return s.nDisabled
}

// Score returns the number of matched pairs this session.
func (s State) Score() int {
	return s.score
}

// Countdown returns the seconds remaining.
func (s State) Countdown() int {
	return s.countdown
}

// Stage returns the current stage, starting at 1.
func (s State) Stage() int {
	return s.stage
}

// Phase returns the lifecycle phase.
func (s State) Phase() Phase {
	return s.phase
}

// Pending returns the resolution awaiting Settle, if any.
func (s State) Pending() (Resolution, bool) {
	if s.pending == nil {
		return Resolution{}, false
	}
	return *s.pending, true
}

// TimerRunning reports whether second ticks affect the countdown.
func (s State) TimerRunning() bool {
	return s.phase == PhaseRunning || s.phase == PhaseResolved
}

// GameOver reports whether the countdown has expired.
func (s State) GameOver() bool {
	return s.phase == PhaseGameOver
}

// TileColor returns the color of the tile at index.
func (s State) TileColor(index int) core.Color {
	return s.board.Color(index)
}

func (s State) selectedPos(index int) int {
	for i, sel := range s.selection {
		if sel == index {
			return i
		}
	}
	return -1
}

// stageComplete reports whether every paired tile is disabled. The filler
// tile on odd boards can never be matched, so it never counts.
func (s State) stageComplete() bool {
	return s.nDisabled >= s.board.PairedTiles()
}

// clone copies the mutable slices so the receiver stays untouched.
func (s State) clone() State {
	next := s
	next.selection = append([]int(nil), s.selection...)
	next.disabled = append([]bool(nil), s.disabled...)
	if s.pending != nil {
		p := *s.pending
		next.pending = &p
	}
	return next
}
