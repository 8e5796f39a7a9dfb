package colorcatch

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/color-catch/internal/core"
)

// Rules holds the tunable numbers of the game.
type Rules struct {
	InitialCountdown int // Seconds on the clock at the start of a session
	StagePenalty     int // Seconds removed from the clock when a stage is cleared
	MinCountdown     int // Floor for the clock after a stage penalty
	Palette          []core.Color
	Filler           core.Color
}

// DefaultRules returns the standard 30 second game.
func DefaultRules() Rules {
	return Rules{
		InitialCountdown: 30,
		StagePenalty:     5,
		MinCountdown:     5,
		Palette:          DefaultPalette,
		Filler:           DefaultFiller,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	var errs []error
	if r.InitialCountdown < 1 {
		errs = append(errs, fmt.Errorf("initial countdown must be positive, got %d", r.InitialCountdown))
	}
	if r.StagePenalty < 0 {
		errs = append(errs, fmt.Errorf("stage penalty must not be negative, got %d", r.StagePenalty))
	}
	if r.MinCountdown < 1 {
		errs = append(errs, fmt.Errorf("minimum countdown must be positive, got %d", r.MinCountdown))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("colorcatch: invalid rules: %w", err)
	}
	return nil
}

// Engine applies game events to States. Tap and Tick are pure; board
// generation (NewGame, Restart, and a stage-clearing Settle) draws from the
// engine's random source.
type Engine struct {
	rules Rules
	rng   *rand.Rand
}

// NewEngine creates an engine. The rng is injected so layouts are reproducible.
func NewEngine(rules Rules, rng *rand.Rand) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("colorcatch: nil random source")
	}
	return &Engine{rules: rules, rng: rng}, nil
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewGame creates the initial state for a gridSize x gridSize board.
// The grid size is fixed for the life of the returned state and its successors.
func (e *Engine) NewGame(gridSize int) (State, error) {
	board, err := NewBoard(gridSize, e.rules.Palette, e.rules.Filler, e.rng)
	if err != nil {
		return State{}, err
	}
	return e.initial(board), nil
}

func (e *Engine) initial(board Board) State {
	return State{
		board:     board,
		disabled:  make([]bool, board.Len()),
		countdown: e.rules.InitialCountdown,
		stage:     1,
		phase:     PhaseIdle,
	}
}

// Restart resets score, stage, countdown, selection and disabled tiles and
// deals a fresh board of the same size. The timer waits for the first tap.
func (e *Engine) Restart(s State) State {
	return e.initial(e.regenerate(s.board))
}

// Tap applies a tile tap.
//
// Taps are ignored after game over, while a resolution is pending, on
// out-of-range indices and on disabled tiles. Tapping a selected tile
// deselects it. Otherwise the tile joins the selection; the first tap of a
// session starts the timer, and the second selected tile is compared with the
// first.
func (e *Engine) Tap(s State, index int) State {
	if s.phase == PhaseGameOver || s.pending != nil {
		return s
	}
	if index < 0 || index >= s.board.Len() || s.disabled[index] {
		return s
	}

	next := s.clone()
	if pos := s.selectedPos(index); pos >= 0 {
		next.selection = append(next.selection[:pos], next.selection[pos+1:]...)
		return next
	}
	if len(next.selection) >= 2 {
		return s
	}

	next.selection = append(next.selection, index)
	if next.phase == PhaseIdle {
		next.phase = PhaseRunning
	}
	if len(next.selection) == 2 {
		e.resolve(&next)
	}
	return next
}

// resolve compares the two selected tiles and records the pending outcome.
func (e *Engine) resolve(s *State) {
	a, b := s.selection[0], s.selection[1]
	res := Resolution{First: a, Second: b}

	if s.board.Color(a) == s.board.Color(b) {
		res.Matched = true
		s.score++
		s.disabled[a] = true
		s.disabled[b] = true
		s.nDisabled += 2

		if s.stageComplete() {
			res.AdvanceStage = true
			s.stage++
			s.countdown = core.Max(e.rules.MinCountdown, s.countdown-e.rules.StagePenalty)
		}
	}

	s.phase = PhaseResolved
	s.pending = &res
}

// Settle fires the delayed part of a resolution: the selection is cleared
// and, after a stage clear, a new board of the same size replaces the old
// one. Settling a state with nothing pending returns it unchanged.
func (e *Engine) Settle(s State) State {
	if s.pending == nil {
		return s
	}

	next := s.clone()
	res := *next.pending
	next.pending = nil
	next.selection = next.selection[:0]
	if next.phase == PhaseResolved {
		next.phase = PhaseRunning
	}

	if res.AdvanceStage {
		next.board = e.regenerate(s.board)
		next.disabled = make([]bool, next.board.Len())
		next.nDisabled = 0
	}
	return next
}

// Tick applies one second of the countdown. It only has an effect while the
// timer runs. Reaching zero ends the game and drops any pending resolution.
func (e *Engine) Tick(s State) State {
	if !s.TimerRunning() {
		return s
	}

	next := s.clone()
	if next.countdown > 0 {
		next.countdown--
	}
	if next.countdown == 0 {
		next.phase = PhaseGameOver
		next.pending = nil
		next.selection = next.selection[:0]
	}
	return next
}

// regenerate deals a new board with the same size as b. The size was
// validated when the first board was built, so failure is a programming error.
func (e *Engine) regenerate(b Board) Board {
	board, err := NewBoard(b.Size(), e.rules.Palette, e.rules.Filler, e.rng)
	if err != nil {
		panic(fmt.Sprintf("colorcatch: regenerating %dx%d board: %v", b.Size(), b.Size(), err))
	}
	return board
}
