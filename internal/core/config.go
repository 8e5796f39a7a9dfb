package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Stage    int  // Current stage (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Signal is set when the game asks the platform to navigate
	// (restart the game or return to the menu).
	Signal Signal
}

// Signal is a navigation request raised by a game.
type Signal int

const (
	SignalNone Signal = iota
	SignalRestart
	SignalMenu
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalRestart:
		return "restart"
	case SignalMenu:
		return "menu"
	default:
		return "unknown"
	}
}
