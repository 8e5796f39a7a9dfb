// Package colorcatch implements Color Catch: find matching color pairs on a
// shuffled grid before the countdown runs out.
//
// The rules live in Engine as reducers over immutable States. Game adapts
// them to the platform's fixed-rate Step/Render loop, turning simulation
// steps into one-second countdown ticks and delayed settles.
package colorcatch

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/registry"
)

// Package-level variables for config
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for game events. Nil disables logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, p := range config.Presets() {
		preset := p
		registry.Register(string(preset), func() registry.Game {
			return New(preset)
		})
	}
}

// Game implements registry.Game for one difficulty preset.
type Game struct {
	preset config.DifficultyPreset
	cfg    config.ColorCatchConfig
	engine *Engine
	state  State

	tickRate int
	tick     uint64
	clock    Clock
	settle   Delay

	cursor   int
	paused   bool
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given preset. The grid size is fixed by the preset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// RulesFromConfig converts loaded config into engine rules.
func RulesFromConfig(cfg config.ColorCatchConfig) (Rules, error) {
	palette, err := cfg.Board.PaletteColors()
	if err != nil {
		return Rules{}, err
	}
	filler, err := cfg.Board.FillerColor()
	if err != nil {
		return Rules{}, err
	}
	rules := Rules{
		InitialCountdown: cfg.Timer.InitialSeconds,
		StagePenalty:     cfg.Timer.StagePenalty,
		MinCountdown:     cfg.Timer.MinSeconds,
		Palette:          palette,
		Filler:           filler,
	}
	return rules, rules.Validate()
}

// ID returns the game identifier, which is the difficulty name.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Catch: " + g.preset.Title()
}

// Preset returns the difficulty this game was created with.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Reset initializes the game with a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	rules, err := RulesFromConfig(g.cfg)
	if err != nil {
		logger.Warn("invalid game rules, using defaults", "error", err)
		g.cfg = config.DefaultColorCatchConfig()
		rules = DefaultRules()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.engine, err = NewEngine(rules, rng)
	if err == nil {
		g.state, err = g.engine.NewGame(g.preset.GridSize())
	}
	if err != nil {
		logger.Warn("cannot build board from config, using defaults", "error", err)
		if g.engine, err = NewEngine(DefaultRules(), rng); err == nil {
			g.state, err = g.engine.NewGame(g.preset.GridSize())
		}
		if err != nil {
			logger.Error("cannot build board from default rules", "difficulty", g.preset, "error", err)
		}
	}

	g.tickRate = cfg.TickRate
	if g.tickRate < 1 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.clock = NewClock(g.tickRate)
	g.settle.Disarm()
	g.cursor = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	logger.Debug("game reset", "difficulty", g.preset, "grid", g.state.GridSize(), "seed", cfg.Seed)
}

func (g *Game) loadConfig() config.ColorCatchConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", configPath, "error", err)
		return config.DefaultColorCatchConfig()
	}
	return cfg
}

// restart starts a new session on the current engine, keeping its random stream.
func (g *Game) restart() {
	g.state = g.engine.Restart(g.state)
	g.clock.Reset()
	g.settle.Disarm()
	g.cursor = 0
	g.paused = false
	logger.Debug("game restarted", "difficulty", g.preset)
}

// Step advances the game by one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result(core.SignalNone)
	}

	if g.state.GameOver() {
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
			return g.result(core.SignalRestart)
		case in.Has(core.ActionBack):
			return g.result(core.SignalMenu)
		}
		return g.result(core.SignalNone)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		if in.Has(core.ActionBack) {
			return g.result(core.SignalMenu)
		}
		return g.result(core.SignalNone)
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return g.result(core.SignalRestart)
	}

	g.handleInput(in)
	g.advanceTimers()

	return g.result(core.SignalNone)
}

// handleInput moves the cursor and applies taps from keys and clicks.
func (g *Game) handleInput(in core.InputFrame) {
	n := g.state.GridSize()
	row, col := g.state.Board().Position(g.cursor)
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = g.state.Board().Index(core.Clamp(row, 0, n-1), core.Clamp(col, 0, n-1))

	if in.Has(core.ActionTap) {
		g.tap(g.cursor)
	}
	for _, c := range in.Clicks {
		if idx, ok := g.HitTest(c.X, c.Y); ok {
			g.cursor = idx
			g.tap(idx)
		}
	}
}

// tap feeds a tap to the engine and arms the settle delay on resolution.
func (g *Game) tap(index int) {
	before := g.state.Phase()
	g.state = g.engine.Tap(g.state, index)

	if before == PhaseIdle && g.state.Phase() == PhaseRunning {
		g.clock.Reset()
	}

	res, ok := g.state.Pending()
	if !ok {
		return
	}
	delay := g.cfg.Delays.Resolve()
	if res.AdvanceStage {
		delay = max(delay, g.cfg.Delays.Advance())
		logger.Debug("stage cleared", "stage", g.state.Stage(), "countdown", g.state.Countdown(), "score", g.state.Score())
	}
	g.settle.Arm(delay, g.tickRate)
}

// advanceTimers runs the settle delay and the one-second countdown clock.
func (g *Game) advanceTimers() {
	if g.settle.Advance() {
		g.state = g.engine.Settle(g.state)
	}

	if g.state.TimerRunning() && g.clock.Advance() {
		g.state = g.engine.Tick(g.state)
		if g.state.GameOver() {
			g.settle.Disarm()
			logger.Debug("game over", "difficulty", g.preset, "score", g.state.Score(), "stage", g.state.Stage())
		}
	}
}

func (g *Game) result(sig core.Signal) core.StepResult {
	return core.StepResult{State: g.State(), Signal: sig}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Stage:    g.state.Stage(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Logic returns the current rules state for inspection.
func (g *Game) Logic() State {
	return g.state
}
