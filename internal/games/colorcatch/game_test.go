package colorcatch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/registry"
)

const testTickRate = 10

// useTestConfig pins the game config so results do not depend on files in
// the user's home directory.
func useTestConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, config.DefaultYAML(), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func startGame(t *testing.T, preset config.DifficultyPreset, seed int64) *Game {
	t.Helper()
	useTestConfig(t)
	g := New(preset)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate, Seed: seed})
	return g
}

func idle(g *Game, steps int) core.StepResult {
	var res core.StepResult
	for i := 0; i < steps; i++ {
		res = g.Step(core.NewInputFrame())
	}
	return res
}

func clickTiles(g *Game, indices ...int) core.InputFrame {
	in := core.NewInputFrame()
	tiles := g.computeLayout().tiles
	for _, idx := range indices {
		r := tiles[idx]
		in.AddClick(r.X+r.W/2, r.Y+r.H/2)
	}
	return in
}

func TestRegisteredPresets(t *testing.T) {
	for _, p := range config.Presets() {
		require.True(t, registry.Exists(string(p)), "preset %s", p)

		g, err := registry.Create(string(p))
		require.NoError(t, err)
		assert.Equal(t, string(p), g.ID())
		assert.Equal(t, "Color Catch: "+p.Title(), g.Title())
	}
}

func TestGameResetUsesPresetGridSize(t *testing.T) {
	for _, p := range config.Presets() {
		g := startGame(t, p, 1)
		assert.Equal(t, p.GridSize(), g.Logic().GridSize())
		assert.Equal(t, PhaseIdle, g.Logic().Phase())
		assert.Equal(t, 30, g.Logic().Countdown())
		assert.False(t, g.State().Paused, "preset %s fits 80x24", p)
	}
}

func TestGameFallsBackWhenPaletteTooSmall(t *testing.T) {
	data := "board:\n  palette: [red, green, blue, yellow]\n  filler: gray\n"
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	// Four colors fill a 3x3 board but not a 5x5 one.
	easy := New(config.DifficultyEasy)
	easy.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate, Seed: 1})
	for _, c := range easy.Logic().Board().Colors() {
		assert.Contains(t, []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow, core.ColorGray}, c)
	}

	hard := New(config.DifficultyHard)
	hard.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate, Seed: 1})
	require.Equal(t, 5, hard.Logic().GridSize())
	assert.Equal(t, 25, hard.Logic().Board().Len())
	assert.Contains(t, hard.Logic().Board().Colors(), core.ColorPink, "expected the default palette")
	assert.Equal(t, DefaultRules().InitialCountdown, hard.Logic().Countdown())
}

func TestGameDeterminism(t *testing.T) {
	a := startGame(t, config.DifficultyHard, 42)
	b := startGame(t, config.DifficultyHard, 42)

	inputs := []core.InputFrame{
		clickTiles(a, 0),
		core.NewInputFrame(),
		clickTiles(a, 3),
		clickTiles(a, 7, 8),
	}
	for i := 0; i < 40; i++ {
		in := core.NewInputFrame()
		if i < len(inputs) {
			in = inputs[i]
		}
		a.Step(in)
		b.Step(in)
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestGameHitTest(t *testing.T) {
	g := startGame(t, config.DifficultyMedium, 1)
	tiles := g.computeLayout().tiles

	for i, r := range tiles {
		idx, ok := g.HitTest(r.X, r.Y)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := g.HitTest(0, 0)
	assert.False(t, ok)
	_, ok = g.HitTest(tiles[0].Right(), tiles[0].Y)
	assert.False(t, ok, "gap between tiles")
}

func TestGameCountdownTicksEverySecond(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 3)

	idle(g, 50)
	assert.Equal(t, 30, g.Logic().Countdown(), "idle game must not tick")

	g.Step(clickTiles(g, 0))
	require.Equal(t, PhaseRunning, g.Logic().Phase())

	idle(g, testTickRate-2)
	assert.Equal(t, 30, g.Logic().Countdown())
	idle(g, 1)
	assert.Equal(t, 29, g.Logic().Countdown())
	idle(g, testTickRate)
	assert.Equal(t, 28, g.Logic().Countdown())
}

func TestGameSettlesAfterDelay(t *testing.T) {
	g := startGame(t, config.DifficultyMedium, 5)
	a, b := findPair(t, g.Logic())

	g.Step(clickTiles(g, a, b))
	_, pending := g.Logic().Pending()
	require.True(t, pending)
	assert.Equal(t, 1, g.State().Score)

	// Taps during the delay are ignored.
	c, d := findMismatch(t, g.Logic())
	g.Step(clickTiles(g, c, d))
	assert.Equal(t, []int{a, b}, g.Logic().Selection())

	idle(g, 2)
	_, pending = g.Logic().Pending()
	assert.True(t, pending)

	idle(g, 1)
	_, pending = g.Logic().Pending()
	assert.False(t, pending)
	assert.Empty(t, g.Logic().Selection())
	assert.Equal(t, PhaseRunning, g.Logic().Phase())
}

func TestGameKeyboardCursor(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 6)

	press := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	press(core.ActionLeft)
	press(core.ActionUp)
	assert.Equal(t, 0, g.cursor, "cursor clamps at the top-left corner")

	press(core.ActionRight)
	press(core.ActionDown)
	assert.Equal(t, 4, g.cursor)

	for i := 0; i < 5; i++ {
		press(core.ActionRight)
		press(core.ActionDown)
	}
	assert.Equal(t, 8, g.cursor, "cursor clamps at the bottom-right corner")

	press(core.ActionTap)
	assert.Equal(t, []int{8}, g.Logic().Selection())
	press(core.ActionTap)
	assert.Empty(t, g.Logic().Selection())
}

func TestGamePauseStopsClock(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 7)
	g.Step(clickTiles(g, 0))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	assert.True(t, g.State().Paused)

	idle(g, 5*testTickRate)
	assert.Equal(t, 30, g.Logic().Countdown())

	g.Step(pause)
	assert.False(t, g.State().Paused)
}

func TestGameOverSignals(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 8)
	g.Step(clickTiles(g, 0))

	for i := 0; i < 31*testTickRate && !g.State().GameOver; i++ {
		idle(g, 1)
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, 0, g.Logic().Countdown())

	// Clicks and ticks after game over change nothing.
	before := g.Snapshot()
	g.Step(clickTiles(g, 1, 2))
	after := g.Snapshot()
	before.Tick, after.Tick = 0, 0
	assert.Equal(t, before, after)

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	assert.Equal(t, core.SignalMenu, g.Step(back).Signal)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)
	assert.Equal(t, core.SignalRestart, res.Signal)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, res.State.Stage)
	assert.Equal(t, 30, g.Logic().Countdown())
	assert.Equal(t, PhaseIdle, g.Logic().Phase())
}

func TestGameRestartDuringPlay(t *testing.T) {
	g := startGame(t, config.DifficultyMedium, 9)
	a, b := findPair(t, g.Logic())
	g.Step(clickTiles(g, a, b))
	idle(g, 3*testTickRate)
	require.Equal(t, 1, g.State().Score)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	assert.Equal(t, core.SignalRestart, res.Signal)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 30, g.Logic().Countdown())
	assert.Zero(t, g.Logic().DisabledCount())
	assert.Equal(t, 4, g.Logic().GridSize())
}

func TestGameRender(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 10)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "C O L O R   C A T C H")
	assert.Contains(t, screen.Row(1), "Time: 0:30")
	assert.Contains(t, screen.Row(1), "Score: 0")
	assert.Contains(t, screen.Row(1), "Stage 1")

	l := g.computeLayout()
	for i, r := range l.tiles {
		cell := screen.GetCell(r.X+r.W/2, r.Y+r.H/2)
		assert.Equal(t, g.Logic().TileColor(i), cell.Color, "tile %d", i)
	}
}

func TestGameRenderDimsMatchedTiles(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 11)
	a, b := findPair(t, g.Logic())
	g.Step(clickTiles(g, a, b))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	r := g.computeLayout().tiles[a]
	cell := screen.GetCell(r.X+r.W/2, r.Y+r.H/2)
	assert.Equal(t, '░', cell.Rune)
	assert.Equal(t, core.ColorDim, cell.Color)
	assert.Contains(t, screen.String(), "Match!")
}

func TestGameRenderGameOver(t *testing.T) {
	g := startGame(t, config.DifficultyEasy, 12)
	g.Step(clickTiles(g, 0))
	for !g.State().GameOver {
		idle(g, 1)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Your score is 0.")
	assert.Contains(t, out, "Play Again")
}

func TestGameTooSmall(t *testing.T) {
	useTestConfig(t)
	g := New(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 12, TickRate: testTickRate, Seed: 1})

	assert.True(t, g.State().Paused)
	before := g.Snapshot()
	g.Step(clickTiles(g, 0))
	assert.Equal(t, before.Selection, g.Snapshot().Selection)

	screen := core.NewScreen(30, 12)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, before.Colors, g.Snapshot().Colors, "resize keeps the board")
}
