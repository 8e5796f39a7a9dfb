package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-catch/internal/core"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultColorCatchConfig(), cfg)
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultColorCatchConfig().Validate())
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("timer:\n  initial_seconds: 45\n"))
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Timer.InitialSeconds)
	assert.Equal(t, 5, cfg.Timer.StagePenalty)
	assert.Equal(t, 5, cfg.Timer.MinSeconds)
	assert.Equal(t, 500, cfg.Delays.ResolveMS)
	assert.Len(t, cfg.Board.Palette, 12)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero timer", "timer:\n  initial_seconds: 0\n"},
		{"negative penalty", "timer:\n  stage_penalty: -1\n"},
		{"unknown palette color", "board:\n  palette: [red, chartreuse]\n"},
		{"unknown filler", "board:\n  filler: nope\n"},
		{"filler in palette", "board:\n  palette: [red, gray]\n  filler: gray\n"},
		{"unknown difficulty", "difficulty: nightmare\n"},
		{"negative delay", "delays:\n  resolve_ms: -10\n"},
		{"not yaml", "timer: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  palette: [red, blue]\n  filler: white\ndifficulty: hard\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	palette, err := cfg.Board.PaletteColors()
	require.NoError(t, err)
	assert.Equal(t, []core.Color{core.ColorRed, core.ColorBlue}, palette)

	filler, err := cfg.Board.FillerColor()
	require.NoError(t, err)
	assert.Equal(t, core.ColorWhite, filler)
	assert.Equal(t, DifficultyHard, cfg.Difficulty)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		want     DifficultyPreset
		gridSize int
		title    string
	}{
		{"easy", DifficultyEasy, 3, "Easy (3×3)"},
		{"Medium", DifficultyMedium, 4, "Medium (4×4)"},
		{" HARD ", DifficultyHard, 5, "Hard (5×5)"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.gridSize, got.GridSize())
			assert.Equal(t, tc.title, got.Title())
		})
	}

	_, err := ParseDifficulty("extreme")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestDelayDurations(t *testing.T) {
	d := DelayConfig{ResolveMS: 500, AdvanceMS: 250}
	assert.Equal(t, "500ms", d.Resolve().String())
	assert.Equal(t, "250ms", d.Advance().String())
}
