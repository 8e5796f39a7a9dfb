// Package config provides YAML-based game configuration loading and
// difficulty presets for Color Catch.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/color-catch/internal/core"
)

// ColorCatchConfig contains all configuration for the game.
type ColorCatchConfig struct {
	Timer      TimerConfig      `yaml:"timer"`
	Delays     DelayConfig      `yaml:"delays"`
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyPreset `yaml:"difficulty"` // Preset used when none is chosen
}

// TimerConfig defines the countdown budget.
type TimerConfig struct {
	InitialSeconds int `yaml:"initial_seconds"`
	StagePenalty   int `yaml:"stage_penalty"` // Seconds removed per cleared stage
	MinSeconds     int `yaml:"min_seconds"`   // Floor after the stage penalty
}

// DelayConfig defines the visual feedback windows.
type DelayConfig struct {
	ResolveMS int `yaml:"resolve_ms"` // Highlight time before the selection clears
	AdvanceMS int `yaml:"advance_ms"` // Pause before a new stage's board appears
}

// Resolve returns the resolve delay as a duration.
func (d DelayConfig) Resolve() time.Duration {
	return time.Duration(d.ResolveMS) * time.Millisecond
}

// Advance returns the stage advance delay as a duration.
func (d DelayConfig) Advance() time.Duration {
	return time.Duration(d.AdvanceMS) * time.Millisecond
}

// BoardConfig defines tile colors by name (see core.ParseColor).
type BoardConfig struct {
	Palette []string `yaml:"palette"`
	Filler  string   `yaml:"filler"`
}

// PaletteColors parses the palette names.
func (b BoardConfig) PaletteColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(b.Palette))
	for _, name := range b.Palette {
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("config: palette: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// FillerColor parses the filler name.
func (b BoardConfig) FillerColor() (core.Color, error) {
	c, err := core.ParseColor(b.Filler)
	if err != nil {
		return core.ColorDefault, fmt.Errorf("config: filler: %w", err)
	}
	return c, nil
}

// Validate reports every problem in the config at once.
func (c ColorCatchConfig) Validate() error {
	var errs []error

	if c.Timer.InitialSeconds < 1 {
		errs = append(errs, fmt.Errorf("timer.initial_seconds must be positive, got %d", c.Timer.InitialSeconds))
	}
	if c.Timer.StagePenalty < 0 {
		errs = append(errs, fmt.Errorf("timer.stage_penalty must not be negative, got %d", c.Timer.StagePenalty))
	}
	if c.Timer.MinSeconds < 1 {
		errs = append(errs, fmt.Errorf("timer.min_seconds must be positive, got %d", c.Timer.MinSeconds))
	}
	if c.Delays.ResolveMS < 0 || c.Delays.AdvanceMS < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}

	palette, err := c.Board.PaletteColors()
	if err != nil {
		errs = append(errs, err)
	}
	filler, err := c.Board.FillerColor()
	if err != nil {
		errs = append(errs, err)
	}
	for _, p := range palette {
		if p == filler {
			errs = append(errs, fmt.Errorf("board.palette must not contain the filler color %q", filler))
			break
		}
	}

	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
