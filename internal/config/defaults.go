package config

import (
	_ "embed"
)

//go:embed defaults/colorcatch.yaml
var defaultColorCatchYAML []byte

// DefaultColorCatchConfig returns the default configuration.
func DefaultColorCatchConfig() ColorCatchConfig {
	return ColorCatchConfig{
		Timer: TimerConfig{
			InitialSeconds: 30,
			StagePenalty:   5,
			MinSeconds:     5,
		},
		Delays: DelayConfig{
			ResolveMS: 500,
			AdvanceMS: 500,
		},
		Board: BoardConfig{
			Palette: []string{
				"red", "green", "blue", "yellow", "orange", "purple",
				"cyan", "pink", "white", "bright_green", "bright_blue", "magenta",
			},
			Filler: "gray",
		},
		Difficulty: DifficultyEasy,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColorCatchYAML
}
