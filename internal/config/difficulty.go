package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for difficulty names that are not presets.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a name to a preset. Matching is case-insensitive.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (want easy, medium or hard)", ErrUnknownDifficulty, name)
}

// GridSize returns the side length of the board for a preset.
func (p DifficultyPreset) GridSize() int {
	switch p {
	case DifficultyMedium:
		return 4
	case DifficultyHard:
		return 5
	default:
		return 3
	}
}

// Title returns the menu label for a preset, e.g. "Easy (3×3)".
func (p DifficultyPreset) Title() string {
	n := p.GridSize()
	name := string(p)
	if name == "" {
		name = string(DifficultyEasy)
	}
	return fmt.Sprintf("%s%s (%d×%d)", strings.ToUpper(name[:1]), name[1:], n, n)
}
