package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "colorcatch.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.colorcatch/configs/colorcatch.yaml -> ./configs/colorcatch.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (ColorCatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorCatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ColorCatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files in the search directories are skipped rather than fatal.
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultColorCatchYAML)
	if err != nil {
		return DefaultColorCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (ColorCatchConfig, error) {
	cfg := DefaultColorCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorCatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ColorCatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorcatch", "configs", filename)
}
