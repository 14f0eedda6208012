package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration record for a game.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func Load(gameID, customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := parse(gameID, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := parse(gameID, data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := parse(gameID, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := DefaultYAML(gameID); data != nil {
		if err := parse(gameID, data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return Default(gameID), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML on top of the hardcoded default, so a partial file only
// overrides the keys it names, then validates the result.
func parse(gameID string, data []byte, cfg *GameConfig) error {
	merged := Default(gameID)
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return err
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	*cfg = merged
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
