// Package config provides YAML-based game configuration loading and
// difficulty scaling for the arcade platform.
package config

import "fmt"

// GameConfig is the configuration record of one game: its difficulty
// curve, its weighted entity mix and free-form tuning constants.
type GameConfig struct {
	Curve      CurveConfig        `yaml:"curve"`
	Categories []Category         `yaml:"categories"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
	Tuning     map[string]float64 `yaml:"tuning"`
}

// CurveConfig describes how spawn pressure grows with progress.
// Progress is whatever the game accumulates: score, distance, speed, level.
type CurveConfig struct {
	BaseInterval float64 `yaml:"base_interval"` // Frames between spawns at zero progress
	MinInterval  float64 `yaml:"min_interval"`  // Floor on the spawn interval
	IntervalStep float64 `yaml:"interval_step"` // Frames removed per whole interval_unit of progress
	IntervalUnit float64 `yaml:"interval_unit"` // Progress per interval step
	SpeedBase    float64 `yaml:"speed_base"`    // Speed multiplier at zero progress
	SpeedStep    float64 `yaml:"speed_step"`    // Added per speed_unit of progress (continuous)
	SpeedUnit    float64 `yaml:"speed_unit"`    // Progress per speed step
	SpeedCeiling float64 `yaml:"speed_ceiling"` // Cap on the speed multiplier
}

// Category is one row of a weighted spawn table. A roll above Above picks
// the category once progress reaches MinProgress. Rows are tried in order.
type Category struct {
	Name        string  `yaml:"name"`
	Above       float64 `yaml:"above"`
	MinProgress float64 `yaml:"min_progress"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how far the head start reaches.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "distance", "level", or "none"
	MaxAt float64 `yaml:"max_at"` // Progress at which initial_level 1.0 starts
}

// Tune returns a tuning constant, or def when it is not configured.
func (c GameConfig) Tune(key string, def float64) float64 {
	if v, ok := c.Tuning[key]; ok {
		return v
	}
	return def
}

// Validate reports obviously broken records.
func (c GameConfig) Validate() error {
	if c.Curve.MinInterval < 0 || c.Curve.BaseInterval < c.Curve.MinInterval {
		return fmt.Errorf("config: base_interval %.1f below min_interval %.1f",
			c.Curve.BaseInterval, c.Curve.MinInterval)
	}
	if c.Curve.IntervalStep < 0 || c.Curve.SpeedStep < 0 {
		return fmt.Errorf("config: curve steps must not be negative")
	}
	if c.Curve.SpeedCeiling < c.Curve.SpeedBase {
		return fmt.Errorf("config: speed_ceiling %.2f below speed_base %.2f",
			c.Curve.SpeedCeiling, c.Curve.SpeedBase)
	}
	for i := 1; i < len(c.Categories); i++ {
		if c.Categories[i].Above > c.Categories[i-1].Above {
			return fmt.Errorf("config: category %q must not be above %q",
				c.Categories[i].Name, c.Categories[i-1].Name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
