package config

import (
	"embed"
	"sort"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultYAML returns the embedded default record for a game, or nil.
func DefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// Default returns the hardcoded default record for a game. Unknown games get
// an empty record with a flat curve.
func Default(gameID string) GameConfig {
	if fn, ok := defaults[gameID]; ok {
		return fn()
	}
	return GameConfig{
		Curve:  CurveConfig{BaseInterval: 1, MinInterval: 1, SpeedBase: 1, SpeedCeiling: 1},
		Tuning: map[string]float64{},
	}
}

// Known returns the ids that have a default record, sorted.
func Known() []string {
	ids := make([]string, 0, len(defaults))
	for id := range defaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var defaults = map[string]func() GameConfig{
	"nebula":      defaultNebula,
	"solarflare":  defaultSolarflare,
	"echorealm":   defaultEchorealm,
	"zenvoid":     defaultZenvoid,
	"gravitywell": defaultGravitywell,
	"cyberstrike": defaultCyberstrike,
	"prism":       defaultPrism,
	"shadow":      defaultShadow,
}

// defaultNebula returns the default Nebula Drift record.
func defaultNebula() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 36,
			MinInterval:  17,
			IntervalStep: 1,
			IntervalUnit: 1000,
			SpeedBase:    8,
			SpeedStep:    1,
			SpeedUnit:    500,
			SpeedCeiling: 45,
		},
		Categories: []Category{
			{Name: "blackhole", Above: 0.96},
			{Name: "nova", Above: 0.85},
			{Name: "wall", Above: 0.75},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 18500,
			},
		},
		Tuning: map[string]float64{
			"lerp":            0.15,
			"margin":          50,
			"hit_damage":      25,
			"shield_drain":    30,
			"shake_hit":       20,
			"shake_decay":     0.5,
			"overdrive_rate":  0.05,
			"overdrive_drive": 4,
			"overdrive_boost": 1.5,
			"fire_every":      12,
			"pickup_every":    500,
			"pickup_radius":   45,
			"gravity_range":   400,
			"gravity_pull":    4,
			"multiplier_per":  500,
			"kill_points":     100,
			"player_size":     40,
		},
	}
}

// defaultSolarflare returns the default Solar Flare record.
func defaultSolarflare() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 90,
			MinInterval:  15,
			IntervalStep: 1,
			IntervalUnit: 8000,
			SpeedBase:    1,
			SpeedStep:    1,
			SpeedUnit:    60000,
			SpeedCeiling: 4,
		},
		Categories: []Category{
			{Name: "super", Above: 0.95},
			{Name: "void", Above: 0.88, MinProgress: 15000},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60000,
			},
		},
		Tuning: map[string]float64{
			"shield_inner":    100,
			"shield_outer":    140,
			"shield_width":    0.5,
			"expander_width":  1,
			"core_radius":     60,
			"damage":          8,
			"void_damage":     15,
			"energy_drain":    10,
			"points":          100,
			"super_points":    500,
			"energy_gain":     5,
			"super_energy":    15,
			"booster_every":   450,
			"expander_frames": 900,
			"chronos_frames":  720,
			"chronos_factor":  0.5,
			"coolant":         35,
			"burst_points":    200,
			"shake_hit":       20,
			"shake_decay":     1,
			"chase":           0.15,
			"turn":            0.08,
			"combo_every":     10,
			"combo_step":      0,
			"combo_max":       3,
		},
	}
}

// defaultEchorealm returns the default Echo Realm record.
func defaultEchorealm() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 45,
			MinInterval:  15,
			IntervalStep: 1,
			IntervalUnit: 8000,
			SpeedBase:    0.008,
			SpeedStep:    1,
			SpeedUnit:    100000,
			SpeedCeiling: 0.03,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100000,
			},
		},
		Tuning: map[string]float64{
			"window_start":     0.75,
			"window_end":       1.05,
			"sweet_spot":       0.9,
			"miss_at":          1.1,
			"perfect_acc":      0.94,
			"good_acc":         0.85,
			"perfect_points":   100,
			"good_points":      50,
			"ok_points":        20,
			"empty_damage":     5,
			"miss_damage":      8,
			"overdrive_frames": 480,
			"overdrive_speed":  1.5,
			"overdrive_points": 2,
			"meter_perfect":    5,
			"meter_hit":        2,
			"combo_every":      10,
			"combo_max":        8,
		},
	}
}

// defaultZenvoid returns the default Zen Void record.
func defaultZenvoid() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 1,
			MinInterval:  1,
			SpeedBase:    6,
			SpeedStep:    0.2,
			SpeedUnit:    1,
			SpeedCeiling: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 45,
			},
		},
		Tuning: map[string]float64{
			"block_width":       200,
			"perfect_tolerance": 6,
			"perfect_points":    500,
			"drop_points":       100,
			"mult_step":         0.5,
			"mult_max":          10,
			"camera_frames":     20,
			"visible_rows":      12,
		},
	}
}

// defaultGravitywell returns the default Gravity Well record.
func defaultGravitywell() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 1,
			MinInterval:  1,
			SpeedBase:    1,
			SpeedStep:    0.5,
			SpeedUnit:    50000,
			SpeedCeiling: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 50000,
			},
		},
		Tuning: map[string]float64{
			"start_vx":      8,
			"hook_range":    450,
			"force":         0.8,
			"vortex_chance": 0.2,
			"vortex_mult":   2,
			"gap_min":       500,
			"gap_jitter":    300,
			"radius_min":    50,
			"radius_jitter": 70,
			"max_wells":     8,
			"cull_behind":   1000,
			"edge_margin":   150,
			"trail_every":   2,
			"trail_len":     20,
			"player_radius": 10,
			"out_margin":    100,
			"max_speed":     24,
			"camera_lead":   200,
		},
	}
}

// defaultCyberstrike returns the default Cyber Strike record.
func defaultCyberstrike() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 1,
			MinInterval:  1,
			SpeedBase:    1,
			SpeedStep:    0.1,
			SpeedUnit:    1,
			SpeedCeiling: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
		},
		Tuning: map[string]float64{
			"grid":              12,
			"wall_chance":       0.15,
			"data_chance":       0.08,
			"sentinel_base":     2,
			"sentinel_max":      6,
			"sentinel_speed":    0.02,
			"sentinel_jitter":   0.03,
			"detect_radius":     1.5,
			"detect_gain":       2,
			"detect_decay":      0.2,
			"data_points":       500,
			"exit_points":       2000,
			"transition_frames": 90,
			"move_lerp":         0.3,
		},
	}
}

// defaultPrism returns the default Perspective Prism record.
func defaultPrism() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 1,
			MinInterval:  1,
			SpeedBase:    1.2,
			SpeedStep:    0.3,
			SpeedUnit:    1,
			SpeedCeiling: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
		},
		Tuning: map[string]float64{
			"rings_base":        2,
			"rings_max":         6,
			"ring_speed_step":   0.4,
			"tolerance_base":    20,
			"tolerance_step":    2,
			"tolerance_min":     10,
			"lock_points":       100,
			"fast_bonus":        150,
			"fast_window":       120,
			"quick_bonus":       50,
			"quick_window":      240,
			"lives":             3,
			"levels":            5,
			"transition_frames": 120,
		},
	}
}

// defaultShadow returns the default Shadow Protocol record.
func defaultShadow() GameConfig {
	return GameConfig{
		Curve: CurveConfig{
			BaseInterval: 1,
			MinInterval:  1,
			SpeedBase:    1,
			SpeedCeiling: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
		},
		Tuning: map[string]float64{
			"nodes_base":        8,
			"nodes_step":        2,
			"scans_base":        7,
			"scans_min":         3,
			"heat_span":         0.4,
			"level_points":      1000,
			"scan_points":       500,
			"levels":            5,
			"transition_frames": 120,
			"margin":            0.2,
			"shake_scan":        5,
			"shake_solve":       15,
			"shake_fail":        30,
		},
	}
}
