package config

import "math"

// Scaler maps cumulative progress to spawn interval and speed.
// Every method is a pure function of its arguments: higher progress never
// yields a longer interval or a lower speed, and both are bounded.
type Scaler struct {
	curve     CurveConfig
	diff      DifficultyConfig
	headStart float64
}

// NewScaler creates a scaler for the given record.
func NewScaler(cfg GameConfig) *Scaler {
	return &Scaler{
		curve:     cfg.Curve,
		diff:      cfg.Difficulty,
		headStart: clampF(cfg.Difficulty.InitialLevel, 0, 1) * cfg.Difficulty.Progression.MaxAt,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (s *Scaler) IsEnabled() bool {
	return s.diff.Enabled && s.diff.Progression.Type != "none"
}

// Progress applies the preset to raw progress: a head start of
// initial_level * max_at, and no growth at all when progression is off.
func (s *Scaler) Progress(raw float64) float64 {
	if !s.IsEnabled() {
		return s.headStart
	}
	if raw < 0 {
		raw = 0
	}
	return s.headStart + raw
}

// Interval returns the spawn interval in frames for raw progress.
func (s *Scaler) Interval(raw float64) float64 {
	p := s.Progress(raw)
	steps := 0.0
	if s.curve.IntervalUnit > 0 {
		steps = math.Floor(p / s.curve.IntervalUnit)
	}
	v := s.curve.BaseInterval - steps*s.curve.IntervalStep
	floor := math.Max(s.curve.MinInterval, 1)
	if v < floor {
		v = floor
	}
	return v
}

// Speed returns the speed multiplier for raw progress.
func (s *Scaler) Speed(raw float64) float64 {
	p := s.Progress(raw)
	v := s.curve.SpeedBase
	if s.curve.SpeedUnit > 0 {
		v += p / s.curve.SpeedUnit * s.curve.SpeedStep
	}
	if s.curve.SpeedCeiling > 0 && v > s.curve.SpeedCeiling {
		v = s.curve.SpeedCeiling
	}
	return v
}

// Unlocked reports whether a category's minimum progress is reached.
func (s *Scaler) Unlocked(c Category, raw float64) bool {
	return s.Progress(raw) >= c.MinProgress
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
