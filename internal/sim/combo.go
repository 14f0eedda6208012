package sim

import "math"

// ComboRule derives the multiplier from the streak: every Every consecutive
// hits add Step, up to Max. Every <= 0 means each hit adds Step.
type ComboRule struct {
	Every int
	Step  float64
	Max   float64
}

// Combo tracks a hit streak and the multiplier it earns.
type Combo struct {
	Rule  ComboRule
	Count int
	Mult  float64
	Best  int
}

// NewCombo returns a combo at multiplier 1.
func NewCombo(rule ComboRule) Combo {
	return Combo{Rule: rule, Mult: 1}
}

// Hit extends the streak and recomputes the multiplier.
func (c *Combo) Hit() {
	c.Count++
	if c.Count > c.Best {
		c.Best = c.Count
	}
	if c.Rule.Every > 0 {
		c.Mult = 1 + float64(c.Count/c.Rule.Every)*c.Rule.Step
	} else {
		c.Mult += c.Rule.Step
	}
	if c.Rule.Max > 0 && c.Mult > c.Rule.Max {
		c.Mult = c.Rule.Max
	}
}

// Miss breaks the streak: count goes to 0 and the multiplier to 1 together.
func (c *Combo) Miss() {
	c.Count = 0
	c.Mult = 1
}

// Reset clears the streak and the best run.
func (c *Combo) Reset() {
	c.Miss()
	c.Best = 0
}

// StepMultiplier returns the distance-driven multiplier 1 + floor(d/per).
func StepMultiplier(distance, per float64) float64 {
	if per <= 0 || distance <= 0 {
		return 1
	}
	return 1 + math.Floor(distance/per)
}
