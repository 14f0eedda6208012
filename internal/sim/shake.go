package sim

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shake is a screen-shake magnitude that decays linearly by a fixed amount
// per reference frame until it reaches zero.
type Shake struct {
	decay float64
	mag   float64
	tween *gween.Tween
}

// NewShake returns a resting shake that decays by decay per frame.
func NewShake(decay float64) *Shake {
	if decay <= 0 {
		decay = 1
	}
	return &Shake{decay: decay}
}

// Kick raises the magnitude. A weaker kick never cuts a stronger one short.
func (s *Shake) Kick(mag float64) {
	if mag <= s.mag {
		return
	}
	s.mag = mag
	s.tween = gween.New(float32(mag), 0, float32(mag/s.decay), ease.Linear)
}

// Update decays the magnitude by scale frames.
func (s *Shake) Update(scale float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(scale))
	s.mag = float64(v)
	if done || s.mag <= 0 {
		s.mag = 0
		s.tween = nil
	}
}

// Magnitude returns the current magnitude in world units.
func (s *Shake) Magnitude() float64 {
	return s.mag
}

// Offset returns a random cell offset for this frame's render. The world
// magnitude is converted to at most a couple of terminal cells.
func (s *Shake) Offset(rng *rand.Rand) (dx, dy int) {
	if s.mag < 1 || rng == nil {
		return 0, 0
	}
	r := int(s.mag/10) + 1
	if r > 2 {
		r = 2
	}
	return rng.Intn(2*r+1) - r, rng.Intn(r+1) - r/2
}

// Clear stops any shake.
func (s *Shake) Clear() {
	s.mag = 0
	s.tween = nil
}
