// Package sim holds the simulation skeleton shared by every arcade game:
// the frame clock and its cancellation handle, entity registries and spawn
// gates, the phase machine, clamped vitals, combo scoring, screen shake and
// timed boosters.
//
// All rates in this package are expressed per reference frame (1/60 s) and
// multiplied by the frame scale the Clock computes.
package sim

import (
	"math/rand"
	"time"
)

// ReferenceFrame is the frame interval all per-frame rates are tuned for.
const ReferenceFrame = 16670 * time.Microsecond

// MaxScale caps the frame scale so a long stall (suspended terminal, slow
// SSH link) advances the world by at most two reference frames.
const MaxScale = 2.0

// Clock converts wall-clock timestamps into a frame scale.
// The zero value is ready to use.
type Clock struct {
	last    time.Time
	started bool
}

// NewClock returns a clock that has not seen a frame yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a frame at now and returns the elapsed time in reference
// frames, clamped to (0, MaxScale]. The first tick after creation or Reset
// returns 1.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return ScaleFor(elapsed)
}

// Reset forgets the last timestamp. Hosts reset the clock whenever the
// simulation is not playing so resuming never produces a jump.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// ScaleFor converts an elapsed duration to a clamped frame scale.
// Non-positive durations (timestamps that did not advance) count as a
// minimal step rather than freezing the world.
func ScaleFor(elapsed time.Duration) float64 {
	scale := float64(elapsed) / float64(ReferenceFrame)
	if scale <= 0 {
		return 0.001
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// NewRand returns the seeded random source a game instance owns.
// A zero seed still produces a deterministic stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
