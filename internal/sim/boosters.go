package sim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type booster[K comparable] struct {
	kind  K
	left  float64
	timer *gween.Tween
}

// Boosters tracks timed modifiers. Modifiers are applied when a value is
// read, so the underlying curve is never written and expiry restores the
// exact unmodified value.
type Boosters[K comparable] struct {
	active []booster[K]
}

// Add activates k for the given number of reference frames. Adding an
// active booster refreshes its duration.
func (b *Boosters[K]) Add(k K, frames float64) {
	t := gween.New(float32(frames), 0, float32(frames), ease.Linear)
	for i := range b.active {
		if b.active[i].kind == k {
			b.active[i].left = frames
			b.active[i].timer = t
			return
		}
	}
	b.active = append(b.active, booster[K]{kind: k, left: frames, timer: t})
}

// Active reports whether k is running.
func (b *Boosters[K]) Active(k K) bool {
	for _, e := range b.active {
		if e.kind == k {
			return true
		}
	}
	return false
}

// Remaining returns the frames left on k, or 0.
func (b *Boosters[K]) Remaining(k K) float64 {
	for _, e := range b.active {
		if e.kind == k {
			return e.left
		}
	}
	return 0
}

// Update runs the timers by scale frames and returns the kinds that expired.
func (b *Boosters[K]) Update(scale float64) []K {
	var expired []K
	n := 0
	for _, e := range b.active {
		v, done := e.timer.Update(float32(scale))
		e.left = float64(v)
		if done {
			expired = append(expired, e.kind)
			continue
		}
		b.active[n] = e
		n++
	}
	b.active = b.active[:n]
	return expired
}

// Clear drops every booster.
func (b *Boosters[K]) Clear() {
	b.active = b.active[:0]
}

// Scale returns base multiplied by factor while k is active, else base.
func (b *Boosters[K]) Scale(k K, base, factor float64) float64 {
	if b.Active(k) {
		return base * factor
	}
	return base
}
