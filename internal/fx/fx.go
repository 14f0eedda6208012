// Package fx holds short-lived visual effects (particle bursts, engine
// trails, sparks) in a small entity-component world owned by one game
// instance. Effects never affect the simulation; they only draw.
package fx

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

// ParticleData is one drifting glyph that fades out.
type ParticleData struct {
	X, Y    float64 // World position
	VX, VY  float64 // Velocity per reference frame
	Drag    float64 // Velocity kept per frame, 0..1 (0 means no drag)
	Life    float64 // Frames left
	MaxLife float64
	Glyph   rune
	Color   core.Color
}

// Particle is the component type of every effect entity.
var Particle = donburi.NewComponentType[ParticleData]()

// Effects is an effect world.
type Effects struct {
	world donburi.World
	limit int
}

// DefaultLimit caps live particles per world.
const DefaultLimit = 400

// New creates an empty effect world.
func New() *Effects {
	return &Effects{world: donburi.NewWorld(), limit: DefaultLimit}
}

// Emit adds one particle. Particles beyond the limit are dropped.
func (f *Effects) Emit(p ParticleData) {
	if f.world.Len() >= f.limit || p.Life <= 0 {
		return
	}
	if p.MaxLife <= 0 {
		p.MaxLife = p.Life
	}
	entry := f.world.Entry(f.world.Create(Particle))
	Particle.SetValue(entry, p)
}

// Burst emits n particles flying out of (x, y) at up to speed units per
// frame, living about life frames.
func (f *Effects) Burst(rng *rand.Rand, x, y float64, n int, speed, life float64, c core.Color) {
	for i := 0; i < n; i++ {
		a := rng.Float64() * 2 * math.Pi
		v := speed * (0.3 + 0.7*rng.Float64())
		f.Emit(ParticleData{
			X: x, Y: y,
			VX: math.Cos(a) * v, VY: math.Sin(a) * v,
			Drag:  0.94,
			Life:  life * (0.6 + 0.4*rng.Float64()),
			Glyph: burstGlyph(i),
			Color: c,
		})
	}
}

// Trail drops a stationary particle that fades in life frames.
func (f *Effects) Trail(x, y, life float64, glyph rune, c core.Color) {
	f.Emit(ParticleData{X: x, Y: y, Life: life, Glyph: glyph, Color: c})
}

// Update moves every particle by scale frames and removes expired ones.
func (f *Effects) Update(scale float64) {
	var dead []donburi.Entity
	Particle.Each(f.world, func(e *donburi.Entry) {
		p := Particle.Get(e)
		p.X += p.VX * scale
		p.Y += p.VY * scale
		if p.Drag > 0 {
			k := math.Pow(p.Drag, scale)
			p.VX *= k
			p.VY *= k
		}
		p.Life -= scale
		if p.Life <= 0 {
			dead = append(dead, e.Entity())
		}
	})
	for _, e := range dead {
		f.world.Remove(e)
	}
}

// Render draws every particle, shifted by the camera offset (world units).
// Fading particles switch to a dimmer glyph.
func (f *Effects) Render(s *core.Screen, camX, camY float64) {
	if s == nil {
		return
	}
	Particle.Each(f.world, func(e *donburi.Entry) {
		p := Particle.Get(e)
		cx, cy := core.ToCell(p.X-camX, p.Y-camY)
		glyph := p.Glyph
		if p.Life < p.MaxLife*0.35 {
			glyph = '.'
		}
		s.SetColor(cx, cy, glyph, p.Color)
	})
}

// Len returns the number of live particles.
func (f *Effects) Len() int {
	return f.world.Len()
}

// Clear removes every particle.
func (f *Effects) Clear() {
	f.world = donburi.NewWorld()
}

func burstGlyph(i int) rune {
	switch i % 3 {
	case 0:
		return '*'
	case 1:
		return '+'
	default:
		return '·'
	}
}
