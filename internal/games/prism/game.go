// Package prism implements Perspective Prism: concentric rings spin at
// different speeds and must be locked, innermost first, as each one's
// marker passes under the beam.
package prism

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
)

const gameID = "prism"

// ringDefs name and color the rings from the innermost out.
var ringDefs = []struct {
	Label string
	Color core.Color
}{
	{"GENERATION", core.ColorBrightRed},
	{"IDENTITY", core.ColorBrightGreen},
	{"ORIGIN", core.ColorBrightYellow},
	{"CONTEXT", core.ColorBrightCyan},
	{"VISION", core.ColorViolet},
	{"PURPOSE", core.ColorPink},
}

// ring spins at Speed degrees per frame. Offset 0 is under the beam.
type ring struct {
	Offset float64
	Speed  float64
	Locked bool
}

// Game implements Perspective Prism.
type Game struct {
	kit *kit.Kit

	rings    []ring
	lives    int
	score    int
	lastLock float64 // kit frame count at the last lock or level start
	bonus    string
	bonusFor float64
}

// New creates a Perspective Prism instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Perspective Prism" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Lock every ring as its marker crosses the beam." }

// Configure selects a config file and difficulty preset.
func (g *Game) Configure(path, preset string) error { return g.kit.Configure(path, preset) }

// Resize follows the live viewport.
func (g *Game) Resize(cols, rows int) { g.kit.Resize(cols, rows) }

// Reset rebuilds the game from scratch and shows the briefing.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.kit.Reset(cfg)
	g.newRun()
}

func (g *Game) newRun() {
	g.lives = int(g.kit.Tune("lives", 3))
	g.score = 0
	g.bonus, g.bonusFor = "", 0
	g.generate(1)
}

// generate lays out the rings of a level with random starting offsets.
func (g *Game) generate(level int) {
	k := g.kit
	count := int(math.Min(k.Tune("rings_base", 2)+float64(level), k.Tune("rings_max", 6)))
	base := k.Scaler.Speed(float64(level))
	g.rings = g.rings[:0]
	for i := 0; i < count; i++ {
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		g.rings = append(g.rings, ring{
			Offset: k.Rand.Float64() * 360,
			Speed:  (base + float64(i)*k.Tune("ring_speed_step", 0.4)) * dir,
		})
	}
	g.lastLock = k.Frames
}

// tolerance is the lock window either side of the beam, in degrees.
func (g *Game) tolerance() float64 {
	k := g.kit
	lvl := float64(k.Machine.Level())
	return math.Max(k.Tune("tolerance_base", 20)-lvl*k.Tune("tolerance_step", 2), k.Tune("tolerance_min", 10))
}

// Step advances the game by one scaled frame.
func (g *Game) Step(t core.Tick) core.StepResult {
	switch g.kit.Control(t.Input) {
	case kit.Restarted:
		g.newRun()
		return g.result()
	case kit.Idle:
		return g.result()
	}

	k := g.kit
	scale := t.Scale
	if k.Advance(scale) {
		g.generate(k.Machine.Level())
	}
	if g.bonusFor > 0 {
		g.bonusFor -= scale
	}
	if !k.Playing() {
		return g.result()
	}

	for i := range g.rings {
		if !g.rings[i].Locked {
			g.rings[i].Offset += g.rings[i].Speed * scale
		}
	}
	if t.Input.Has(core.ActionFire) {
		g.lock()
	}
	return g.result()
}

// next returns the index of the first unlocked ring, or -1.
func (g *Game) next() int {
	for i, r := range g.rings {
		if !r.Locked {
			return i
		}
	}
	return -1
}

// aligned reports whether an offset is inside the lock window.
func aligned(offset, tolerance float64) bool {
	a := math.Mod(math.Mod(offset, 360)+360, 360)
	return a < tolerance || a > 360-tolerance
}

// lock tries to lock the next ring. A miss costs a life.
func (g *Game) lock() {
	k := g.kit
	i := g.next()
	if i < 0 {
		return
	}
	if !aligned(g.rings[i].Offset, g.tolerance()) {
		g.lives--
		k.Shake.Kick(12)
		if g.lives <= 0 {
			g.lives = 0
			k.Lose(g.score)
			return
		}
		g.flash("LIFE LOST")
		return
	}

	since := k.Frames - g.lastLock
	g.lastLock = k.Frames
	bonus := 0.0
	switch {
	case since < k.Tune("fast_window", 120):
		bonus = k.Tune("fast_bonus", 150)
		g.flash(fmt.Sprintf("+%d SPEED BONUS", int(bonus)))
	case since < k.Tune("quick_window", 240):
		bonus = k.Tune("quick_bonus", 50)
		g.flash(fmt.Sprintf("+%d EARLY BIRD", int(bonus)))
	}
	g.rings[i].Locked = true
	g.rings[i].Offset = 0
	g.score += int(k.Tune("lock_points", 100))*k.Machine.Level() + int(bonus)
	cx, cy := g.center()
	k.Burst(cx, cy-g.radius(i), 8, 3, ringDefs[i%len(ringDefs)].Color)

	if g.next() >= 0 {
		return
	}
	if k.Machine.Level() < int(k.Tune("levels", 5)) {
		_ = k.Machine.BeginTransition(k.Tune("transition_frames", 120))
		return
	}
	k.Win(g.score)
}

func (g *Game) flash(text string) {
	g.bonus, g.bonusFor = text, 60
}

func (g *Game) center() (float64, float64) {
	return g.kit.W / 2, g.kit.H/2 + core.CellH/2
}

// radius is the vertical radius of ring i in world units.
func (g *Game) radius(i int) float64 {
	return 2*core.CellH + float64(i)*1.5*core.CellH
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.score, -1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.score, -1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)
	cx, cy := g.center()

	// The beam runs from the center up through the top of every ring.
	for y := cy; y > core.CellH; y -= core.CellH {
		k.Plot(dst, cx, y, '│', core.ColorBrightWhite)
	}

	for i, r := range g.rings {
		def := ringDefs[i%len(ringDefs)]
		ry := g.radius(i)
		rx := ry * 1.5
		body := core.ColorGray
		if r.Locked {
			body = def.Color
		}
		for a := 0.0; a < 2*math.Pi; a += 0.08 {
			k.Plot(dst, cx+math.Cos(a)*rx, cy+math.Sin(a)*ry, '·', body)
		}
		// Marker: offset 0 is straight up.
		m := (r.Offset - 90) * math.Pi / 180
		k.Plot(dst, cx+math.Cos(m)*rx, cy+math.Sin(m)*ry, '◆', def.Color)
	}
	k.Plot(dst, cx, cy, '✦', core.ColorBrightWhite)
	k.Effects(dst)

	if g.bonusFor > 0 && g.bonus != "" {
		dst.DrawTextCenteredColor(2, g.bonus, core.ColorBrightYellow)
	}

	label := ""
	if i := g.next(); i >= 0 {
		label = "NEXT " + ringDefs[i%len(ringDefs)].Label
	}
	k.HUD(dst,
		kit.Label("PERSPECTIVE PRISM", fmt.Sprintf("LEVEL %d", k.Machine.Level()), fmt.Sprintf("SCORE %d", g.score)),
		kit.Label(label, "LIVES "+strings.Repeat("♥", g.lives)),
		core.ColorBrightCyan)

	k.Overlay(dst, "PERSPECTIVE PRISM", g.score, []string{
		"SPACE locks the next ring when its marker is under the beam.",
		"Misses cost a life; fast locks earn bonuses.",
		fmt.Sprintf("Clear %d levels to complete the prism.", int(k.Tune("levels", 5))),
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
