// Package gravitywell implements Gravity Well, a swing runner: the craft
// coasts to the right and hooks onto gravity wells to bend its path.
package gravitywell

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const gameID = "gravitywell"

// well is a fixed attractor.
type well struct {
	ID     int
	X, Y   float64
	Radius float64
	Vortex bool
}

type point struct{ X, Y float64 }

// Game implements Gravity Well.
type Game struct {
	kit *kit.Kit

	x, y   float64
	vx, vy float64
	hooked int // well ID, 0 when free
	nextID int
	lastX  float64 // x of the most recently spawned well
	score  int

	wells     sim.Entities[well]
	trail     []point
	trailGate sim.Cadence
}

// New creates a Gravity Well instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Gravity Well" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Hold SPACE to hook the nearest well and swing." }

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
	k := g.kit
	g.x, g.y = 0, k.H/2
	g.vx, g.vy = k.Tune("start_vx", 8), 0
	g.hooked = 0
	g.nextID = 0
	g.lastX = 0
	g.score = 0
	g.wells.Clear()
	g.trail = g.trail[:0]
	g.trailGate.Reset()
	g.camera()
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
	k.Advance(scale)

	if t.Input.IsHeld(core.ActionFire) {
		if g.hooked == 0 {
			g.hook()
		}
	} else {
		g.hooked = 0
	}

	g.pull(scale)
	g.x += g.vx * scale
	g.y += g.vy * scale

	if g.trailGate.Due(scale, k.Tune("trail_every", 2)) {
		g.trail = append(g.trail, point{g.x, g.y})
		if n := int(k.Tune("trail_len", 20)); len(g.trail) > n {
			g.trail = g.trail[len(g.trail)-n:]
		}
	}

	for g.wells.Len() < int(k.Tune("max_wells", 8)) {
		g.spawnWell()
	}
	behind := g.x - k.Tune("cull_behind", 1000)
	g.wells.Update(func(w *well) bool {
		if w.X > behind {
			return true
		}
		if w.ID == g.hooked {
			g.hooked = 0
		}
		return false
	})

	g.score = int(math.Floor(g.x / 10))
	g.camera()

	margin := k.Tune("out_margin", 100)
	if g.y < -margin || g.y > k.H+margin {
		k.Shake.Kick(20)
		k.Lose(g.score)
	}
	return g.result()
}

// hook latches onto the nearest well in range, if any.
func (g *Game) hook() {
	best, bestD := 0, g.kit.Tune("hook_range", 450)
	for _, w := range g.wells.Items() {
		if d := core.Dist(g.x, g.y, w.X, w.Y); d < bestD {
			best, bestD = w.ID, d
		}
	}
	g.hooked = best
}

func (g *Game) hookedWell() (well, bool) {
	if g.hooked == 0 {
		return well{}, false
	}
	for _, w := range g.wells.Items() {
		if w.ID == g.hooked {
			return w, true
		}
	}
	return well{}, false
}

// pull accelerates the craft toward the hooked well. The pull strength
// grows with distance travelled, and the speed is capped.
func (g *Game) pull(scale float64) {
	w, ok := g.hookedWell()
	if !ok {
		return
	}
	k := g.kit
	dx, dy := w.X-g.x, w.Y-g.y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	force := k.Tune("force", 0.8) * k.Scaler.Speed(g.x)
	if w.Vortex {
		force *= k.Tune("vortex_mult", 2)
	}
	g.vx += dx / d * force * scale
	g.vy += dy / d * force * scale

	if limit := k.Tune("max_speed", 24); limit > 0 {
		if v := math.Hypot(g.vx, g.vy); v > limit {
			g.vx, g.vy = g.vx/v*limit, g.vy/v*limit
		}
	}
}

func (g *Game) spawnWell() {
	k := g.kit
	g.nextID++
	g.lastX += k.Tune("gap_min", 500) + k.Rand.Float64()*k.Tune("gap_jitter", 300)
	edge := k.Tune("edge_margin", 150)
	g.wells.Spawn(well{
		ID:     g.nextID,
		X:      g.lastX,
		Y:      edge + k.Rand.Float64()*math.Max(0, k.H-2*edge),
		Radius: k.Tune("radius_min", 50) + k.Rand.Float64()*k.Tune("radius_jitter", 70),
		Vortex: k.Rand.Float64() < k.Tune("vortex_chance", 0.2),
	})
}

// camera keeps the craft a quarter of the way in from the left.
func (g *Game) camera() {
	g.kit.CamX = g.x - g.kit.W/4
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

	// Parallax dust.
	for i := 0; i < 40; i++ {
		sx := math.Mod(float64(i*243)-g.x*0.1, k.W)
		if sx < 0 {
			sx += k.W
		}
		cx, cy := core.ToCell(sx, math.Mod(float64(i*532), k.H))
		dst.SetColor(cx, cy, '.', core.ColorGray)
	}

	for _, w := range g.wells.Items() {
		c := core.ColorYellow
		if w.Vortex {
			c = core.ColorViolet
		}
		for a := 0.0; a < 2*math.Pi; a += 0.25 {
			k.Plot(dst, w.X+math.Cos(a)*w.Radius, w.Y+math.Sin(a)*w.Radius, '·', c)
		}
		k.Disc(dst, w.X, w.Y, w.Radius*0.3, '●', c)
	}

	if w, ok := g.hookedWell(); ok {
		for i := 1; i < 12; i++ {
			f := float64(i) / 12
			k.Plot(dst, core.Lerp(g.x, w.X, f), core.Lerp(g.y, w.Y, f), '∙', core.ColorBrightWhite)
		}
	}
	for i, p := range g.trail {
		c := core.ColorBlue
		if i > len(g.trail)/2 {
			c = core.ColorBrightCyan
		}
		k.Plot(dst, p.X, p.Y, '·', c)
	}
	k.Plot(dst, g.x, g.y, '◉', core.ColorBrightWhite)
	k.Effects(dst)

	speed := math.Hypot(g.vx, g.vy)
	k.HUD(dst,
		kit.Label("GRAVITY WELL", fmt.Sprintf("SCORE %d", g.score)),
		kit.Label(fmt.Sprintf("VELOCITY %d", int(speed*100))),
		core.ColorBrightYellow)

	k.Overlay(dst, "GRAVITY WELL", g.score, []string{
		"Hold SPACE to hook the nearest well; release to fly free.",
		"Stay inside the field: drifting off the top or bottom ends the run.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
