// Package zenvoid implements Zen Void, a stacker: a sliding monolith is
// dropped onto the tower and whatever overhangs is sheared off.
package zenvoid

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const gameID = "zenvoid"

// monolith is one placed block of the tower.
type monolith struct {
	X, Width float64
	Perfect  bool
}

// Game implements Zen Void.
type Game struct {
	kit *kit.Kit

	stack []monolith
	x     float64 // Left edge of the sliding block
	width float64
	dir   float64
	combo sim.Combo
	score int

	camera *gween.Tween
	flash  float64
}

// New creates a Zen Void instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.build()
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Zen Void" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Drop each monolith squarely on the last." }

// Configure selects a config file and difficulty preset.
func (g *Game) Configure(path, preset string) error { return g.kit.Configure(path, preset) }

// Resize follows the live viewport.
func (g *Game) Resize(cols, rows int) { g.kit.Resize(cols, rows) }

// Reset rebuilds the game from scratch and shows the briefing.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.kit.Reset(cfg)
	g.build()
	g.newRun()
}

func (g *Game) build() {
	g.combo = sim.NewCombo(sim.ComboRule{
		Step: g.kit.Tune("mult_step", 0.5),
		Max:  g.kit.Tune("mult_max", 10),
	})
}

func (g *Game) newRun() {
	g.stack = g.stack[:0]
	g.x = 0
	g.width = g.kit.Tune("block_width", 200)
	g.dir = 1
	g.combo.Reset()
	g.score = 0
	g.camera = nil
	g.flash = 0
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
	if g.flash > 0 {
		g.flash -= scale
	}

	g.slide(scale)
	if t.Input.Has(core.ActionFire) {
		g.drop()
	}
	if g.camera != nil {
		v, done := g.camera.Update(float32(scale))
		k.CamY = float64(v)
		if done {
			g.camera = nil
		}
	}
	return g.result()
}

func (g *Game) speed() float64 {
	return g.kit.Scaler.Speed(float64(len(g.stack)))
}

// slide moves the block and bounces it off both edges.
func (g *Game) slide(scale float64) {
	w := g.kit.W
	g.x += g.speed() * g.dir * scale
	if g.x+g.width > w {
		g.x = math.Max(0, w-g.width)
		g.dir = -1
	}
	if g.x < 0 {
		g.x = 0
		g.dir = 1
	}
}

// drop places the sliding block. Overhang is cut away; a block that misses
// the tower entirely ends the run.
func (g *Game) drop() {
	k := g.kit
	mult := g.combo.Mult
	if len(g.stack) == 0 {
		g.stack = append(g.stack, monolith{X: g.x, Width: g.width, Perfect: true})
		g.score += int(k.Tune("drop_points", 100))
		g.follow()
		return
	}

	last := g.stack[len(g.stack)-1]
	diff := g.x - last.X
	abs := math.Abs(diff)
	if abs >= g.width {
		k.Shake.Kick(20)
		k.Lose(g.score)
		return
	}

	if abs < k.Tune("perfect_tolerance", 6) {
		g.combo.Hit()
		g.score += int(math.Floor(k.Tune("perfect_points", 500) * mult))
		g.stack = append(g.stack, monolith{X: last.X, Width: g.width, Perfect: true})
		g.flash = 12
		k.Burst(last.X+g.width/2, g.rowY(len(g.stack)-1), 10, 3, core.ColorBrightWhite)
	} else {
		g.combo.Miss()
		g.score += int(math.Floor(k.Tune("drop_points", 100) * mult))
		x := last.X
		if diff > 0 {
			x = g.x
		}
		g.width -= abs
		g.stack = append(g.stack, monolith{X: x, Width: g.width})
	}
	k.Shake.Kick(4)
	g.follow()
}

// rowY is the world y of the given tower row.
func (g *Game) rowY(row int) float64 {
	return g.kit.H - 2*core.CellH - float64(row)*core.CellH
}

// follow eases the camera so the top of the tower stays in view.
func (g *Game) follow() {
	k := g.kit
	rows := k.Tune("visible_rows", 12)
	target := -math.Max(0, float64(len(g.stack))-rows) * core.CellH
	if target == k.CamY {
		return
	}
	g.camera = gween.New(float32(k.CamY), float32(target), float32(k.Tune("camera_frames", 20)), ease.OutQuad)
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.score, -1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.score, -1)
}

var palette = []core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorCyan, core.ColorBrightCyan}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)

	for i, m := range g.stack {
		c := palette[i%len(palette)]
		glyph := '▓'
		if m.Perfect {
			c, glyph = core.ColorBrightWhite, '█'
		}
		g.bar(dst, m.X, m.Width, g.rowY(i), glyph, c)
	}
	if k.Playing() {
		c := core.ColorBrightGreen
		if g.flash > 0 {
			c = core.ColorBrightWhite
		}
		g.bar(dst, g.x, g.width, g.rowY(len(g.stack)), '█', c)
	}
	k.Effects(dst)

	k.HUD(dst,
		kit.Label("ZEN VOID", fmt.Sprintf("SCORE %d", g.score)),
		kit.Label(fmt.Sprintf("HEIGHT %d", len(g.stack)), fmt.Sprintf("x%.1f", g.combo.Mult)),
		core.ColorBrightGreen)

	k.Overlay(dst, "ZEN VOID", g.score, []string{
		"SPACE drops the monolith.",
		"Overhang is sheared off; perfect drops build the multiplier.",
	})
}

// bar fills the cells covered by [x, x+width) on one row.
func (g *Game) bar(dst *core.Screen, x, width, y float64, glyph rune, c core.Color) {
	x0, cy := g.kit.Cell(x, y)
	x1, _ := g.kit.Cell(x+width, y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for cx := x0; cx < x1; cx++ {
		dst.SetColor(cx, cy, glyph, c)
	}
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
