// Package echorealm implements Echo Realm, a four-lane rhythm game. Notes
// travel outward from the core along four rails and are struck as they
// cross the hit ring.
package echorealm

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const (
	gameID         = "echorealm"
	laneCount      = 4
	despawnAt      = 1.2
	boostOverdrive = 0 // the only booster kind
)

// note is a beat travelling along a rail. Progress 0 is the core and 1 is
// the end of the rail.
type note struct {
	Lane     int
	Progress float64
	Speed    float64
	Missed   bool
	Hit      bool
}

// grade is the result of a lane strike.
type grade struct {
	Text   string
	Points float64
	Color  core.Color
}

// Game implements Echo Realm.
type Game struct {
	kit *kit.Kit

	health    sim.Meter
	charge    sim.Meter
	combo     sim.Combo
	score     int
	notes     sim.Entities[note]
	boosters  sim.Boosters[int]
	noteGate  sim.Cadence
	feedback  grade
	fbLeft    float64
	laneFlash [laneCount]float64
	pulse     float64
}

// New creates an Echo Realm instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.build()
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Echo Realm" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Strike each lane as its note crosses the ring." }

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
	k := g.kit
	g.combo = sim.NewCombo(sim.ComboRule{
		Every: int(k.Tune("combo_every", 10)),
		Step:  1,
		Max:   k.Tune("combo_max", 8),
	})
}

func (g *Game) newRun() {
	g.health = sim.NewMeter(sim.MeterMax)
	g.charge = sim.NewMeter(0)
	g.combo.Reset()
	g.score = 0
	g.notes.Clear()
	g.boosters.Clear()
	g.noteGate.Reset()
	g.fbLeft = 0
	g.laneFlash = [laneCount]float64{}
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
	g.pulse += scale
	if g.fbLeft > 0 {
		g.fbLeft -= scale
	}
	for i := range g.laneFlash {
		if g.laneFlash[i] > 0 {
			g.laneFlash[i] -= scale
		}
	}

	for _, lane := range pressedLanes(t.Input) {
		g.strike(lane)
	}

	if len(g.boosters.Update(scale)) > 0 {
		g.charge.Set(0)
	}
	if g.charge.Full() && !g.boosters.Active(boostOverdrive) {
		g.boosters.Add(boostOverdrive, k.Tune("overdrive_frames", 480))
	}

	if g.noteGate.Due(scale, k.Scaler.Interval(float64(g.score))) {
		speed := k.Scaler.Speed(float64(g.score))
		speed = g.boosters.Scale(boostOverdrive, speed, k.Tune("overdrive_speed", 1.5))
		g.notes.Spawn(note{Lane: k.Rand.Intn(laneCount), Speed: speed})
	}
	g.advanceNotes(scale)

	if g.health.Empty() {
		k.Lose(g.score)
	}
	return g.result()
}

// pressedLanes maps this tick's presses to lanes: up, right, down, left, or
// the four dedicated lane keys.
func pressedLanes(in core.InputFrame) []int {
	var lanes []int
	dirs := [laneCount]core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
	for i := 0; i < laneCount; i++ {
		if in.Has(dirs[i]) || in.Has(core.LaneActions[i]) {
			lanes = append(lanes, i)
		}
	}
	return lanes
}

// rate grades a strike at the given progress.
func (g *Game) rate(progress float64) grade {
	k := g.kit
	acc := 1 - math.Abs(progress-k.Tune("sweet_spot", 0.9))
	switch {
	case acc < k.Tune("good_acc", 0.85):
		return grade{"OK", k.Tune("ok_points", 20), core.ColorBlue}
	case acc < k.Tune("perfect_acc", 0.94):
		return grade{"GOOD", k.Tune("good_points", 50), core.ColorBrightBlue}
	default:
		return grade{"PERFECT", k.Tune("perfect_points", 100), core.ColorBrightWhite}
	}
}

// strike resolves a lane press against the first live note inside the
// hit window. A press with no note in the window is a miss.
func (g *Game) strike(lane int) {
	k := g.kit
	g.laneFlash[lane] = 8
	lo, hi := k.Tune("window_start", 0.75), k.Tune("window_end", 1.05)

	items := g.notes.Items()
	for i := range items {
		n := &items[i]
		if n.Lane != lane || n.Missed || n.Progress <= lo || n.Progress >= hi {
			continue
		}
		gr := g.rate(n.Progress)
		mult := g.combo.Mult * g.boosters.Scale(boostOverdrive, 1, k.Tune("overdrive_points", 2))
		g.score += int(gr.Points * mult)
		g.combo.Hit()
		if gr.Text == "PERFECT" {
			g.charge.Add(k.Tune("meter_perfect", 5))
		} else {
			g.charge.Add(k.Tune("meter_hit", 2))
		}
		g.feedback, g.fbLeft = gr, 24
		x, y := g.railPoint(lane, n.Progress)
		k.Burst(x, y, 6, 2, gr.Color)
		n.Hit = true
		g.notes.Update(func(o *note) bool { return !o.Hit })
		return
	}

	g.combo.Miss()
	g.health.Add(-k.Tune("empty_damage", 5))
	g.feedback, g.fbLeft = grade{Text: "MISS", Color: core.ColorBrightRed}, 24
}

// advanceNotes moves notes outward. A note passing the miss line counts
// once as a miss and then drifts off the rail.
func (g *Game) advanceNotes(scale float64) {
	k := g.kit
	missAt := k.Tune("miss_at", 1.1)
	g.notes.Update(func(n *note) bool {
		n.Progress += n.Speed * scale
		if n.Progress > missAt && !n.Missed {
			n.Missed = true
			g.combo.Miss()
			g.health.Add(-k.Tune("miss_damage", 8))
			k.Shake.Kick(6)
		}
		return n.Progress < despawnAt
	})
}

func (g *Game) center() (float64, float64) {
	return g.kit.W / 2, g.kit.H / 2
}

// rail is the rail length in world units.
func (g *Game) rail() float64 {
	return g.kit.H/2 - 2*core.CellH
}

func laneAngle(lane int) float64 {
	return float64(lane)*math.Pi/2 - math.Pi/2
}

func (g *Game) railPoint(lane int, progress float64) (float64, float64) {
	cx, cy := g.center()
	a := laneAngle(lane)
	// Horizontal rails use the wider aspect of the viewport.
	rx := g.rail() * core.CellH / core.CellW
	return cx + math.Cos(a)*progress*rx, cy + math.Sin(a)*progress*g.rail()
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.score, int(g.health.Value()))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.score, int(g.health.Value()))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)

	od := g.boosters.Active(boostOverdrive)
	railColor := core.ColorViolet
	if od {
		railColor = core.ColorBrightMagenta
	}
	for lane := 0; lane < laneCount; lane++ {
		for p := 0.1; p <= 1.0; p += 0.05 {
			x, y := g.railPoint(lane, p)
			k.Plot(dst, x, y, '·', railColor)
		}
		x, y := g.railPoint(lane, k.Tune("sweet_spot", 0.9))
		ring, c := '○', core.ColorBrightBlue
		if g.laneFlash[lane] > 0 {
			ring, c = '◉', core.ColorBrightWhite
		}
		k.Plot(dst, x, y, ring, c)
	}

	for _, n := range g.notes.Items() {
		x, y := g.railPoint(n.Lane, n.Progress)
		glyph, c := '◆', core.ColorBrightCyan
		if n.Missed {
			glyph, c = '×', core.ColorRed
		}
		k.Plot(dst, x, y, glyph, c)
	}

	cx, cy := g.center()
	coreR := 30 + math.Sin(g.pulse*0.2)*8
	coreColor := core.ColorBlue
	if od {
		coreColor = core.ColorBrightWhite
	}
	k.Disc(dst, cx, cy, coreR, '●', coreColor)
	k.Effects(dst)

	if g.fbLeft > 0 {
		k.Text(dst, cx, cy-g.rail()*0.55, g.feedback.Text, g.feedback.Color)
	}

	mode := "SYNCING"
	if od {
		mode = "OVERDRIVE 2X"
	}
	k.HUD(dst,
		kit.Label("ECHO REALM", fmt.Sprintf("SCORE %d", g.score)),
		kit.Label(fmt.Sprintf("COMBO %d", g.combo.Count), fmt.Sprintf("x%d", int(g.combo.Mult)), mode),
		core.ColorBrightBlue)

	bottom := dst.Height() - 1
	dst.DrawTextColor(1, bottom, "SYNC", core.ColorBrightBlue)
	dst.DrawBar(6, bottom, 14, g.health.Frac(), core.ColorBrightBlue)
	dst.DrawTextColor(22, bottom, "OVERDRIVE", core.ColorBrightMagenta)
	dst.DrawBar(32, bottom, 14, g.charge.Frac(), core.ColorBrightMagenta)

	k.Overlay(dst, "ECHO REALM", g.score, []string{
		"Arrows/WASD or keys 1-4 strike up, right, down, left.",
		"Hit notes on the ring; empty strikes cost sync.",
		"Fill overdrive for double points.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
