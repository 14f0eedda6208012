// Package solarflare implements Solar Flare: flares race in from every
// direction toward a star, and the player swings an orbital shield to block
// them. Blocks charge energy, which soaks core hits or fires a nova burst.
package solarflare

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const gameID = "solarflare"

type flareKind int

const (
	flareNormal flareKind = iota
	flareSuper
	flareVoid
)

var flareNames = map[string]flareKind{
	"normal": flareNormal,
	"super":  flareSuper,
	"void":   flareVoid,
}

// flare travels inward along a fixed angle.
type flare struct {
	Kind  flareKind
	Angle float64
	Dist  float64
	Speed float64
}

type boosterKind int

const (
	boostExpander boosterKind = iota
	boostChronos
	boostCoolant
)

// capsule is a booster pickup travelling inward like a flare.
type capsule struct {
	Kind  boosterKind
	Angle float64
	Dist  float64
	Speed float64
}

// Game implements Solar Flare.
type Game struct {
	kit *kit.Kit

	shieldAngle float64
	targetAngle float64
	vitals      sim.Vitals // Health, with energy as the absorbing meter
	combo       sim.Combo
	score       int
	burstFlash  float64

	flares   sim.Entities[flare]
	capsules sim.Entities[capsule]
	boosters sim.Boosters[boosterKind]

	flareGate   sim.Cadence
	capsuleGate sim.Cadence
	flareMix    *sim.Table[flareKind]
}

// New creates a Solar Flare instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.build()
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Solar Flare" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Orbit the shield around the star and block every flare." }

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
	g.flareMix = sim.TableFrom(flareNormal, k.Config.Categories, flareNames)
	g.combo = sim.NewCombo(sim.ComboRule{
		Every: int(k.Tune("combo_every", 10)),
		Step:  k.Tune("combo_step", 0),
		Max:   k.Tune("combo_max", 3),
	})
}

func (g *Game) newRun() {
	g.shieldAngle, g.targetAngle = -math.Pi/2, -math.Pi/2
	g.vitals = sim.NewVitals(0)
	g.combo.Reset()
	g.score = 0
	g.burstFlash = 0
	g.flares.Clear()
	g.capsules.Clear()
	g.boosters.Clear()
	g.flareGate.Reset()
	g.capsuleGate.Reset()
}

func (g *Game) center() (float64, float64) {
	return g.kit.W / 2, g.kit.H / 2
}

// spawnDist is just outside the visible corner of the viewport.
func (g *Game) spawnDist() float64 {
	return math.Hypot(g.kit.W, g.kit.H)/2 + 40
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
	g.boosters.Update(scale)
	if g.burstFlash > 0 {
		g.burstFlash -= scale
	}

	g.aim(t.Input, scale)
	if t.Input.Has(core.ActionSpecial) {
		g.burst()
	}

	if g.flareGate.Due(scale, k.Scaler.Interval(float64(g.score))) {
		g.spawnFlare()
	}
	if g.capsuleGate.Due(scale, k.Tune("booster_every", 450)) {
		g.capsules.Spawn(capsule{
			Kind:  boosterKind(k.Rand.Intn(3)),
			Angle: k.Rand.Float64() * 2 * math.Pi,
			Dist:  g.spawnDist(),
			Speed: 2,
		})
	}

	g.updateFlares(scale)
	g.updateCapsules(scale)

	if g.vitals.Dead() {
		k.Lose(g.score)
	}
	return g.result()
}

// aim turns the shield toward its target angle along the shortest arc.
func (g *Game) aim(in core.InputFrame, scale float64) {
	k := g.kit
	if in.HasPointer {
		px, py := core.FromCell(in.PointerX, in.PointerY)
		cx, cy := g.center()
		if px != cx || py != cy {
			g.targetAngle = math.Atan2(py-cy, px-cx)
		}
	}
	turn := k.Tune("turn", 0.08) * scale
	switch {
	case in.IsHeld(core.ActionLeft) || in.IsHeld(core.ActionUp):
		g.shieldAngle = core.WrapAngle(g.shieldAngle - turn)
		g.targetAngle = g.shieldAngle
		return
	case in.IsHeld(core.ActionRight) || in.IsHeld(core.ActionDown):
		g.shieldAngle = core.WrapAngle(g.shieldAngle + turn)
		g.targetAngle = g.shieldAngle
		return
	}

	diff := core.WrapAngle(g.targetAngle - g.shieldAngle)
	g.shieldAngle = core.WrapAngle(g.shieldAngle + diff*math.Min(1, k.Tune("chase", 0.15)*scale))
}

func (g *Game) shieldWidth() float64 {
	k := g.kit
	if g.boosters.Active(boostExpander) {
		return k.Tune("expander_width", 1.0)
	}
	return k.Tune("shield_width", 0.5)
}

func (g *Game) spawnFlare() {
	k := g.kit
	kind := g.flareMix.Pick(k.Rand.Float64(), float64(g.score))
	speed := (1.5 + k.Rand.Float64()*1.5) * k.Scaler.Speed(float64(g.score))
	switch kind {
	case flareSuper:
		speed *= 1.25
	case flareVoid:
		speed *= 1.8
	}
	g.flares.Spawn(flare{
		Kind:  kind,
		Angle: k.Rand.Float64() * 2 * math.Pi,
		Dist:  g.spawnDist(),
		Speed: speed,
	})
}

// updateFlares moves flares inward and resolves, in order, shield blocks
// and core hits. A resolved flare leaves the registry in the same pass.
func (g *Game) updateFlares(scale float64) {
	k := g.kit
	inner, outer := k.Tune("shield_inner", 100), k.Tune("shield_outer", 140)
	coreRadius := k.Tune("core_radius", 60)
	width := g.shieldWidth()
	slow := g.boosters.Scale(boostChronos, 1, k.Tune("chronos_factor", 0.5))
	cx, cy := g.center()

	g.flares.Update(func(f *flare) bool {
		f.Dist -= f.Speed * slow * scale
		x, y := cx+math.Cos(f.Angle)*f.Dist, cy+math.Sin(f.Angle)*f.Dist

		if sim.InBand(f.Angle, f.Dist, g.shieldAngle, inner, outer, width) {
			points, energy := k.Tune("points", 100), k.Tune("energy_gain", 5)
			if f.Kind == flareSuper {
				points, energy = k.Tune("super_points", 500), k.Tune("super_energy", 15)
			}
			g.combo.Hit()
			g.score += int(points * g.combo.Mult)
			g.vitals.Shield.Add(energy)
			k.Shake.Kick(5)
			k.Burst(x, y, 6, 3, core.ColorBrightYellow)
			return false
		}

		if f.Dist < coreRadius {
			damage := k.Tune("damage", 8)
			if f.Kind == flareVoid {
				damage = k.Tune("void_damage", 15)
			}
			g.vitals.Hit(damage, k.Tune("energy_drain", 10))
			g.combo.Miss()
			k.Shake.Kick(k.Tune("shake_hit", 20))
			k.Burst(x, y, 12, 4, core.ColorBrightRed)
			return false
		}
		return true
	})
}

func (g *Game) updateCapsules(scale float64) {
	k := g.kit
	width := g.shieldWidth()
	g.capsules.Update(func(c *capsule) bool {
		c.Dist -= c.Speed * scale
		if sim.InBand(c.Angle, c.Dist, g.shieldAngle, 105, 135, width) {
			switch c.Kind {
			case boostCoolant:
				g.vitals.Health.Add(k.Tune("coolant", 35))
			case boostExpander:
				g.boosters.Add(boostExpander, k.Tune("expander_frames", 900))
			case boostChronos:
				g.boosters.Add(boostChronos, k.Tune("chronos_frames", 720))
			}
			k.Shake.Kick(10)
			return false
		}
		return c.Dist > -50
	})
}

// burst spends a full energy meter to clear every flare in flight.
func (g *Game) burst() {
	if !g.vitals.Shield.Full() {
		return
	}
	k := g.kit
	g.score += g.flares.Len() * int(k.Tune("burst_points", 200))
	cx, cy := g.center()
	for _, f := range g.flares.Items() {
		k.Burst(cx+math.Cos(f.Angle)*f.Dist, cy+math.Sin(f.Angle)*f.Dist, 4, 3, core.ColorWhite)
	}
	g.flares.Clear()
	g.vitals.Shield.Set(0)
	g.burstFlash = 48
	k.Shake.Kick(30)
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.score, int(g.vitals.Health.Value()))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.score, int(g.vitals.Health.Value()))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)
	cx, cy := g.center()

	sun := core.ColorOrange
	if g.burstFlash > 0 {
		sun = core.ColorBrightWhite
	}
	k.Disc(dst, cx, cy, k.Tune("core_radius", 60), '●', sun)

	// Shield arc at the middle of the blocking band.
	radius := (k.Tune("shield_inner", 100) + k.Tune("shield_outer", 140)) / 2
	width := g.shieldWidth()
	shieldColor := core.ColorBrightCyan
	if g.boosters.Active(boostExpander) {
		shieldColor = core.ColorBrightGreen
	}
	for a := -width; a <= width; a += 0.05 {
		ang := g.shieldAngle + a
		k.Plot(dst, cx+math.Cos(ang)*radius, cy+math.Sin(ang)*radius, '█', shieldColor)
	}

	for _, f := range g.flares.Items() {
		r, c := '*', core.ColorYellow
		switch f.Kind {
		case flareSuper:
			r, c = '✹', core.ColorBrightWhite
		case flareVoid:
			r, c = '◆', core.ColorPink
		}
		k.Plot(dst, cx+math.Cos(f.Angle)*f.Dist, cy+math.Sin(f.Angle)*f.Dist, r, c)
	}
	for _, c := range g.capsules.Items() {
		r, col := 'H', core.ColorBrightRed
		switch c.Kind {
		case boostExpander:
			r, col = 'E', core.ColorBrightGreen
		case boostChronos:
			r, col = 'C', core.ColorBrightBlue
		}
		k.Plot(dst, cx+math.Cos(c.Angle)*c.Dist, cy+math.Sin(c.Angle)*c.Dist, r, col)
	}
	k.Effects(dst)

	var active []string
	if g.boosters.Active(boostExpander) {
		active = append(active, fmt.Sprintf("EXPANDER %ds", int(g.boosters.Remaining(boostExpander)/60)))
	}
	if g.boosters.Active(boostChronos) {
		active = append(active, fmt.Sprintf("CHRONOS %ds", int(g.boosters.Remaining(boostChronos)/60)))
	}
	k.HUD(dst,
		kit.Label("SOLAR FLARE", fmt.Sprintf("SCORE %d", g.score), fmt.Sprintf("COMBO %d x%.1f", g.combo.Count, g.combo.Mult)),
		kit.Label(active...),
		core.ColorBrightYellow)

	bottom := dst.Height() - 1
	dst.DrawTextColor(1, bottom, "CORE", core.ColorBrightRed)
	dst.DrawBar(6, bottom, 14, g.vitals.Health.Frac(), core.ColorBrightRed)
	dst.DrawTextColor(22, bottom, "ENERGY", core.ColorBrightCyan)
	dst.DrawBar(29, bottom, 14, g.vitals.Shield.Frac(), core.ColorBrightCyan)
	if g.vitals.Shield.Full() {
		dst.DrawTextColor(45, bottom, "E: NOVA BURST READY", core.ColorBrightWhite)
	}

	k.Overlay(dst, "SOLAR FLARE", g.score, []string{
		"Aim the shield with the mouse or arrow keys.",
		"Blocks charge energy; energy soaks core hits.",
		"Full energy + E clears every flare.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
