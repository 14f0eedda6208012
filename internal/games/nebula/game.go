// Package nebula implements Nebula Drift, an endless vertical runner:
// the ship follows the pointer through falling debris, collects weapon and
// shield pickups, and speeds up the longer it survives.
package nebula

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const (
	gameID    = "nebula"
	shotSpeed = 25.0
	keyReach  = 80.0 // Target offset from the ship while a direction is held
	starCount = 40
)

// Game implements Nebula Drift.
type Game struct {
	kit *kit.Kit

	shipX, shipY     float64
	targetX, targetY float64
	vitals           sim.Vitals
	overdrive        sim.Meter
	weapon           weapon

	drive    float64 // Difficulty progress; grows faster in overdrive
	distance float64
	score    float64
	mult     float64

	hazards sim.Entities[hazard]
	shots   sim.Entities[shot]
	pickups sim.Entities[pickup]
	stars   []star

	spawnGate  sim.Cadence
	fireGate   sim.Cadence
	pickupGate sim.Cadence
	hazardMix  *sim.Table[hazardKind]
	pickupMix  *sim.Table[pickupKind]
}

// New creates a Nebula Drift instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.build()
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Nebula Drift" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Steer through the debris field; pickups arm your guns." }

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

// build derives the spawn tables from the loaded config record.
func (g *Game) build() {
	g.hazardMix = sim.TableFrom(asteroid, g.kit.Config.Categories, hazardNames)
	g.pickupMix = sim.NewTable(pickupPlasma,
		sim.Row[pickupKind]{Kind: pickupBurst, Above: 0.8},
		sim.Row[pickupKind]{Kind: pickupShield, Above: 0.6},
		sim.Row[pickupKind]{Kind: pickupMultiplier, Above: 0.4},
		sim.Row[pickupKind]{Kind: pickupRepair, Above: 0.2},
	)
}

// newRun clears every piece of run state.
func (g *Game) newRun() {
	k := g.kit
	g.shipX, g.shipY = k.W/2, k.H*0.8
	g.targetX, g.targetY = g.shipX, g.shipY
	g.vitals = sim.NewVitals(0)
	g.overdrive = sim.NewMeter(0)
	g.weapon = weaponNone
	g.drive, g.distance, g.score, g.mult = 0, 0, 0, 1

	g.hazards.Clear()
	g.shots.Clear()
	g.pickups.Clear()
	g.spawnGate.Reset()
	g.fireGate.Reset()
	g.pickupGate.Reset()

	g.stars = g.stars[:0]
	for i := 0; i < starCount; i++ {
		g.stars = append(g.stars, star{
			X:     k.FXRand.Float64() * k.W,
			Y:     k.FXRand.Float64() * k.H,
			Speed: k.FXRand.Float64()*15 + 5,
		})
	}
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

	scale := t.Scale
	k := g.kit
	k.Advance(scale)

	g.steer(t.Input, scale)

	g.overdrive.Add(k.Tune("overdrive_rate", 0.05) * scale)
	overdrive := g.overdrive.Full()

	driveRate, boost := 1.0, 1.0
	if overdrive {
		driveRate = k.Tune("overdrive_drive", 4)
		boost = k.Tune("overdrive_boost", 1.5)
	}
	g.drive += driveRate * scale
	speed := k.Scaler.Speed(g.drive)
	g.distance += speed / 10 * boost * scale
	g.mult = sim.StepMultiplier(g.distance, k.Tune("multiplier_per", 500))

	g.fire(scale)
	g.shots.Update(func(s *shot) bool {
		s.X += s.VX * scale
		s.Y += s.VY * scale
		return !s.Spent && s.Y > -50 && s.X > -50 && s.X < k.W+50
	})

	if g.spawnGate.Due(scale, k.Scaler.Interval(g.drive)) {
		g.spawnHazard(speed)
	}
	g.updateHazards(scale, overdrive)

	if g.pickupGate.Due(scale, k.Tune("pickup_every", 500)) {
		g.spawnPickup(speed)
	}
	g.updatePickups(scale)

	g.score += speed / 5 * g.mult * scale

	for i := range g.stars {
		st := &g.stars[i]
		par := 1.0
		if overdrive {
			par = 5
		}
		st.Y += st.Speed * par * (speed / 20) * scale
		if st.Y > k.H {
			st.Y = 0
			st.X = k.FXRand.Float64() * k.W
		}
	}

	if g.vitals.Dead() {
		k.Lose(g.Score())
	}
	return g.result()
}

// steer moves the ship toward its target. The pointer sets the target
// directly; held direction keys nudge it.
func (g *Game) steer(in core.InputFrame, scale float64) {
	k := g.kit
	if in.HasPointer {
		g.targetX, g.targetY = core.FromCell(in.PointerX, in.PointerY)
	}
	if in.IsHeld(core.ActionLeft) {
		g.targetX = g.shipX - keyReach
	}
	if in.IsHeld(core.ActionRight) {
		g.targetX = g.shipX + keyReach
	}
	if in.IsHeld(core.ActionUp) {
		g.targetY = g.shipY - keyReach
	}
	if in.IsHeld(core.ActionDown) {
		g.targetY = g.shipY + keyReach
	}

	lerp := math.Min(1, k.Tune("lerp", 0.15)*scale)
	g.shipX += (g.targetX - g.shipX) * lerp
	g.shipY += (g.targetY - g.shipY) * lerp
	g.clampShip()
}

func (g *Game) clampShip() {
	m := g.kit.Tune("margin", 50)
	g.shipX = core.ClampF(g.shipX, m, math.Max(m, g.kit.W-m))
	g.shipY = core.ClampF(g.shipY, m, math.Max(m, g.kit.H-m))
}

func (g *Game) fire(scale float64) {
	if g.weapon == weaponNone || !g.fireGate.Due(scale, g.kit.Tune("fire_every", 12)) {
		return
	}
	switch g.weapon {
	case weaponPlasma:
		g.shots.Spawn(shot{X: g.shipX, Y: g.shipY - 20, VY: -shotSpeed})
		g.kit.Shake.Kick(5)
	case weaponBurst:
		for i := -1; i <= 1; i++ {
			g.shots.Spawn(shot{X: g.shipX, Y: g.shipY - 20, VX: float64(i) * 5, VY: -shotSpeed, Burst: true})
		}
		g.kit.Shake.Kick(10)
	}
}

func (g *Game) spawnHazard(speed float64) {
	k := g.kit
	kind := g.hazardMix.Pick(k.Rand.Float64(), g.drive)
	h := hazard{
		Kind:   kind,
		X:      k.Rand.Float64() * k.W,
		Y:      -150,
		Size:   k.Rand.Float64()*60 + 30,
		Speed:  (k.Rand.Float64()*3 + 6) * (speed / 10),
		Angle:  k.Rand.Float64() * 2 * math.Pi,
		Health: 1,
	}
	switch kind {
	case wall:
		h.Size = 200
		if k.Rand.Float64() > 0.5 {
			h.X = 0
		} else {
			h.X = k.W
		}
	case nova:
		h.Health = 3
	case blackhole:
		h.Health = 999
	}
	g.hazards.Spawn(h)
}

// updateHazards moves hazards and resolves shots and ship contact. A hazard
// produces at most one outcome per frame and leaves the registry in the
// same pass.
func (g *Game) updateHazards(scale float64, overdrive bool) {
	k := g.kit
	spin, pull := 0.03, k.Tune("gravity_pull", 4)
	if overdrive {
		spin, pull = 0.06, pull*1.5
	}
	gravityRange := k.Tune("gravity_range", 400)
	shipSize := k.Tune("player_size", 40)
	shots := g.shots.Items()

	g.hazards.Update(func(h *hazard) bool {
		h.Y += h.Speed * scale
		h.Angle += spin * scale

		if h.Kind == blackhole {
			d := core.Dist(g.shipX, g.shipY, h.X, h.Y)
			if d > 0 && d < gravityRange {
				g.shipX += (h.X - g.shipX) / d * pull * scale
				g.shipY += (h.Y - g.shipY) / d * pull * scale
				g.clampShip()
			}
		}

		for i := range shots {
			s := &shots[i]
			if s.Spent || !sim.Within(s.X, s.Y, h.X, h.Y, h.Size/2) {
				continue
			}
			h.Health--
			s.Spent = true
			if h.Health <= 0 {
				g.score += k.Tune("kill_points", 100) * g.mult
				k.Burst(h.X, h.Y, 10, 5, core.ColorOrange)
				return false
			}
		}

		if sim.Within(h.X, h.Y, g.shipX, g.shipY, (h.hitSize()+shipSize)/2) {
			k.Shake.Kick(k.Tune("shake_hit", 20))
			if g.vitals.Hit(k.Tune("hit_damage", 25), k.Tune("shield_drain", 30)) {
				k.Burst(h.X, h.Y, 15, 6, core.ColorBrightBlue)
			} else {
				k.Burst(h.X, h.Y, 25, 7, core.ColorBrightRed)
			}
			return false
		}
		return h.Y < k.H+250
	})
}

func (g *Game) spawnPickup(speed float64) {
	k := g.kit
	kind := g.pickupMix.Pick(k.Rand.Float64(), 0)
	g.pickups.Spawn(pickup{
		Kind:  kind,
		X:     100 + k.Rand.Float64()*math.Max(0, k.W-200),
		Y:     -50,
		Speed: speed * 0.85,
	})
}

func (g *Game) updatePickups(scale float64) {
	k := g.kit
	radius := k.Tune("pickup_radius", 45)
	g.pickups.Update(func(p *pickup) bool {
		p.Y += p.Speed * scale
		p.Pulse += 0.1 * scale
		if !sim.Within(p.X, p.Y, g.shipX, g.shipY, radius) {
			return p.Y < k.H+100
		}
		switch p.Kind {
		case pickupShield:
			g.vitals.Shield.Set(sim.MeterMax)
		case pickupRepair:
			g.vitals.Health.Add(25)
		case pickupMultiplier:
			g.score += 1000 * g.mult
		case pickupPlasma:
			g.weapon = weaponPlasma
		case pickupBurst:
			g.weapon = weaponBurst
		}
		k.Burst(p.X, p.Y, 8, 3, core.ColorBrightGreen)
		return false
	})
}

// Score returns the whole-point score.
func (g *Game) Score() int {
	return int(math.Floor(g.score))
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.Score(), int(g.vitals.Health.Value()))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.Score(), int(g.vitals.Health.Value()))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)

	for _, st := range g.stars {
		k.Plot(dst, st.X, st.Y, '.', core.ColorGray)
	}
	for _, h := range g.hazards.Items() {
		r, c := h.glyph()
		k.Disc(dst, h.X, h.Y, h.Size/2, r, c)
	}
	for _, s := range g.shots.Items() {
		if s.Spent {
			continue
		}
		c := core.ColorBrightCyan
		if s.Burst {
			c = core.ColorBrightRed
		}
		k.Plot(dst, s.X, s.Y, '|', c)
	}
	for _, p := range g.pickups.Items() {
		r, c := p.Kind.glyph()
		if int(p.Pulse*2)%2 == 0 {
			c = core.ColorWhite
		}
		k.Plot(dst, p.X, p.Y, r, c)
	}
	k.Effects(dst)

	shipColor := core.ColorBrightCyan
	if g.overdrive.Full() {
		shipColor = core.ColorBrightMagenta
	}
	if !g.vitals.Shield.Empty() {
		k.Disc(dst, g.shipX, g.shipY, 30, '○', core.ColorBlue)
	}
	k.Plot(dst, g.shipX, g.shipY, '▲', shipColor)

	k.HUD(dst,
		kit.Label("NEBULA DRIFT", fmt.Sprintf("SCORE %d", g.Score()), fmt.Sprintf("x%d", int(g.mult))),
		kit.Label(fmt.Sprintf("DIST %d", int(g.distance)), "WPN "+g.weapon.String()),
		core.ColorBrightWhite)

	bottom := dst.Height() - 1
	dst.DrawTextColor(1, bottom, "HULL", core.ColorBrightRed)
	dst.DrawBar(6, bottom, 12, g.vitals.Health.Frac(), core.ColorBrightRed)
	dst.DrawTextColor(20, bottom, "SHLD", core.ColorBrightBlue)
	dst.DrawBar(25, bottom, 12, g.vitals.Shield.Frac(), core.ColorBrightBlue)
	dst.DrawTextColor(39, bottom, "OVERDRIVE", core.ColorBrightMagenta)
	dst.DrawBar(49, bottom, 12, g.overdrive.Frac(), core.ColorBrightMagenta)

	k.Overlay(dst, "NEBULA DRIFT", g.Score(), []string{
		"Steer with the mouse or arrow keys.",
		"Shields soak hits before the hull.",
		"Pickups: P plasma, B burst, S shield, M bonus, + repair.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
