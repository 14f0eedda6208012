// Package cyberstrike implements Cyber Strike, a grid infiltration game:
// collect data nodes and reach the exit of each sector without letting the
// patrolling sentinels build up a full detection lock.
package cyberstrike

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

const gameID = "cyberstrike"

// sentinel patrols back and forth along one axis, in grid units.
type sentinel struct {
	X, Y       float64
	Vel        float64
	Horizontal bool
}

// Game implements Cyber Strike.
type Game struct {
	kit *kit.Kit

	sector    *sector
	px, py    float64 // Drawn position, easing toward the target cell
	tx, ty    int
	sentinels sim.Entities[sentinel]
	detection sim.Meter
	score     int
}

// New creates a Cyber Strike instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Cyber Strike" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Grab the data, reach the exit, stay out of sentinel range." }

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
	g.score = 0
	g.enterSector(1)
}

// enterSector loads sector n and puts the player at the start.
func (g *Game) enterSector(n int) {
	k := g.kit
	l, err := sectorLayout(n, k.Rand, k.Tune("wall_chance", 0.15), k.Tune("data_chance", 0.08))
	if err != nil {
		l = generateSector(k.Rand, k.Tune("wall_chance", 0.15), k.Tune("data_chance", 0.08))
	}
	g.sector = newSector(l)
	g.tx, g.ty = startX, startY
	g.px, g.py = startX, startY
	g.detection = sim.NewMeter(0)

	count := int(math.Min(k.Tune("sentinel_max", 6), k.Tune("sentinel_base", 2)+float64(n)))
	speed := k.Scaler.Speed(float64(n))
	g.sentinels.Clear()
	for i := 0; i < count; i++ {
		var sp sentinelSpawn
		if i < len(l.sentinels) {
			sp = l.sentinels[i]
		} else {
			sp = sentinelSpawn{
				X:          4 + k.Rand.Float64()*6,
				Y:          4 + k.Rand.Float64()*6,
				Horizontal: k.Rand.Float64() > 0.5,
			}
		}
		vel := (k.Tune("sentinel_speed", 0.02) + k.Rand.Float64()*k.Tune("sentinel_jitter", 0.03)) * speed
		g.sentinels.Spawn(sentinel{X: sp.X, Y: sp.Y, Vel: vel, Horizontal: sp.Horizontal})
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

	k := g.kit
	scale := t.Scale
	if k.Advance(scale) {
		g.enterSector(k.Machine.Level())
	}
	if !k.Playing() {
		return g.result()
	}

	switch {
	case t.Input.Has(core.ActionLeft):
		g.move(-1, 0)
	case t.Input.Has(core.ActionRight):
		g.move(1, 0)
	case t.Input.Has(core.ActionUp):
		g.move(0, -1)
	case t.Input.Has(core.ActionDown):
		g.move(0, 1)
	}

	f := math.Min(1, k.Tune("move_lerp", 0.3)*scale)
	g.px += (float64(g.tx) - g.px) * f
	g.py += (float64(g.ty) - g.py) * f

	g.patrol(scale)
	if g.detection.Full() {
		k.Shake.Kick(40)
		k.Lose(g.score)
		return g.result()
	}
	g.detection.Add(-k.Tune("detect_decay", 0.2) * scale)

	g.interact()
	return g.result()
}

// move retargets the player one cell, unless a wall or the edge is in the way.
func (g *Game) move(dx, dy int) {
	if g.sector.blocked(g.tx, g.ty, dx, dy) {
		return
	}
	g.tx += dx
	g.ty += dy
}

// patrol moves sentinels and raises detection for each one in range.
func (g *Game) patrol(scale float64) {
	k := g.kit
	radius, gain := k.Tune("detect_radius", 1.5), k.Tune("detect_gain", 2)
	const hi = gridSize - 1
	g.sentinels.Each(func(s *sentinel) {
		pos := &s.Y
		if s.Horizontal {
			pos = &s.X
		}
		*pos += s.Vel * scale
		if *pos > hi || *pos < 0 {
			*pos = core.ClampF(*pos, 0, hi)
			s.Vel = -s.Vel
		}

		if d := core.Dist(s.X, s.Y, g.px, g.py); d < radius {
			g.detection.Add((radius - d) * gain * scale)
			k.Shake.Kick(2)
		}
	})
}

// interact resolves the cell under the player: data and the exit.
func (g *Game) interact() {
	k := g.kit
	ix, iy := int(math.Round(g.px)), int(math.Round(g.py))
	if g.sector.collect(ix, iy) {
		g.score += int(k.Tune("data_points", 500))
		x, y := g.cellPos(float64(ix), float64(iy))
		k.Burst(x, y, 8, 2, core.ColorBrightCyan)
	}
	if g.sector.onExit(ix, iy) && core.Dist(g.px, g.py, exitX, exitY) < 0.2 {
		g.score += int(k.Tune("exit_points", 2000))
		_ = k.Machine.BeginTransition(k.Tune("transition_frames", 90))
	}
}

// cellPos returns the world position of a grid cell center. Grid cells are
// three screen columns wide and one row tall.
func (g *Game) cellPos(x, y float64) (float64, float64) {
	pitchX, pitchY := 3*core.CellW, core.CellH
	ox := (g.kit.W - gridSize*pitchX) / 2
	oy := (g.kit.H - gridSize*pitchY) / 2
	return ox + x*pitchX + pitchX/2, oy + y*pitchY + pitchY/2
}

func (g *Game) integrity() int {
	return int(sim.MeterMax - g.detection.Value())
}

func (g *Game) result() core.StepResult {
	return g.kit.Result(g.score, g.integrity())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.kit.State(g.score, g.integrity())
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	k := g.kit
	k.Begin(dst)

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			wx, wy := g.cellPos(float64(x), float64(y))
			switch g.sector.cells[y][x] {
			case cellWall:
				for _, off := range []float64{-core.CellW, 0, core.CellW} {
					k.Plot(dst, wx+off, wy, '█', core.ColorViolet)
				}
			case cellData:
				k.Plot(dst, wx, wy, '◆', core.ColorBrightCyan)
			case cellExit:
				k.Plot(dst, wx-core.CellW, wy, '[', core.ColorBrightGreen)
				k.Plot(dst, wx, wy, '▣', core.ColorBrightGreen)
				k.Plot(dst, wx+core.CellW, wy, ']', core.ColorBrightGreen)
			default:
				k.Plot(dst, wx, wy, '·', core.ColorGray)
			}
		}
	}

	for _, s := range g.sentinels.Items() {
		wx, wy := g.cellPos(s.X, s.Y)
		k.Plot(dst, wx, wy, 'Ø', core.ColorBrightRed)
	}
	wx, wy := g.cellPos(g.px, g.py)
	k.Plot(dst, wx, wy, '@', core.ColorBrightGreen)
	k.Effects(dst)

	source := "GENERATED"
	if g.sector.authored {
		source = "MAPPED"
	}
	k.HUD(dst,
		kit.Label("CYBER STRIKE", fmt.Sprintf("SECTOR %d", k.Machine.Level()), fmt.Sprintf("SCORE %d", g.score)),
		source,
		core.ColorBrightMagenta)

	bottom := dst.Height() - 1
	dst.DrawTextColor(1, bottom, "DETECTION", core.ColorBrightRed)
	dst.DrawBar(11, bottom, 20, g.detection.Frac(), core.ColorBrightRed)

	k.Overlay(dst, "CYBER STRIKE", g.score, []string{
		"Arrows/WASD move one node at a time.",
		"Collect data, reach the exit in the far corner.",
		"Sentinels raise detection; a full lock ends the run.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
