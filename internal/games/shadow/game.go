// Package shadow implements Shadow Protocol, a deduction game: one of the
// evidence nodes hides the culprit, and each scan reveals how close a node
// sits to it. Naming the culprit closes the case.
package shadow

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/games/kit"
	"github.com/vovakirdan/orba-arcade/internal/registry"
)

const gameID = "shadow"

type status int

const (
	hidden status = iota
	scanned
)

// node is a piece of evidence. Heat approaches 1 near the culprit.
type node struct {
	X, Y    float64
	Culprit bool
	Heat    float64
	Status  status
	Pulse   float64
}

// Game implements Shadow Protocol.
type Game struct {
	kit *kit.Kit

	nodes    []node
	selected int
	scans    int
	score    int
	message  string
	frame    float64
}

// New creates a Shadow Protocol instance.
func New() *Game {
	g := &Game{kit: kit.New(gameID)}
	g.newRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return gameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Shadow Protocol" }

// Blurb returns the one-line briefing.
func (g *Game) Blurb() string { return "Scan evidence for heat, then name the culprit." }

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
	g.frame = 0
	g.generate(1)
}

// generate lays out the evidence of a case. Nodes keep at least two cells
// apart where the viewport allows it.
func (g *Game) generate(level int) {
	k := g.kit
	count := int(k.Tune("nodes_base", 8) + k.Tune("nodes_step", 2)*float64(level))
	margin := k.Tune("margin", 0.2)
	minX, spanX := k.W*margin, k.W*(1-2*margin)
	minY, spanY := k.H*margin, k.H*(1-2*margin)

	g.nodes = g.nodes[:0]
	culprit := k.Rand.Intn(count)
	for i := 0; i < count; i++ {
		var x, y float64
		for try := 0; try < 12; try++ {
			x, y = minX+k.Rand.Float64()*spanX, minY+k.Rand.Float64()*spanY
			if !g.crowded(x, y) {
				break
			}
		}
		g.nodes = append(g.nodes, node{
			X:       x,
			Y:       y,
			Culprit: i == culprit,
			Pulse:   k.Rand.Float64() * 2 * math.Pi,
		})
	}

	c := g.nodes[culprit]
	reach := math.Hypot(k.W, k.H) * k.Tune("heat_span", 0.4)
	for i := range g.nodes {
		g.nodes[i].Heat = 1 - core.Dist(g.nodes[i].X, g.nodes[i].Y, c.X, c.Y)/reach
	}

	g.scans = int(math.Max(k.Tune("scans_min", 3), k.Tune("scans_base", 7)-math.Floor(float64(level)/2)))
	g.selected = 0
	g.message = fmt.Sprintf("CASE #%d: TRACE THE HIDDEN SIGNAL", level)
}

func (g *Game) crowded(x, y float64) bool {
	for _, n := range g.nodes {
		if math.Abs(n.X-x) < 3*core.CellW && math.Abs(n.Y-y) < 2*core.CellH {
			return true
		}
	}
	return false
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
	if k.Advance(t.Scale) {
		g.generate(k.Machine.Level())
	}
	g.frame += t.Scale
	if !k.Playing() {
		return g.result()
	}

	g.navigate(t.Input)
	switch {
	case t.Input.Has(core.ActionSpecial) || t.Input.Has(core.ActionConfirm):
		g.identify(g.selected)
	case t.Input.Has(core.ActionFire):
		g.scan(g.selected)
	}
	return g.result()
}

// navigate moves the cursor: the pointer snaps to the nearest node, the
// arrow keys cycle through them.
func (g *Game) navigate(in core.InputFrame) {
	n := len(g.nodes)
	if n == 0 {
		return
	}
	if in.HasPointer {
		px, py := core.FromCell(in.PointerX, in.PointerY)
		best := math.Inf(1)
		for i, nd := range g.nodes {
			if d := core.Dist(px, py, nd.X, nd.Y); d < best {
				best, g.selected = d, i
			}
		}
	}
	if in.Has(core.ActionRight) || in.Has(core.ActionDown) {
		g.selected = (g.selected + 1) % n
	}
	if in.Has(core.ActionLeft) || in.Has(core.ActionUp) {
		g.selected = (g.selected + n - 1) % n
	}
}

// scan reveals the heat of a hidden node. It does nothing without scans.
func (g *Game) scan(i int) {
	if i < 0 || i >= len(g.nodes) || g.nodes[i].Status != hidden || g.scans <= 0 {
		return
	}
	k := g.kit
	g.nodes[i].Status = scanned
	g.scans--
	k.Shake.Kick(k.Tune("shake_scan", 5))
	if g.nodes[i].Culprit {
		g.message = "TARGET SIGNAL DETECTED!"
	} else {
		g.message = "SIGNAL HEAT ANALYZED."
	}
}

// identify names a node as the culprit. A wrong call ends the run.
func (g *Game) identify(i int) {
	if i < 0 || i >= len(g.nodes) {
		return
	}
	k := g.kit
	if !g.nodes[i].Culprit {
		g.message = "FALSE IDENTIFICATION. SYSTEM LOCKDOWN."
		k.Shake.Kick(k.Tune("shake_fail", 30))
		k.Lose(g.score)
		return
	}

	lvl := k.Machine.Level()
	g.score += lvl*int(k.Tune("level_points", 1000)) + g.scans*int(k.Tune("scan_points", 500))
	g.message = "SUBJECT IDENTIFIED. ACCESS GRANTED."
	k.Shake.Kick(k.Tune("shake_solve", 15))
	k.Burst(g.nodes[i].X, g.nodes[i].Y, 16, 4, core.ColorPink)
	if lvl < int(k.Tune("levels", 5)) {
		_ = k.Machine.BeginTransition(k.Tune("transition_frames", 120))
		return
	}
	k.Win(g.score)
}

func heatColor(h float64) core.Color {
	switch {
	case h > 0.8:
		return core.ColorPink
	case h > 0.5:
		return core.ColorViolet
	default:
		return core.ColorCyan
	}
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

	// Links between scanned nodes that sit close together.
	for i, a := range g.nodes {
		if a.Status != scanned {
			continue
		}
		for _, b := range g.nodes[i+1:] {
			if b.Status != scanned || core.Dist(a.X, a.Y, b.X, b.Y) >= 400 {
				continue
			}
			for s := 1; s < 10; s++ {
				f := float64(s) / 10
				k.Plot(dst, core.Lerp(a.X, b.X, f), core.Lerp(a.Y, b.Y, f), '·', core.ColorBlue)
			}
		}
	}

	for i, n := range g.nodes {
		glyph, c := '○', core.ColorGray
		if n.Status == scanned {
			glyph, c = '●', heatColor(n.Heat)
			pct := int(math.Max(0, n.Heat) * 100)
			k.Text(dst, n.X, n.Y+core.CellH, fmt.Sprintf("%d%%", pct), c)
		} else if math.Sin(g.frame*0.05+n.Pulse) > 0.6 {
			glyph = '◌'
		}
		k.Plot(dst, n.X, n.Y, glyph, c)
		if i == g.selected && k.Playing() {
			k.Plot(dst, n.X-core.CellW, n.Y, '[', core.ColorBrightWhite)
			k.Plot(dst, n.X+core.CellW, n.Y, ']', core.ColorBrightWhite)
		}
	}
	k.Effects(dst)

	dst.DrawTextCenteredColor(2, g.message, core.ColorBrightMagenta)
	k.HUD(dst,
		kit.Label("SHADOW PROTOCOL", fmt.Sprintf("CASE %d", k.Machine.Level()), fmt.Sprintf("SCORE %d", g.score)),
		fmt.Sprintf("SCANS %d", g.scans),
		core.ColorPink)

	k.Overlay(dst, "SHADOW PROTOCOL", g.score, []string{
		"Move the cursor with the mouse or arrow keys.",
		"SPACE scans a node for heat; E names the culprit.",
		"Unused scans pay a bonus. A false call ends the case.",
	})
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
