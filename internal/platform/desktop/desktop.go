// Package desktop runs an arcade game in an Ebitengine window. It draws the
// same character screen the terminal host uses, with real key-up events
// and a cursor for the pointer.
package desktop

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/platform/runner"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// Glyph cell size of basicfont.Face7x13 in pixels.
const (
	GlyphW   = 7
	GlyphH   = 13
	baseline = 11
)

// Config describes the window.
type Config struct {
	Cols, Rows int     // Character grid; defaults to 100x36
	Zoom       float64 // Window scale; defaults to 1.5
	Seed       int64
	Host       runner.Config
}

// binding maps one action to the keys that trigger it.
type binding struct {
	Action core.Action
	Keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionSpecial, []ebiten.Key{ebiten.KeyE, ebiten.KeyX}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	{core.ActionLane1, []ebiten.Key{ebiten.Key1}},
	{core.ActionLane2, []ebiten.Key{ebiten.Key2}},
	{core.ActionLane3, []ebiten.Key{ebiten.Key3}},
	{core.ActionLane4, []ebiten.Key{ebiten.Key4}},
}

// Host is the ebiten.Game wrapping one runner.
type Host struct {
	runner *runner.Runner
	handle *sim.Handle
	screen *core.Screen
	input  core.InputFrame
	prev   map[core.Action]bool
	mouse  bool
	cols   int
	rows   int
}

// New creates a host for game and starts its frame schedule.
func New(game registry.Game, cfg Config) *Host {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		cfg.Cols, cfg.Rows = 100, 36
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := runner.New(game, cfg.Host)
	h := &Host{
		runner: r,
		screen: core.NewScreen(cfg.Cols, cfg.Rows),
		input:  core.NewInputFrame(),
		prev:   make(map[core.Action]bool),
		cols:   cfg.Cols,
		rows:   cfg.Rows,
	}
	h.handle = r.Start(core.RuntimeConfig{
		ScreenW:  cfg.Cols,
		ScreenH:  cfg.Rows,
		TickRate: ebiten.DefaultTPS,
		Seed:     cfg.Seed,
	})
	h.handle.OnCancel(func() {
		h.input = core.NewInputFrame()
		h.prev = make(map[core.Action]bool)
	})
	return h
}

// Update polls input and runs one frame.
func (h *Host) Update() error {
	if !h.handle.Alive() {
		return ebiten.Termination
	}

	h.poll()
	state := h.runner.State()
	if h.input.Has(core.ActionQuit) ||
		(h.input.Has(core.ActionBack) && (state.GameOver || state.Paused)) {
		h.runner.Stop()
		return ebiten.Termination
	}

	h.runner.Frame(h.handle, time.Now(), h.input)
	h.input.Clear()
	return nil
}

// poll turns the current key and cursor state into the input frame.
// Presses are edges against the previous frame.
func (h *Host) poll() {
	for _, b := range bindings {
		down := false
		for _, k := range b.Keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		if down && !h.prev[b.Action] {
			h.input.Set(b.Action)
		}
		h.input.Hold(b.Action, down)
		h.prev[b.Action] = down
	}

	x, y := ebiten.CursorPosition()
	if x >= 0 && y >= 0 && x < h.cols*GlyphW && y < h.rows*GlyphH {
		h.input.Point(x/GlyphW, y/GlyphH)
	}

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouse && !h.mouse {
		h.input.Set(core.ActionFire)
	}
	if mouse {
		h.input.Hold(core.ActionFire, true)
	}
	h.mouse = mouse
}

// Draw renders the character screen. Cells of one color are drawn as runs.
func (h *Host) Draw(dst *ebiten.Image) {
	w, ht := float32(h.cols*GlyphW), float32(h.rows*GlyphH)
	vector.FillRect(dst, 0, 0, w, ht, background, false)

	h.runner.Render(h.screen)
	run := make([]rune, 0, h.cols)
	for y := 0; y < h.screen.Height(); y++ {
		x := 0
		for x < h.screen.Width() {
			start := x
			c := h.screen.GetCell(x, y).Color
			run = run[:0]
			for x < h.screen.Width() {
				cell := h.screen.GetCell(x, y)
				if cell.Color != c {
					break
				}
				run = append(run, glyph(cell.Rune))
				x++
			}
			text.Draw(dst, string(run), basicfont.Face7x13, start*GlyphW, y*GlyphH+baseline, rgb(c))
		}
	}

	if px, py := h.input.PointerX, h.input.PointerY; h.input.HasPointer {
		vector.StrokeRect(dst, float32(px*GlyphW), float32(py*GlyphH), GlyphW, GlyphH, 1, cursor, false)
	}
}

// Layout keeps the logical screen at the character grid size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cols * GlyphW, h.rows * GlyphH
}

// Run opens a window and plays game until the player quits or closes it.
func Run(game registry.Game, cfg Config) error {
	h := New(game, cfg)
	defer h.runner.Stop()

	zoom := cfg.Zoom
	if zoom <= 0 {
		zoom = 1.5
	}
	ebiten.SetWindowSize(int(float64(h.cols*GlyphW)*zoom), int(float64(h.rows*GlyphH)*zoom))
	ebiten.SetWindowTitle("Orba Arcade - " + game.Title())
	return ebiten.RunGame(h)
}

var (
	background = color.RGBA{0x0b, 0x0d, 0x17, 0xff}
	cursor     = color.RGBA{0x5a, 0x5f, 0x80, 0xff}
)

// palette approximates the terminal colors of core.Color.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorViolet:        {0xaf, 0x5f, 0xff, 0xff},
	core.ColorPink:          {0xff, 0x87, 0xd7, 0xff},
}

func rgb(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// glyph maps runes basicfont lacks to close ASCII shapes.
func glyph(r rune) rune {
	if r < 0x80 {
		return r
	}
	switch r {
	case '█', '▓', '▣':
		return '#'
	case '▒', '░':
		return ':'
	case '·', '∙':
		return '.'
	case '×':
		return 'x'
	case '│':
		return '|'
	case '─':
		return '-'
	case '●', '◉', 'Ø':
		return '@'
	case '○', '◌':
		return 'o'
	case '▲':
		return '^'
	case '♥':
		return 'v'
	default:
		return '*'
	}
}
