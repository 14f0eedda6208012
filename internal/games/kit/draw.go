package kit

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// Begin clears the screen and fixes this frame's shake offset.
func (k *Kit) Begin(s *core.Screen) {
	s.Clear()
	k.offX, k.offY = k.Shake.Offset(k.FXRand)
}

// Cell converts a world position to a screen cell, applying the camera and
// the shake offset.
func (k *Kit) Cell(x, y float64) (int, int) {
	cx, cy := core.ToCell(x-k.CamX, y-k.CamY)
	return cx + k.offX, cy + k.offY
}

// Plot draws a glyph at a world position.
func (k *Kit) Plot(s *core.Screen, x, y float64, r rune, c core.Color) {
	cx, cy := k.Cell(x, y)
	s.SetColor(cx, cy, r, c)
}

// Text draws a label centered on a world position.
func (k *Kit) Text(s *core.Screen, x, y float64, text string, c core.Color) {
	cx, cy := k.Cell(x, y)
	s.DrawTextColor(cx-len(text)/2, cy, text, c)
}

// Effects draws the particle world.
func (k *Kit) Effects(s *core.Screen) {
	k.FX.Render(s, k.CamX-float64(k.offX)*core.CellW, k.CamY-float64(k.offY)*core.CellH)
}

// HUD draws a status line on the top row: left-aligned and right-aligned text.
func (k *Kit) HUD(s *core.Screen, left, right string, c core.Color) {
	s.DrawHLine(0, 0, s.Width(), ' ')
	s.DrawTextColor(1, 0, left, c)
	s.DrawTextColor(s.Width()-len([]rune(right))-1, 0, right, c)
}

// Overlay draws the phase overlay: the briefing card, the pause box, the
// level transition banner or the end card. It draws nothing while playing.
func (k *Kit) Overlay(s *core.Screen, title string, score int, briefing []string) {
	switch k.Machine.Phase() {
	case sim.Briefing:
		lines := append([]string{}, briefing...)
		lines = append(lines, "", "ENTER or SPACE to start  ·  Q to quit")
		Box(s, title, lines, core.ColorBrightCyan)
	case sim.LevelTransition:
		Box(s, fmt.Sprintf("LEVEL %d CLEARED", k.Machine.Level()),
			[]string{fmt.Sprintf("Score: %d", score), "Next level incoming..."}, core.ColorBrightGreen)
	case sim.GameOver:
		Box(s, "GAME OVER", []string{
			fmt.Sprintf("Score: %d", score),
			"R to restart  ·  B for menu",
		}, core.ColorBrightRed)
	case sim.Complete:
		Box(s, "ALL LEVELS COMPLETE", []string{
			fmt.Sprintf("Final score: %d", score),
			"R to play again  ·  B for menu",
		}, core.ColorBrightYellow)
	default:
		if k.Paused {
			Box(s, "PAUSED", []string{"Press P to resume"}, core.ColorWhite)
		}
	}
}

// Box draws a centered message box.
func Box(s *core.Screen, title string, lines []string, c core.Color) {
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := core.Min(w+4, s.Width())
	boxH := len(lines) + 4
	boxX := (s.Width() - boxW) / 2
	boxY := (s.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	s.DrawRect(r, ' ')
	s.DrawBoxColor(r, c)
	s.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		s.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}

// Label joins HUD fields.
func Label(parts ...string) string {
	return strings.Join(parts, "  ")
}

// Disc fills every cell whose center lies within r of a world position.
// A disc smaller than one cell still draws its center cell.
func (k *Kit) Disc(s *core.Screen, x, y, r float64, glyph rune, c core.Color) {
	x0, y0 := core.ToCell(x-r-k.CamX, y-r-k.CamY)
	x1, y1 := core.ToCell(x+r-k.CamX, y+r-k.CamY)
	drawn := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := core.FromCell(cx, cy)
			if sim.Within(wx+k.CamX, wy+k.CamY, x, y, r) {
				s.SetColor(cx+k.offX, cy+k.offY, glyph, c)
				drawn = true
			}
		}
	}
	if !drawn {
		k.Plot(s, x, y, glyph, c)
	}
}
