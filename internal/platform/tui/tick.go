// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping and the menu flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// TickMsg is sent to trigger a game simulation frame. It carries the handle
// of the schedule that produced it; ticks of a cancelled schedule are dropped.
type TickMsg struct {
	Handle *sim.Handle
	At     time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after the frame
// interval for tickRate.
func tickCmd(h *sim.Handle, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, At: t}
	})
}
