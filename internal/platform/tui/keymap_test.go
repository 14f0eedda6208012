package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{runeKey(' '), core.ActionFire, false},
		{runeKey('e'), core.ActionSpecial, false},
		{runeKey('x'), core.ActionSpecial, false},
		{runeKey('1'), core.ActionLane1, false},
		{runeKey('4'), core.ActionLane4, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v,%v, want %v,%v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	t0 := time.Unix(0, 0)

	km.Press(runeKey(' '), t0, &frame)
	if !frame.Has(core.ActionFire) || !frame.IsHeld(core.ActionFire) {
		t.Fatal("press should set and hold fire")
	}

	frame.Clear()
	km.Expire(t0.Add(HoldWindow/2), &frame)
	if !frame.IsHeld(core.ActionFire) {
		t.Error("fire released inside the hold window")
	}

	// An auto-repeat extends the window.
	km.Press(runeKey(' '), t0.Add(HoldWindow/2), &frame)
	frame.Clear()
	km.Expire(t0.Add(HoldWindow), &frame)
	if !frame.IsHeld(core.ActionFire) {
		t.Error("repeat did not extend the hold")
	}

	km.Expire(t0.Add(2*HoldWindow), &frame)
	if frame.IsHeld(core.ActionFire) {
		t.Error("fire still held after the window")
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	if km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}) != MenuActionScoreboard {
		t.Error("tab should open the scoreboard")
	}
	if km.MapKeyToMenuAction(runeKey('j')) != MenuActionDown {
		t.Error("j should move down")
	}
}
