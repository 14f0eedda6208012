package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

// HoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key-up events.
const HoldWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// the held state terminals cannot report directly.
type KeyMapper struct {
	lastSeen map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{lastSeen: make(map[core.Action]time.Time)}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "e", "x":
		return core.ActionSpecial, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "1":
		return core.ActionLane1, false
	case "2":
		return core.ActionLane2, false
	case "3":
		return core.ActionLane3, false
	case "4":
		return core.ActionLane4, false
	}
	return core.ActionNone, false
}

// Press records a key press at now into frame. Returns the mapped action
// and whether the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) (core.Action, bool) {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone || isQuit {
		return action, isQuit
	}
	frame.Set(action)
	frame.Hold(action, true)
	km.lastSeen[action] = now
	return action, false
}

// Expire releases held keys whose hold window has run out at now.
func (km *KeyMapper) Expire(now time.Time, frame *core.InputFrame) {
	for a, seen := range km.lastSeen {
		if now.Sub(seen) > HoldWindow {
			frame.Hold(a, false)
			delete(km.lastSeen, a)
		}
	}
}

// Release drops every held key, e.g. when the game loses focus.
func (km *KeyMapper) Release(frame *core.InputFrame) {
	for a := range km.lastSeen {
		frame.Hold(a, false)
		delete(km.lastSeen, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
