package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - primary action (fire, drop, lock, hook)
	ActionSpecial        // E, X - secondary action (burst, overdrive, identify)
	ActionConfirm        // Enter - start from briefing, confirm selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionLane1          // Lane keys for rhythm games
	ActionLane2
	ActionLane3
	ActionLane4
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionSpecial:
		return "Special"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionLane1:
		return "Lane1"
	case ActionLane2:
		return "Lane2"
	case ActionLane3:
		return "Lane3"
	case ActionLane4:
		return "Lane4"
	default:
		return "Unknown"
	}
}

// LaneActions lists the lane actions in lane order.
var LaneActions = [4]Action{ActionLane1, ActionLane2, ActionLane3, ActionLane4}

// InputFrame is the coalesced input for one simulation tick.
// Actions holds edge-triggered presses since the previous tick; Held holds
// keys that are currently down. Pointer is the latest pointer position in
// screen cells, valid when HasPointer is set.
type InputFrame struct {
	Actions    map[Action]bool
	Held       map[Action]bool
	PointerX   int
	PointerY   int
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down (or released when down is false).
func (f *InputFrame) Hold(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
	} else {
		delete(f.Held, a)
	}
}

// IsHeld returns true if the action is held this frame. A press counts as
// held for the frame it happened in.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Point records the latest pointer position. Last write wins.
func (f *InputFrame) Point(x, y int) {
	f.PointerX = x
	f.PointerY = y
	f.HasPointer = true
}

// Clear resets the edge-triggered actions for the next frame.
// Held keys and the pointer position survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	clone.HasPointer = f.HasPointer
	return clone
}

// Tick is everything a game receives for one simulation step.
type Tick struct {
	Input InputFrame
	// Scale is the elapsed time in reference frames (16.67ms), already clamped.
	Scale float64
}

// NewTick wraps an input frame with the given time scale.
func NewTick(in InputFrame, scale float64) Tick {
	return Tick{Input: in, Scale: scale}
}
