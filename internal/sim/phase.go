package sim

import (
	"errors"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

// Phase is the coarse lifecycle state of a game instance.
type Phase int

const (
	Briefing Phase = iota
	Playing
	LevelTransition
	Complete
	GameOver
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case Briefing:
		return "briefing"
	case Playing:
		return "playing"
	case LevelTransition:
		return "level_transition"
	case Complete:
		return "complete"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == Complete || p == GameOver
}

// ErrTransition is returned for a transition the current phase does not allow.
var ErrTransition = errors.New("sim: invalid phase transition")

// Machine owns the phase of one game instance and the events its
// transitions produce. Terminal events are emitted exactly once per run.
type Machine struct {
	phase  Phase
	level  int
	delay  *gween.Tween
	events []core.Event
}

// NewMachine returns a machine in the briefing phase at level 1.
func NewMachine() *Machine {
	return &Machine{phase: Briefing, level: 1}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Is reports whether the machine is in phase p.
func (m *Machine) Is(p Phase) bool {
	return m.phase == p
}

// Level returns the current level, starting at 1.
func (m *Machine) Level() int {
	return m.level
}

// Start moves briefing to playing.
func (m *Machine) Start() error {
	if m.phase != Briefing {
		return ErrTransition
	}
	m.phase = Playing
	return nil
}

// BeginTransition moves playing to level_transition for the given number of
// reference frames.
func (m *Machine) BeginTransition(frames float64) error {
	if m.phase != Playing {
		return ErrTransition
	}
	if frames < 1 {
		frames = 1
	}
	m.phase = LevelTransition
	m.delay = gween.New(0, 1, float32(frames), ease.Linear)
	return nil
}

// Progress returns how far the current level transition has run, in [0, 1].
// Outside a transition it is 0.
func (m *Machine) Progress() float64 {
	if m.phase != LevelTransition || m.delay == nil {
		return 0
	}
	v, _ := m.delay.Update(0)
	return float64(v)
}

// Update advances a pending level transition by scale frames. It returns
// true exactly once, on the frame the delay elapses; the level is then
// incremented, the machine is back in playing and an EventLevelUp is queued.
func (m *Machine) Update(scale float64) bool {
	if m.phase != LevelTransition || m.delay == nil {
		return false
	}
	if _, done := m.delay.Update(float32(scale)); !done {
		return false
	}
	m.delay = nil
	m.level++
	m.phase = Playing
	m.events = append(m.events, core.Event{Kind: core.EventLevelUp, Level: m.level})
	return true
}

// GameOver ends the run with a loss and queues the terminal event.
func (m *Machine) GameOver(score int) error {
	return m.finish(GameOver, core.EventGameOver, score)
}

// Complete ends the run with a win and queues the terminal event.
func (m *Machine) Complete(score int) error {
	return m.finish(Complete, core.EventComplete, score)
}

func (m *Machine) finish(to Phase, kind core.EventKind, score int) error {
	if m.phase.Terminal() || m.phase == Briefing {
		return ErrTransition
	}
	m.phase = to
	m.delay = nil
	m.events = append(m.events, core.Event{Kind: kind, Score: score, Level: m.level})
	return nil
}

// Restart moves a terminal phase back to playing at level 1. Callers reset
// every other piece of run state alongside it.
func (m *Machine) Restart() error {
	if !m.phase.Terminal() {
		return ErrTransition
	}
	m.phase = Playing
	m.level = 1
	m.delay = nil
	m.events = m.events[:0]
	return nil
}

// Reset returns the machine to the briefing phase at level 1 and drops
// queued events.
func (m *Machine) Reset() {
	m.phase = Briefing
	m.level = 1
	m.delay = nil
	m.events = nil
}

// Drain returns the events queued since the last call.
func (m *Machine) Drain() []core.Event {
	if len(m.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(m.events))
	copy(out, m.events)
	m.events = m.events[:0]
	return out
}
