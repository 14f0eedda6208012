package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Phase    string // briefing, playing, level_transition, complete, game_over
	Level    int    // Current level or sector, 1-based
	Health   int    // Player health/integrity, 0..100 (-1 when not used)
	GameOver bool   // Whether the game reached a terminal phase
	Paused   bool   // Whether the game is paused
}

// Playing reports whether the simulation clock should be running. Level
// transitions run on the clock too.
func (s GameState) Playing() bool {
	return (s.Phase == "playing" || s.Phase == "level_transition") && !s.Paused
}

// EventKind identifies a notable occurrence during a step.
type EventKind int

const (
	EventGameOver EventKind = iota + 1 // Terminal: player lost
	EventComplete                      // Terminal: final level cleared
	EventLevelUp                       // A level transition finished
)

// Event is emitted by a game during a step for the platform to act on.
type Event struct {
	Kind  EventKind
	Score int
	Level int
}

// Terminal reports whether the event ends the session.
func (e Event) Terminal() bool {
	return e.Kind == EventGameOver || e.Kind == EventComplete
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
