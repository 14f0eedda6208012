// Package kit is the per-instance plumbing every arcade game embeds: the
// phase machine, the loaded config record and its scaler, the seeded
// random sources, screen shake, the effect world and the viewport.
// Games keep their own entities and scoring; kit only sequences them.
package kit

import (
	"math/rand"

	"github.com/vovakirdan/orba-arcade/internal/config"
	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/fx"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// Control tells a game what to do with the current tick.
type Control int

const (
	Idle      Control = iota // Nothing advances (briefing, paused, terminal)
	Run                      // Simulate one scaled frame
	Restarted                // A fresh run just began; reset run state
)

// Kit is owned by exactly one game instance.
type Kit struct {
	Machine *sim.Machine
	Config  config.GameConfig
	Scaler  *config.Scaler
	Rand    *rand.Rand // Simulation randomness
	FXRand  *rand.Rand // Cosmetic randomness; never feeds the simulation
	Shake   *sim.Shake
	FX      *fx.Effects

	Cols, Rows int     // Viewport in cells
	W, H       float64 // Viewport in world units
	CamX, CamY float64 // Camera offset in world units, set by the game

	Paused bool
	Frames float64 // Reference frames spent playing this run

	id     string
	seed   int64
	runs   int64
	path   string
	preset config.DifficultyPreset
	offX   int
	offY   int
}

// New creates a kit for the given game id.
func New(id string) *Kit {
	k := &Kit{id: id, Machine: sim.NewMachine()}
	k.Config = config.Default(id)
	k.Scaler = config.NewScaler(k.Config)
	k.Shake = sim.NewShake(1)
	k.FX = fx.New()
	k.Rand = sim.NewRand(1)
	k.FXRand = sim.NewRand(2)
	k.Resize(80, 24)
	return k
}

// Configure selects a config file and difficulty preset. The file is
// loaded immediately so a broken path is reported before play starts.
func (k *Kit) Configure(path, preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	if _, err := config.Load(k.id, path); err != nil {
		return err
	}
	k.path, k.preset = path, p
	return nil
}

// Reset reloads the config record and rewinds to the briefing phase.
func (k *Kit) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(k.id, k.path)
	if err != nil {
		cfg = config.Default(k.id)
	}
	config.ApplyPreset(&cfg, k.preset)
	k.Config = cfg
	k.Scaler = config.NewScaler(cfg)
	k.Shake = sim.NewShake(cfg.Tune("shake_decay", 1))

	k.seed = rc.Seed
	k.runs = 0
	k.reseed()

	cols, rows := rc.ScreenW, rc.ScreenH
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	k.Resize(cols, rows)

	k.Machine.Reset()
	k.Paused = false
	k.Frames = 0
	k.CamX, k.CamY = 0, 0
	k.FX.Clear()
}

func (k *Kit) reseed() {
	k.Rand = sim.NewRand(k.seed + k.runs*7919)
	k.FXRand = sim.NewRand(k.seed ^ 0x5eed + k.runs)
}

// Resize updates the viewport. Entities already spawned keep their
// coordinates; only later spawns and rendering use the new size.
func (k *Kit) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	k.Cols, k.Rows = cols, rows
	k.W, k.H = core.WorldSize(cols, rows)
}

// Control consumes the phase-level actions of a tick: start from the
// briefing, pause, and restart from a terminal phase.
func (k *Kit) Control(in core.InputFrame) Control {
	switch p := k.Machine.Phase(); {
	case p == sim.Briefing:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			k.Machine.Start()
		}
		return Idle
	case p.Terminal():
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			k.restart()
			return Restarted
		}
		return Idle
	}

	if in.Has(core.ActionPause) {
		k.Paused = !k.Paused
	}
	if k.Paused {
		return Idle
	}
	return Run
}

// restart begins a fresh run from a terminal phase. Nothing from the
// finished run survives: randomness is reseeded for the new run index.
func (k *Kit) restart() {
	k.runs++
	k.reseed()
	k.Machine.Restart()
	k.Paused = false
	k.Frames = 0
	k.CamX, k.CamY = 0, 0
	k.Shake.Clear()
	k.FX.Clear()
}

// Advance runs the shared per-frame systems: effects, shake and a pending
// level transition. It returns true on the frame a transition finishes.
func (k *Kit) Advance(scale float64) bool {
	k.Frames += scale
	k.Shake.Update(scale)
	k.FX.Update(scale)
	return k.Machine.Update(scale)
}

// Playing reports whether the run is in the playing phase proper.
func (k *Kit) Playing() bool {
	return k.Machine.Is(sim.Playing)
}

// Lose ends the run as game over. Later calls in the same run are ignored.
func (k *Kit) Lose(score int) {
	_ = k.Machine.GameOver(score)
}

// Win ends the run as complete. Later calls in the same run are ignored.
func (k *Kit) Win(score int) {
	_ = k.Machine.Complete(score)
}

// Tune returns a tuning constant of the loaded record.
func (k *Kit) Tune(key string, def float64) float64 {
	return k.Config.Tune(key, def)
}

// State builds the snapshot the host reads. health < 0 means the game
// has no health meter.
func (k *Kit) State(score, health int) core.GameState {
	return core.GameState{
		Score:    score,
		Phase:    k.Machine.Phase().String(),
		Level:    k.Machine.Level(),
		Health:   health,
		GameOver: k.Machine.Phase().Terminal(),
		Paused:   k.Paused,
	}
}

// Result builds a step result carrying the events queued this tick.
func (k *Kit) Result(score, health int) core.StepResult {
	return core.StepResult{State: k.State(score, health), Events: k.Machine.Drain()}
}

// Burst emits a cosmetic particle burst at a world position.
func (k *Kit) Burst(x, y float64, n int, speed float64, c core.Color) {
	k.FX.Burst(k.FXRand, x, y, n, speed, 24, c)
}
