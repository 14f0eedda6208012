// Package runner drives one game instance on behalf of a host. It owns the
// frame clock and the schedule handle, scales time only while the game is
// playing and submits the final score once per finished run.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/leaderboard"
	"github.com/vovakirdan/orba-arcade/internal/profile"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// SubmitTimeout bounds a single leaderboard write.
const SubmitTimeout = 3 * time.Second

// Config holds the collaborators a runner reports to.
type Config struct {
	Board  leaderboard.Board // nil disables submission
	Player string            // Empty means profile.DefaultName
	Logger *log.Logger       // nil discards

	// Profile, when set, receives the player name on every Start.
	Profile leaderboard.KV
}

// WithDefaults fills the optional fields: a discarding logger and the
// normalized player name.
func (c Config) WithDefaults() Config {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	c.Player = profile.Normalize(c.Player)
	if c.Player == "" {
		c.Player = profile.DefaultName
	}
	return c
}

// Runner sequences frames of one game instance.
type Runner struct {
	game   registry.Game
	board  leaderboard.Board
	names  leaderboard.KV
	player string
	logger *log.Logger

	clock  *sim.Clock
	handle *sim.Handle
	state  core.GameState

	submitted int
}

// New creates a runner for game. The game is not reset until Start.
func New(game registry.Game, cfg Config) *Runner {
	cfg = cfg.WithDefaults()
	return &Runner{
		game:   game,
		board:  cfg.Board,
		names:  cfg.Profile,
		player: cfg.Player,
		logger: cfg.Logger,
		clock:  sim.NewClock(),
		state:  game.State(),
	}
}

// Start resets the game and opens a new frame schedule. A schedule that
// is still running is cancelled first. The player name is stored in the
// profile, if any.
func (r *Runner) Start(rc core.RuntimeConfig) *sim.Handle {
	r.handle.Cancel()

	if r.names != nil {
		if err := profile.Save(r.names, r.player); err != nil {
			r.logger.Warn("could not store player name", "player", r.player, "error", err)
		}
	}

	r.game.Reset(rc)
	r.clock.Reset()
	r.state = r.game.State()

	h := sim.NewHandle()
	id := r.game.ID()
	h.OnCancel(func() {
		r.logger.Debug("frame schedule stopped", "game", id, "handle", h.ID())
	})
	r.handle = h
	r.logger.Debug("frame schedule started", "game", id, "handle", h.ID(), "seed", rc.Seed)
	return h
}

// Stop cancels the current schedule. Frames still in flight become no-ops.
func (r *Runner) Stop() {
	r.handle.Cancel()
}

// Frame runs one scheduled frame. It reports false, and touches nothing,
// when h is not the live handle of this runner.
func (r *Runner) Frame(h *sim.Handle, now time.Time, in core.InputFrame) bool {
	if !h.Alive() || h != r.handle {
		return false
	}

	scale := 1.0
	if r.state.Playing() {
		scale = r.clock.Tick(now)
	} else {
		r.clock.Reset()
	}

	res := r.game.Step(core.NewTick(in, scale))
	r.state = res.State
	for _, ev := range res.Events {
		if ev.Terminal() {
			r.submit(ev)
		}
	}
	return true
}

// submit records a finished run. Failures are logged and swallowed.
func (r *Runner) submit(ev core.Event) {
	r.submitted++
	if r.board == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), SubmitTimeout)
	defer cancel()

	id := r.game.ID()
	if err := r.board.Submit(ctx, id, r.player, ev.Score); err != nil {
		r.logger.Warn("could not save score", "game", id, "player", r.player, "score", ev.Score, "error", err)
		return
	}
	r.logger.Info("score saved", "game", id, "player", r.player, "score", ev.Score, "level", ev.Level)
}

// Resize forwards a viewport change to games that follow it.
func (r *Runner) Resize(cols, rows int) {
	if rz, ok := r.game.(registry.Resizer); ok {
		rz.Resize(cols, rows)
	}
}

// Render draws the game into dst. A nil dst is ignored.
func (r *Runner) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	r.game.Render(dst)
}

// Game returns the driven game.
func (r *Runner) Game() registry.Game {
	return r.game
}

// State returns the snapshot of the last frame.
func (r *Runner) State() core.GameState {
	return r.state
}

// Player returns the name scores are submitted under.
func (r *Runner) Player() string {
	return r.player
}

// Handle returns the live schedule handle, or nil before Start.
func (r *Runner) Handle() *sim.Handle {
	return r.handle
}

// Submitted returns how many finished runs were reported so far.
func (r *Runner) Submitted() int {
	return r.submitted
}
