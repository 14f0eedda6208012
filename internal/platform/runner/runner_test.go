package runner

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/leaderboard"
	"github.com/vovakirdan/orba-arcade/internal/profile"
	"github.com/vovakirdan/orba-arcade/internal/storage"
)

// scriptGame starts on confirm, finishes on fire and records every scale.
type scriptGame struct {
	phase   string
	scales  []float64
	resets  int
	cols    int
	pending []core.Event
}

func (g *scriptGame) ID() string    { return "script" }
func (g *scriptGame) Title() string { return "Script" }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.phase = "briefing"
	g.scales = nil
	g.resets++
}

func (g *scriptGame) Step(t core.Tick) core.StepResult {
	g.scales = append(g.scales, t.Scale)
	switch {
	case g.phase == "briefing" && t.Input.Has(core.ActionConfirm):
		g.phase = "playing"
	case g.phase == "playing" && t.Input.Has(core.ActionFire):
		g.phase = "game_over"
		g.pending = append(g.pending, core.Event{Kind: core.EventGameOver, Score: 420, Level: 1})
	case g.phase == "game_over" && t.Input.Has(core.ActionRestart):
		g.phase = "playing"
	}
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptGame) Render(*core.Screen) {}

func (g *scriptGame) State() core.GameState {
	return core.GameState{Phase: g.phase, GameOver: g.phase == "game_over", Health: -1}
}

func (g *scriptGame) Resize(cols, _ int) { g.cols = cols }

type board struct {
	entries []leaderboard.Entry
	err     error
}

func (b *board) Submit(_ context.Context, gameID, player string, score int) error {
	if b.err != nil {
		return b.err
	}
	b.entries = append(b.entries, leaderboard.Entry{GameID: gameID, Player: player, Score: score})
	return nil
}

func (b *board) Top(context.Context, string) ([]leaderboard.Entry, error) {
	return b.entries, nil
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestScaleOnlyWhilePlaying(t *testing.T) {
	g := &scriptGame{}
	r := New(g, Config{})
	h := r.Start(core.DefaultConfig())

	t0 := time.Unix(1000, 0)
	frames := []struct {
		at time.Duration
		in core.InputFrame
	}{
		// briefing
		{0, press()},
		// still briefing when scaled
		{5 * time.Second, press(core.ActionConfirm)},
		// first playing tick
		{5*time.Second + 16670*time.Microsecond, press()},
		// two frames late
		{5*time.Second + 50010*time.Microsecond, press()},
		// stall, clamped
		{6 * time.Second, press()},
		// half frame
		{6*time.Second + 8335*time.Microsecond, press()},
	}
	for _, f := range frames {
		if !r.Frame(h, t0.Add(f.at), f.in) {
			t.Fatal("live handle rejected")
		}
	}

	want := []float64{1, 1, 1, 2, 2, 0.5}
	if len(g.scales) != len(want) {
		t.Fatalf("scales = %v", g.scales)
	}
	for i := range want {
		if math.Abs(g.scales[i]-want[i]) > 1e-9 {
			t.Errorf("frame %d scale = %v, want %v", i, g.scales[i], want[i])
		}
	}
}

func TestSubmitsOncePerRun(t *testing.T) {
	g := &scriptGame{}
	b := &board{}
	r := New(g, Config{Board: b, Player: "  ada  "})
	h := r.Start(core.DefaultConfig())
	now := time.Unix(0, 0)

	r.Frame(h, now, press(core.ActionConfirm))
	r.Frame(h, now, press(core.ActionFire))
	for i := 0; i < 10; i++ {
		r.Frame(h, now, press(core.ActionFire))
	}

	if len(b.entries) != 1 {
		t.Fatalf("submissions = %d, want 1", len(b.entries))
	}
	if e := b.entries[0]; e.Player != "ada" || e.Score != 420 || e.GameID != "script" {
		t.Errorf("entry = %+v", e)
	}

	r.Frame(h, now, press(core.ActionRestart))
	r.Frame(h, now, press(core.ActionFire))
	if len(b.entries) != 2 || r.Submitted() != 2 {
		t.Errorf("after second run: entries %d, submitted %d", len(b.entries), r.Submitted())
	}
}

func TestSubmitFailureIsSwallowed(t *testing.T) {
	g := &scriptGame{}
	r := New(g, Config{Board: &board{err: errors.New("disk full")}})
	h := r.Start(core.DefaultConfig())
	now := time.Unix(0, 0)

	r.Frame(h, now, press(core.ActionConfirm))
	r.Frame(h, now, press(core.ActionFire))

	if r.Submitted() != 1 {
		t.Errorf("submitted = %d, want 1", r.Submitted())
	}
	if !r.State().GameOver {
		t.Error("run should still be over")
	}
}

func TestDeadHandleIsNoop(t *testing.T) {
	g := &scriptGame{}
	r := New(g, Config{})
	old := r.Start(core.DefaultConfig())
	now := time.Unix(0, 0)
	r.Frame(old, now, press())

	h := r.Start(core.DefaultConfig())
	if old.Alive() {
		t.Error("restart should cancel the previous schedule")
	}
	if r.Frame(old, now, press()) {
		t.Error("stale handle accepted")
	}
	if len(g.scales) != 0 {
		t.Errorf("stale frame stepped the game: %v", g.scales)
	}

	r.Stop()
	if r.Frame(h, now, press()) {
		t.Error("stopped handle accepted")
	}
	if r.Frame(nil, now, press()) {
		t.Error("nil handle accepted")
	}
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
}

func TestDefaults(t *testing.T) {
	g := &scriptGame{}
	r := New(g, Config{})
	if r.Player() != profile.DefaultName {
		t.Errorf("player = %q", r.Player())
	}
	r.Resize(120, 40)
	if g.cols != 120 {
		t.Errorf("resize not forwarded: %d", g.cols)
	}
	r.Render(nil)
}

func TestStartStoresPlayerName(t *testing.T) {
	kv := storage.NewMemory()
	r := New(&scriptGame{}, Config{Player: " ada\t", Profile: kv})

	if got := profile.Load(kv); got != profile.DefaultName {
		t.Fatalf("name stored before start: %q", got)
	}
	r.Start(core.DefaultConfig())
	if got := profile.Load(kv); got != "ada" {
		t.Errorf("stored name = %q, want %q", got, "ada")
	}

	r.Stop()
	other := New(&scriptGame{}, Config{Player: "grace", Profile: kv})
	other.Start(core.DefaultConfig())
	if got := profile.Load(kv); got != "grace" {
		t.Errorf("stored name = %q, want %q", got, "grace")
	}
}

func TestStartWithoutProfile(t *testing.T) {
	r := New(&scriptGame{}, Config{Player: "ada"})
	if h := r.Start(core.DefaultConfig()); !h.Alive() {
		t.Error("start without a profile should still open a schedule")
	}
}
