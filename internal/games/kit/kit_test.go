package kit

import (
	"testing"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newKit(t *testing.T) *Kit {
	t.Helper()
	k := New("prism")
	k.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return k
}

func TestControlPhases(t *testing.T) {
	k := newKit(t)

	if got := k.Control(press()); got != Idle {
		t.Errorf("briefing without input = %v, want Idle", got)
	}
	if got := k.Control(press(core.ActionConfirm)); got != Idle {
		t.Errorf("briefing confirm = %v, want Idle", got)
	}
	if !k.Playing() {
		t.Fatal("confirm should start the run")
	}
	if got := k.Control(press()); got != Run {
		t.Errorf("playing = %v, want Run", got)
	}

	if got := k.Control(press(core.ActionPause)); got != Idle || !k.Paused {
		t.Errorf("pause = %v paused=%v, want Idle and paused", got, k.Paused)
	}
	if got := k.Control(press(core.ActionPause)); got != Run || k.Paused {
		t.Errorf("unpause = %v paused=%v, want Run", got, k.Paused)
	}

	k.Lose(120)
	if got := k.Control(press()); got != Idle {
		t.Errorf("terminal = %v, want Idle", got)
	}
	if got := k.Control(press(core.ActionRestart)); got != Restarted {
		t.Errorf("restart = %v, want Restarted", got)
	}
	if !k.Playing() || k.Machine.Level() != 1 {
		t.Errorf("restart should resume playing at level 1")
	}
}

func TestTerminalEventOnce(t *testing.T) {
	k := newKit(t)
	k.Control(press(core.ActionFire))

	k.Lose(50)
	k.Lose(60)
	k.Win(70)

	res := k.Result(50, 0)
	if len(res.Events) != 1 {
		t.Fatalf("events = %v, want exactly one", res.Events)
	}
	if ev := res.Events[0]; ev.Kind != core.EventGameOver || ev.Score != 50 {
		t.Errorf("event = %+v, want game over with score 50", ev)
	}
	if !res.State.GameOver || res.State.Phase != sim.GameOver.String() {
		t.Errorf("state = %+v, want game over", res.State)
	}
	if again := k.Result(50, 0); len(again.Events) != 0 {
		t.Errorf("events drained twice: %v", again.Events)
	}
}

func TestRandIsSeeded(t *testing.T) {
	a, b := newKit(t), newKit(t)
	for i := 0; i < 10; i++ {
		if x, y := a.Rand.Int63(), b.Rand.Int63(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}

	first := newKit(t).Rand.Int63()
	a.Control(press(core.ActionConfirm))
	a.Lose(0)
	a.Control(press(core.ActionRestart))
	if a.Rand.Int63() == first {
		t.Error("a restarted run should draw a new random sequence")
	}
}

func TestResize(t *testing.T) {
	k := newKit(t)
	k.Resize(120, 40)
	if k.Cols != 120 || k.Rows != 40 {
		t.Errorf("viewport = %dx%d, want 120x40", k.Cols, k.Rows)
	}
	w, h := core.WorldSize(120, 40)
	if k.W != w || k.H != h {
		t.Errorf("world = %vx%v, want %vx%v", k.W, k.H, w, h)
	}

	k.Resize(0, 10)
	if k.Cols != 120 {
		t.Error("non-positive sizes must be ignored")
	}
}

func TestConfigureRejectsBadPreset(t *testing.T) {
	k := New("prism")
	if err := k.Configure("", "nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
	if err := k.Configure("", "hard"); err != nil {
		t.Errorf("Configure hard: %v", err)
	}
}

func TestResetRewindsRun(t *testing.T) {
	k := newKit(t)
	k.Control(press(core.ActionConfirm))
	k.Advance(30)
	k.Burst(10, 10, 8, 1, core.ColorCyan)

	k.Reset(core.RuntimeConfig{Seed: 42})
	if k.Machine.Phase() != sim.Briefing || k.Frames != 0 || k.FX.Len() != 0 {
		t.Errorf("reset left run state behind: phase=%v frames=%v fx=%d", k.Machine.Phase(), k.Frames, k.FX.Len())
	}
	if k.Cols != 80 || k.Rows != 24 {
		t.Errorf("zero screen should fall back to 80x24, got %dx%d", k.Cols, k.Rows)
	}
}
