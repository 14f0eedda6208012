package prism

import (
	"strings"
	"testing"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func tick(actions ...core.Action) core.Tick {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return core.NewTick(in, 1)
}

func started(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	g.Step(tick(core.ActionConfirm))
	return g
}

// clearLevel locks every ring of the current level.
func clearLevel(g *Game) {
	for i := range g.rings {
		g.rings[i].Offset = 0
		g.lock()
	}
}

// awaitPlaying steps through a level transition.
func awaitPlaying(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 300; i++ {
		if g.Step(tick()).State.Phase == "playing" {
			return
		}
	}
	t.Fatal("transition never finished")
}

func TestAligned(t *testing.T) {
	tests := []struct {
		offset, tol float64
		want        bool
	}{
		{0, 18, true},
		{17.9, 18, true},
		{18, 18, false},
		{343, 18, true},
		{-10, 18, true},
		{725, 18, true},
		{180, 18, false},
		{-200, 18, false},
	}
	for _, tt := range tests {
		if got := aligned(tt.offset, tt.tol); got != tt.want {
			t.Errorf("aligned(%v, %v) = %v, want %v", tt.offset, tt.tol, got, tt.want)
		}
	}
}

func TestLevelLayout(t *testing.T) {
	g := started(1)
	if len(g.rings) != 3 {
		t.Fatalf("rings = %d, want 3", len(g.rings))
	}
	want := []float64{1.5, -1.9, 2.3}
	for i, r := range g.rings {
		if d := r.Speed - want[i]; d > 1e-9 || d < -1e-9 {
			t.Errorf("ring %d speed = %v, want %v", i, r.Speed, want[i])
		}
	}
	if g.tolerance() != 18 {
		t.Errorf("tolerance = %v, want 18", g.tolerance())
	}
}

func TestLockInOrderWithBonus(t *testing.T) {
	g := started(1)
	g.rings[0].Offset = 365
	g.rings[1].Offset = 0

	g.lock()
	if !g.rings[0].Locked || g.rings[1].Locked {
		t.Fatal("rings must lock innermost first")
	}
	if g.score != 250 {
		t.Errorf("score = %d, want 100 + 150 speed bonus", g.score)
	}

	g.kit.Frames += 200
	g.lock()
	if g.score != 250+150 {
		t.Errorf("score = %d, want +100 +50 early bird", g.score)
	}

	g.kit.Frames += 500
	g.rings[2].Offset = 10
	g.lock()
	if g.score != 400+100 {
		t.Errorf("score = %d, want +100 without bonus", g.score)
	}
}

func TestMissCostsLife(t *testing.T) {
	g := started(1)
	g.rings[0].Offset = 180

	g.lock()
	if g.lives != 2 || g.rings[0].Locked {
		t.Errorf("lives=%d locked=%v", g.lives, g.rings[0].Locked)
	}
	g.lock()
	g.lock()
	st := g.State()
	if !st.GameOver || st.Phase != "game_over" || g.lives != 0 {
		t.Errorf("state = %+v lives=%d", st, g.lives)
	}
}

func TestLevelTransition(t *testing.T) {
	g := started(1)
	clearLevel(g)
	if g.State().Phase != "level_transition" {
		t.Fatalf("phase = %s", g.State().Phase)
	}

	before := g.rings[0].Offset
	g.Step(tick(core.ActionFire))
	if g.rings[0].Offset != before || g.lives != 3 {
		t.Error("rings moved or lock fired during the transition")
	}

	awaitPlaying(t, g)
	if g.State().Level != 2 || len(g.rings) != 4 {
		t.Errorf("level %d with %d rings, want 2 with 4", g.State().Level, len(g.rings))
	}
	if g.tolerance() != 16 {
		t.Errorf("tolerance = %v, want 16", g.tolerance())
	}
}

func TestCompleteAfterFinalLevel(t *testing.T) {
	g := started(1)
	for lvl := 1; lvl < 5; lvl++ {
		clearLevel(g)
		awaitPlaying(t, g)
	}
	if g.State().Level != 5 || len(g.rings) != 6 {
		t.Fatalf("level %d rings %d", g.State().Level, len(g.rings))
	}

	clearLevel(g)
	res := g.Step(tick())
	if res.State.Phase != "complete" || !res.State.GameOver {
		t.Fatalf("state = %+v", res.State)
	}
	var complete int
	for _, e := range res.Events {
		if e.Kind == core.EventComplete {
			complete++
		}
	}
	if complete != 1 {
		t.Errorf("complete events = %d, want 1", complete)
	}
}

func TestRestartAfterComplete(t *testing.T) {
	g := started(1)
	for lvl := 1; lvl <= 5; lvl++ {
		clearLevel(g)
		if lvl < 5 {
			awaitPlaying(t, g)
		}
	}
	res := g.Step(tick(core.ActionRestart))
	if res.State.Level != 1 || res.State.Score != 0 || g.lives != 3 || len(g.rings) != 3 {
		t.Errorf("after restart = %+v lives=%d rings=%d", res.State, g.lives, len(g.rings))
	}
}

func TestRingsSpin(t *testing.T) {
	g := started(1)
	start := g.rings[1].Offset
	g.Step(tick())
	if d := g.rings[1].Offset - start; d > -1.89 || d < -1.91 {
		t.Errorf("ring 1 moved %v, want -1.9", d)
	}
}

func TestRender(t *testing.T) {
	g := started(1)
	s := core.NewScreen(80, 24)
	g.Render(s)
	g.Render(nil)
	if !strings.Contains(s.Row(0), "LEVEL 1") || !strings.Contains(s.Row(0), "♥♥♥") {
		t.Errorf("HUD = %q", s.Row(0))
	}
}
