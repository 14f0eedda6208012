package echorealm

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

func TestRate(t *testing.T) {
	g := started(1)
	tests := []struct {
		progress float64
		want     string
		points   float64
	}{
		{0.9, "PERFECT", 100},
		{0.95, "PERFECT", 100},
		{0.8, "GOOD", 50},
		{1.0, "GOOD", 50},
		{0.76, "GOOD", 50},
		{0.7, "OK", 20},
		{1.08, "OK", 20},
	}
	for _, tt := range tests {
		gr := g.rate(tt.progress)
		if gr.Text != tt.want || gr.Points != tt.points {
			t.Errorf("rate(%v) = %s/%v, want %s/%v", tt.progress, gr.Text, gr.Points, tt.want, tt.points)
		}
	}
}

func TestStrikeHitsNoteInWindow(t *testing.T) {
	g := started(1)
	g.notes.Spawn(note{Lane: 2, Progress: 0.9})
	g.notes.Spawn(note{Lane: 2, Progress: 0.3})

	g.strike(2)

	if g.score != 100 {
		t.Errorf("score = %d, want 100", g.score)
	}
	if g.notes.Len() != 1 || g.notes.Items()[0].Progress != 0.3 {
		t.Errorf("wrong note consumed: %+v", g.notes.Items())
	}
	if g.combo.Count != 1 || g.charge.Value() != 5 {
		t.Errorf("combo/charge = %d/%v", g.combo.Count, g.charge.Value())
	}
}

func TestEmptyStrikeResetsCombo(t *testing.T) {
	g := started(1)
	for i := 0; i < 12; i++ {
		g.combo.Hit()
	}
	g.notes.Spawn(note{Lane: 0, Progress: 0.9})

	g.strike(1)

	if g.combo.Count != 0 || g.combo.Mult != 1 {
		t.Errorf("combo = %d x%v, want reset", g.combo.Count, g.combo.Mult)
	}
	if g.health.Value() != 95 {
		t.Errorf("health = %v, want 95", g.health.Value())
	}
	if g.notes.Len() != 1 {
		t.Error("note in another lane was consumed")
	}
}

func TestComboMultiplier(t *testing.T) {
	g := started(1)
	for i := 0; i < 10; i++ {
		g.notes.Spawn(note{Lane: 0, Progress: 0.9})
		g.strike(0)
	}
	if g.score != 1000 {
		t.Fatalf("score after 10 perfects = %d, want 1000", g.score)
	}
	g.notes.Spawn(note{Lane: 0, Progress: 0.9})
	g.strike(0)
	if g.score != 1200 {
		t.Errorf("11th perfect at x2: score = %d, want 1200", g.score)
	}
}

func TestMissedNote(t *testing.T) {
	g := started(1)
	g.combo.Hit()
	g.notes.Spawn(note{Lane: 1, Progress: 1.09, Speed: 0.02})

	g.advanceNotes(1)
	if g.health.Value() != 92 || g.combo.Count != 0 {
		t.Fatalf("health/combo = %v/%d, want 92/0", g.health.Value(), g.combo.Count)
	}
	g.advanceNotes(1)
	if g.health.Value() != 92 {
		t.Error("a missed note was charged twice")
	}
	for i := 0; i < 10; i++ {
		g.advanceNotes(1)
	}
	if g.notes.Len() != 0 {
		t.Error("note past the rail end should despawn")
	}
}

func TestOverdrive(t *testing.T) {
	g := started(1)
	g.charge.Set(100)
	g.Step(tick())
	if !g.boosters.Active(boostOverdrive) {
		t.Fatal("full meter should trigger overdrive")
	}

	g.notes.Spawn(note{Lane: 3, Progress: 0.9})
	before := g.score
	g.strike(3)
	if got := g.score - before; got != 200 {
		t.Errorf("overdrive perfect = %d, want 200", got)
	}

	g.Step(core.NewTick(core.NewInputFrame(), 500))
	if g.boosters.Active(boostOverdrive) {
		t.Error("overdrive did not expire")
	}
}

func TestLaneKeys(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLane3)
	in.Set(core.ActionUp)
	got := pressedLanes(in)
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("lanes = %v, want [0 2]", got)
	}
}

func TestGameOverOnce(t *testing.T) {
	g := started(1)
	g.health.Set(0)

	res := g.Step(tick())
	if !res.State.GameOver || len(res.Events) != 1 {
		t.Fatalf("terminal step = %+v", res)
	}
	if res := g.Step(tick()); len(res.Events) != 0 {
		t.Errorf("terminal event repeated: %+v", res.Events)
	}

	res = g.Step(tick(core.ActionRestart))
	if res.State.Phase != "playing" || res.State.Score != 0 || res.State.Health != 100 {
		t.Errorf("after restart = %+v", res.State)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := started(7)
		var st core.GameState
		for i := 0; i < 1500 && !st.GameOver; i++ {
			var acts []core.Action
			if i%13 == 0 {
				acts = append(acts, core.LaneActions[(i/13)%4])
			}
			st = g.Step(tick(acts...)).State
		}
		return st
	}
	if a, b := run(), run(); a != b {
		t.Errorf("states differ: %+v vs %+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := started(1)
	for i := 0; i < 120; i++ {
		g.Step(tick())
	}
	s := core.NewScreen(80, 24)
	g.Render(s)
	g.Render(nil)
	if !strings.Contains(s.Row(0), "ECHO REALM") {
		t.Errorf("HUD = %q", s.Row(0))
	}
}
