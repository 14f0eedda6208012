package nebula

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

// started returns a game past the briefing.
func started(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	g.Step(tick(core.ActionConfirm))
	return g
}

func TestBriefingGatesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 30; i++ {
		g.Step(tick())
	}
	if st := g.State(); st.Phase != "briefing" || st.Score != 0 {
		t.Fatalf("state before start = %+v", st)
	}

	g.Step(tick(core.ActionFire))
	g.Step(tick())
	if st := g.State(); st.Phase != "playing" || st.Score == 0 {
		t.Errorf("state after start = %+v", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (*Game, core.GameState) {
		g := started(12345)
		var st core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			in.Point(10+(i/20)%60, 18)
			st = g.Step(core.NewTick(in, 1)).State
			if st.GameOver {
				break
			}
		}
		return g, st
	}

	g1, s1 := run()
	g2, s2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.hazards.Len() != g2.hazards.Len() || g1.shipX != g2.shipX {
		t.Errorf("worlds differ: %d/%v vs %d/%v", g1.hazards.Len(), g1.shipX, g2.hazards.Len(), g2.shipX)
	}
}

func TestHazardHitsHull(t *testing.T) {
	g := started(1)
	g.hazards.Clear()
	g.hazards.Spawn(hazard{Kind: asteroid, X: g.shipX, Y: g.shipY, Size: 60, Health: 1})

	g.updateHazards(0, false)

	if got := g.vitals.Health.Value(); got != 75 {
		t.Errorf("hull = %v, want 75", got)
	}
	if g.hazards.Len() != 0 {
		t.Error("hazard should be removed in the frame it hit")
	}
	if g.kit.Shake.Magnitude() <= 0 {
		t.Error("hit should shake the screen")
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	g := started(1)
	g.vitals.Shield.Set(100)
	g.hazards.Clear()
	g.hazards.Spawn(hazard{Kind: nova, X: g.shipX, Y: g.shipY, Size: 60, Health: 3})

	g.updateHazards(0, false)

	if g.vitals.Health.Value() != 100 {
		t.Errorf("hull = %v, want 100", g.vitals.Health.Value())
	}
	if g.vitals.Shield.Value() != 70 {
		t.Errorf("shield = %v, want 70", g.vitals.Shield.Value())
	}
}

func TestShotsDestroyHazard(t *testing.T) {
	g := started(1)
	g.hazards.Clear()
	g.hazards.Spawn(hazard{Kind: asteroid, X: 100, Y: 100, Size: 60, Health: 1})
	g.shots.Spawn(shot{X: 100, Y: 105})
	g.shots.Spawn(shot{X: 100, Y: 110})
	before := g.score

	g.updateHazards(0, false)

	if g.hazards.Len() != 0 {
		t.Fatal("hazard survived a hit at 1 health")
	}
	spent := 0
	for _, s := range g.shots.Items() {
		if s.Spent {
			spent++
		}
	}
	if spent != 1 {
		t.Errorf("spent shots = %d, want 1", spent)
	}
	if g.score-before != 100 {
		t.Errorf("kill awarded %v, want 100", g.score-before)
	}
}

func TestSpentShotsNotDrawn(t *testing.T) {
	g := started(1)
	g.hazards.Clear()
	g.pickups.Clear()
	g.shots.Clear()
	g.shots.Spawn(shot{X: 200, Y: 200})
	g.shots.Spawn(shot{X: 300, Y: 200, Spent: true})

	s := core.NewScreen(80, 24)
	g.Render(s)

	if n := strings.Count(s.String(), "|"); n != 1 {
		t.Errorf("drew %d shots, want 1", n)
	}
}

func TestGameOverEmittedOnce(t *testing.T) {
	g := started(1)
	g.vitals.Health.Set(25)
	g.hazards.Clear()
	g.hazards.Spawn(hazard{Kind: wall, X: g.shipX, Y: g.shipY, Size: 200, Health: 1})

	terminal := 0
	for i := 0; i < 50; i++ {
		res := g.Step(tick())
		for _, e := range res.Events {
			if e.Terminal() {
				terminal++
			}
		}
	}
	if !g.State().GameOver {
		t.Fatal("game should be over")
	}
	if terminal != 1 {
		t.Errorf("terminal events = %d, want 1", terminal)
	}
}

func TestRestartIsFullReset(t *testing.T) {
	g := started(3)
	for i := 0; i < 200; i++ {
		g.Step(tick())
	}
	g.weapon = weaponBurst
	g.vitals.Health.Set(0)
	g.Step(tick())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(tick(core.ActionRestart))
	st := g.State()
	if st.Phase != "playing" || st.Score != 0 || st.Health != 100 {
		t.Errorf("after restart = %+v", st)
	}
	if g.hazards.Len() != 0 || g.shots.Len() != 0 || g.weapon != weaponNone || g.drive != 0 {
		t.Error("run state survived the restart")
	}
}

func TestPauseFreezes(t *testing.T) {
	g := started(1)
	g.Step(tick())
	score := g.score
	g.Step(tick(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(tick())
	}
	if g.score != score || !g.State().Paused {
		t.Error("paused game advanced")
	}
}

func TestRender(t *testing.T) {
	g := started(1)
	for i := 0; i < 100; i++ {
		g.Step(tick())
	}
	s := core.NewScreen(80, 24)
	g.Render(s)
	g.Render(nil)
	if s.String() == core.NewScreen(80, 24).String() {
		t.Error("render drew nothing")
	}
}
