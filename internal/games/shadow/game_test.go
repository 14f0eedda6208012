package shadow

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

func culprit(g *Game) int {
	for i, n := range g.nodes {
		if n.Culprit {
			return i
		}
	}
	return -1
}

func innocent(g *Game) int {
	for i, n := range g.nodes {
		if !n.Culprit {
			return i
		}
	}
	return -1
}

func awaitPlaying(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 300; i++ {
		if g.Step(tick()).State.Phase == "playing" {
			return
		}
	}
	t.Fatal("transition never finished")
}

func TestCaseLayout(t *testing.T) {
	tests := []struct {
		level, nodes, scans int
	}{
		{1, 10, 7},
		{2, 12, 6},
		{3, 14, 6},
		{5, 18, 5},
		{9, 26, 3},
	}
	g := started(1)
	for _, tt := range tests {
		g.generate(tt.level)
		if len(g.nodes) != tt.nodes || g.scans != tt.scans {
			t.Errorf("level %d: nodes=%d scans=%d, want %d/%d", tt.level, len(g.nodes), g.scans, tt.nodes, tt.scans)
		}
		culprits := 0
		for _, n := range g.nodes {
			if n.Culprit {
				culprits++
				if n.Heat != 1 {
					t.Errorf("culprit heat = %v, want 1", n.Heat)
				}
			} else if n.Heat >= 1 {
				t.Errorf("innocent heat = %v", n.Heat)
			}
		}
		if culprits != 1 {
			t.Errorf("level %d: %d culprits", tt.level, culprits)
		}
	}
}

func TestScan(t *testing.T) {
	g := started(1)
	i := innocent(g)

	g.scan(i)
	if g.nodes[i].Status != scanned || g.scans != 6 {
		t.Fatalf("status=%v scans=%d", g.nodes[i].Status, g.scans)
	}
	g.scan(i)
	if g.scans != 6 {
		t.Error("rescanning a node spent a scan")
	}

	g.scans = 0
	j := (i + 1) % len(g.nodes)
	g.scan(j)
	if g.nodes[j].Status != hidden {
		t.Error("scanned with no scans left")
	}
	if g.State().GameOver {
		t.Error("running out of scans should not end the case")
	}
}

func TestIdentifyCulprit(t *testing.T) {
	g := started(1)
	g.scan(innocent(g))
	g.selected = culprit(g)

	res := g.Step(tick(core.ActionSpecial))
	if res.State.Phase != "level_transition" {
		t.Fatalf("phase = %s", res.State.Phase)
	}
	if want := 1000 + 6*500; g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}

	awaitPlaying(t, g)
	if g.State().Level != 2 || len(g.nodes) != 12 || g.scans != 6 {
		t.Errorf("case 2: level=%d nodes=%d scans=%d", g.State().Level, len(g.nodes), g.scans)
	}
}

func TestFalseIdentification(t *testing.T) {
	g := started(1)
	g.selected = innocent(g)

	res := g.Step(tick(core.ActionSpecial))
	if !res.State.GameOver || len(res.Events) != 1 || res.Events[0].Kind != core.EventGameOver {
		t.Errorf("result = %+v", res)
	}
}

func TestSolvingFinalCaseCompletes(t *testing.T) {
	g := started(1)
	for lvl := 1; lvl < 5; lvl++ {
		g.identify(culprit(g))
		awaitPlaying(t, g)
	}
	g.identify(culprit(g))
	if st := g.State(); st.Phase != "complete" || st.Level != 5 {
		t.Errorf("state = %+v", st)
	}
}

func TestNavigate(t *testing.T) {
	g := started(1)
	n := len(g.nodes)

	g.Step(tick(core.ActionLeft))
	if g.selected != n-1 {
		t.Errorf("left from 0 = %d, want %d", g.selected, n-1)
	}
	g.Step(tick(core.ActionRight))
	if g.selected != 0 {
		t.Errorf("right = %d, want 0", g.selected)
	}

	target := g.nodes[3]
	in := core.NewInputFrame()
	cx, cy := core.ToCell(target.X, target.Y)
	in.Point(cx, cy)
	g.Step(core.NewTick(in, 1))
	if got := g.nodes[g.selected]; core.Dist(got.X, got.Y, target.X, target.Y) > 2*core.CellH {
		t.Errorf("pointer selected node %d far from node 3", g.selected)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []node {
		g := started(21)
		return append([]node(nil), g.nodes...)
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := started(1)
	g.scan(0)
	s := core.NewScreen(80, 24)
	g.Render(s)
	g.Render(nil)
	if !strings.Contains(s.Row(0), "CASE 1") || !strings.Contains(s.Row(0), "SCANS 6") {
		t.Errorf("HUD = %q", s.Row(0))
	}
	if !strings.Contains(s.String(), "%") {
		t.Error("scanned heat not labelled")
	}
}
