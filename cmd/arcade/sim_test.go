package main

import (
	"testing"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/registry"
)

func TestSimulateIsDeterministic(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.Seed = 42

			a, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			b, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}

			ra := simulate(a, cfg, 600)
			rb := simulate(b, cfg, 600)
			if ra.Frames != rb.Frames || ra.State != rb.State || len(ra.Events) != len(rb.Events) {
				t.Errorf("runs differ: %+v vs %+v", ra, rb)
			}
			if ra.State.Phase == "briefing" {
				t.Errorf("bot never left the briefing")
			}
		})
	}
}

func TestSimulateStopsAtTicks(t *testing.T) {
	game, err := registry.Create("prism")
	if err != nil {
		t.Fatal(err)
	}
	res := simulate(game, core.DefaultConfig(), 5)
	if res.Frames > 5 {
		t.Errorf("Frames = %d, want at most 5", res.Frames)
	}
}

func TestBotConfirmsBriefing(t *testing.T) {
	b := newBot(1, 80, 24)
	in := b.next(core.GameState{Phase: "briefing"})
	if !in.Has(core.ActionConfirm) {
		t.Error("bot should confirm the briefing")
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want string
	}{
		{core.EventGameOver, "game_over"},
		{core.EventComplete, "complete"},
		{core.EventLevelUp, "level_up"},
		{0, "unknown"},
	}
	for _, tt := range tests {
		if got := eventName(tt.kind); got != tt.want {
			t.Errorf("eventName(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{":23234": "23234", "0.0.0.0:2222": "2222", "2222": "2222"}
	for in, want := range tests {
		if got := port(in); got != want {
			t.Errorf("port(%q) = %q, want %q", in, got, want)
		}
	}
}
