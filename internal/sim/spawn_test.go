package sim

import (
	"testing"

	"github.com/vovakirdan/orba-arcade/internal/config"
)

func TestCadenceMatchesModuloAtUnitScale(t *testing.T) {
	var c Cadence
	fired := 0
	for frame := 1; frame <= 120; frame++ {
		if c.Due(1, 40) {
			fired++
			if frame%40 != 0 {
				t.Errorf("fired on frame %d", frame)
			}
		}
	}
	if fired != 3 {
		t.Errorf("fired %d times, want 3", fired)
	}
}

func TestCadenceHonorsScale(t *testing.T) {
	var c Cadence
	fired := 0
	for i := 0; i < 60; i++ {
		if c.Due(2, 40) {
			fired++
		}
	}
	if fired != 3 {
		t.Errorf("fired %d times at scale 2, want 3", fired)
	}
}

type kind int

const (
	rock kind = iota
	nova
	hole
)

func TestTablePick(t *testing.T) {
	table := NewTable(rock,
		Row[kind]{Kind: hole, Above: 0.96},
		Row[kind]{Kind: nova, Above: 0.85, MinProgress: 100},
	)

	tests := []struct {
		name     string
		roll     float64
		progress float64
		want     kind
	}{
		{"top roll", 0.99, 0, hole},
		{"gated row closed", 0.9, 50, rock},
		{"gated row open", 0.9, 100, nova},
		{"low roll", 0.2, 1000, rock},
		{"threshold is exclusive", 0.96, 1000, nova},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Pick(tt.roll, tt.progress); got != tt.want {
				t.Errorf("Pick(%v, %v) = %v, want %v", tt.roll, tt.progress, got, tt.want)
			}
		})
	}
}

func TestTableFromConfig(t *testing.T) {
	cats := []config.Category{
		{Name: "blackhole", Above: 0.96},
		{Name: "mystery", Above: 0.9},
		{Name: "nova", Above: 0.85},
	}
	table := TableFrom(rock, cats, map[string]kind{"blackhole": hole, "nova": nova})

	if got := table.Pick(0.92, 0); got != nova {
		t.Errorf("unknown category should be skipped, got %v", got)
	}
	if got := table.Pick(0.97, 0); got != hole {
		t.Errorf("got %v, want hole", got)
	}
}
