package sim

import "testing"

func TestComboStreakMultiplier(t *testing.T) {
	c := NewCombo(ComboRule{Every: 10, Step: 1, Max: 8})
	for i := 0; i < 25; i++ {
		c.Hit()
	}
	if c.Mult != 3 {
		t.Errorf("mult after 25 hits = %v, want 3", c.Mult)
	}
	for i := 0; i < 100; i++ {
		c.Hit()
	}
	if c.Mult != 8 {
		t.Errorf("mult = %v, want cap 8", c.Mult)
	}
}

func TestComboMissResetsBoth(t *testing.T) {
	c := NewCombo(ComboRule{Step: 0.5, Max: 10})
	c.Hit()
	c.Hit()
	c.Hit()
	if c.Mult != 2.5 {
		t.Fatalf("mult = %v, want 2.5", c.Mult)
	}

	c.Miss()
	if c.Count != 0 || c.Mult != 1 {
		t.Errorf("after miss: count %d mult %v, want 0 1", c.Count, c.Mult)
	}
	if c.Best != 3 {
		t.Errorf("best = %d, want 3", c.Best)
	}
}

func TestStepMultiplier(t *testing.T) {
	tests := []struct {
		distance, per, want float64
	}{
		{0, 500, 1},
		{499, 500, 1},
		{500, 500, 2},
		{1750, 500, 4},
		{100, 0, 1},
	}
	for _, tt := range tests {
		if got := StepMultiplier(tt.distance, tt.per); got != tt.want {
			t.Errorf("StepMultiplier(%v, %v) = %v, want %v", tt.distance, tt.per, got, tt.want)
		}
	}
}
