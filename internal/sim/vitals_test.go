package sim

import "testing"

func TestMeterClamp(t *testing.T) {
	m := NewMeter(90)
	m.Add(35)
	if m.Value() != MeterMax {
		t.Errorf("value = %v, want %v", m.Value(), MeterMax)
	}
	m.Add(-1000)
	if m.Value() != 0 || !m.Empty() {
		t.Errorf("value = %v, want 0", m.Value())
	}
	if NewMeter(-5).Value() != 0 {
		t.Error("NewMeter should clamp")
	}
}

func TestVitalsShieldAbsorbs(t *testing.T) {
	v := NewVitals(50)

	if !v.Hit(25, 30) {
		t.Error("hit with shield should be absorbed")
	}
	if v.Health.Value() != 100 || v.Shield.Value() != 20 {
		t.Errorf("health %v shield %v, want 100 20", v.Health.Value(), v.Shield.Value())
	}

	// The remaining 20 shield still absorbs a full drain.
	if !v.Hit(25, 30) {
		t.Error("partial shield should still absorb")
	}
	if v.Shield.Value() != 0 || v.Health.Value() != 100 {
		t.Errorf("health %v shield %v, want 100 0", v.Health.Value(), v.Shield.Value())
	}

	if v.Hit(25, 30) {
		t.Error("empty shield absorbed")
	}
	if v.Health.Value() != 75 {
		t.Errorf("health = %v, want 75", v.Health.Value())
	}
}

func TestVitalsHealthNeverNegative(t *testing.T) {
	v := NewVitals(0)
	for i := 0; i < 10; i++ {
		v.Hit(25, 30)
	}
	if v.Health.Value() != 0 {
		t.Errorf("health = %v, want 0", v.Health.Value())
	}
	if !v.Dead() {
		t.Error("zero health should be dead")
	}
}
