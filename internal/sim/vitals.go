package sim

// MeterMax is the upper bound of every meter.
const MeterMax = 100.0

// Meter is a value clamped to [0, MeterMax] after every mutation.
type Meter struct {
	v float64
}

// NewMeter returns a meter holding v, clamped.
func NewMeter(v float64) Meter {
	var m Meter
	m.Set(v)
	return m
}

// Value returns the current value.
func (m Meter) Value() float64 { return m.v }

// Set replaces the value.
func (m *Meter) Set(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > MeterMax:
		v = MeterMax
	}
	m.v = v
}

// Add changes the value by d.
func (m *Meter) Add(d float64) {
	m.Set(m.v + d)
}

// Frac returns the value as a fraction of MeterMax.
func (m Meter) Frac() float64 { return m.v / MeterMax }

// Empty reports whether the meter is at zero.
func (m Meter) Empty() bool { return m.v <= 0 }

// Full reports whether the meter is at its maximum.
func (m Meter) Full() bool { return m.v >= MeterMax }

// Vitals pairs a health meter with the shield or energy meter that absorbs
// hits before health does.
type Vitals struct {
	Health Meter
	Shield Meter
}

// NewVitals returns full health with the given shield.
func NewVitals(shield float64) Vitals {
	return Vitals{Health: NewMeter(MeterMax), Shield: NewMeter(shield)}
}

// Hit resolves one hazard contact. A non-empty shield takes drain and
// health is untouched; otherwise health takes damage. Returns whether the
// shield absorbed the hit.
func (v *Vitals) Hit(damage, drain float64) bool {
	if !v.Shield.Empty() {
		v.Shield.Add(-drain)
		return true
	}
	v.Health.Add(-damage)
	return false
}

// Dead reports whether health reached zero.
func (v Vitals) Dead() bool {
	return v.Health.Empty()
}
