package nebula

import "github.com/vovakirdan/orba-arcade/internal/core"

type hazardKind int

const (
	asteroid hazardKind = iota
	nova
	wall
	blackhole
)

var hazardNames = map[string]hazardKind{
	"asteroid":  asteroid,
	"nova":      nova,
	"wall":      wall,
	"blackhole": blackhole,
}

// hazard is anything falling toward the ship.
type hazard struct {
	Kind   hazardKind
	X, Y   float64
	Size   float64
	Speed  float64
	Angle  float64
	Health int
}

// hitSize is the diameter used against the ship. Walls hit with their full
// size, rocks with their dense core.
func (h *hazard) hitSize() float64 {
	if h.Kind == wall {
		return h.Size
	}
	return h.Size * 0.45
}

func (h *hazard) glyph() (rune, core.Color) {
	switch h.Kind {
	case nova:
		return '✶', core.ColorBrightMagenta
	case wall:
		return '▓', core.ColorViolet
	case blackhole:
		return '@', core.ColorGray
	default:
		return '#', core.ColorOrange
	}
}

// shot is a weapon projectile. Spent shots are dropped on the next pass.
type shot struct {
	X, Y   float64
	VX, VY float64
	Burst  bool
	Spent  bool
}

type weapon int

const (
	weaponNone weapon = iota
	weaponPlasma
	weaponBurst
)

func (w weapon) String() string {
	switch w {
	case weaponPlasma:
		return "PLASMA"
	case weaponBurst:
		return "BURST"
	default:
		return "NONE"
	}
}

type pickupKind int

const (
	pickupPlasma pickupKind = iota
	pickupBurst
	pickupShield
	pickupMultiplier
	pickupRepair
)

func (p pickupKind) glyph() (rune, core.Color) {
	switch p {
	case pickupBurst:
		return 'B', core.ColorBrightRed
	case pickupShield:
		return 'S', core.ColorBrightBlue
	case pickupMultiplier:
		return 'M', core.ColorBrightYellow
	case pickupRepair:
		return '+', core.ColorBrightGreen
	default:
		return 'P', core.ColorBrightCyan
	}
}

// pickup drifts down until collected or out of view.
type pickup struct {
	Kind  pickupKind
	X, Y  float64
	Speed float64
	Pulse float64
}

// star is background parallax only.
type star struct {
	X, Y  float64
	Speed float64
}
