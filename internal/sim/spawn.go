package sim

import (
	"math"

	"github.com/vovakirdan/orba-arcade/internal/config"
)

// Cadence gates spawns on a frame-scaled counter. At scale 1 it fires every
// interval frames, like a frame-counter modulo; at other scales it fires at
// the same wall-clock rate.
type Cadence struct {
	acc float64
}

// Due advances the counter by scale frames and reports whether an interval
// boundary was crossed. A shrinking interval takes effect immediately.
func (c *Cadence) Due(scale, interval float64) bool {
	if interval < 1 {
		interval = 1
	}
	c.acc += scale
	if c.acc < interval {
		return false
	}
	c.acc = math.Mod(c.acc, interval)
	return true
}

// Reset rewinds the counter.
func (c *Cadence) Reset() {
	c.acc = 0
}

// Row is one entry of a weighted category table.
type Row[K comparable] struct {
	Kind        K
	Above       float64
	MinProgress float64
}

// Table picks an entity category from a uniform roll in [0, 1).
// Rows are tried in order; the first whose threshold the roll exceeds and
// whose progress gate is open wins. Otherwise the fallback kind is used.
type Table[K comparable] struct {
	fallback K
	rows     []Row[K]
}

// NewTable builds a table.
func NewTable[K comparable](fallback K, rows ...Row[K]) *Table[K] {
	return &Table[K]{fallback: fallback, rows: rows}
}

// TableFrom builds a table from configured categories, mapping category
// names to kinds. Unknown names are skipped.
func TableFrom[K comparable](fallback K, cats []config.Category, names map[string]K) *Table[K] {
	t := &Table[K]{fallback: fallback}
	for _, c := range cats {
		k, ok := names[c.Name]
		if !ok {
			continue
		}
		t.rows = append(t.rows, Row[K]{Kind: k, Above: c.Above, MinProgress: c.MinProgress})
	}
	return t
}

// Pick returns the category for roll at the given progress.
func (t *Table[K]) Pick(roll, progress float64) K {
	for _, r := range t.rows {
		if roll > r.Above && progress >= r.MinProgress {
			return r.Kind
		}
	}
	return t.fallback
}
