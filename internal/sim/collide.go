package sim

import "github.com/vovakirdan/orba-arcade/internal/core"

// Within reports whether two points are closer than r.
func Within(ax, ay, bx, by, r float64) bool {
	dx, dy := bx-ax, by-ay
	return dx*dx+dy*dy < r*r
}

// Touching reports whether two circles overlap.
func Touching(ax, ay, ar, bx, by, br float64) bool {
	return Within(ax, ay, bx, by, ar+br)
}

// InBand reports whether a polar entity at dist sits in the radial band
// [inner, outer] and within halfWidth radians of the given angle.
func InBand(angle, dist, at, inner, outer, halfWidth float64) bool {
	return dist >= inner && dist <= outer && core.AngleDiff(angle, at) < halfWidth
}
