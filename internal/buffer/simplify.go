package buffer

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// simplifyCoords applies Douglas-Peucker simplification at the given
// tolerance (spec §4.6 step 5: a per-side tolerance of distance/100, to
// remove micro-features that would otherwise create degenerate joins).
func simplifyCoords(coords []geom.Coordinate, tolerance float64) []geom.Coordinate {
	if len(coords) < 3 || tolerance <= 0 {
		return coords
	}
	keep := make([]bool, len(coords))
	keep[0] = true
	keep[len(coords)-1] = true
	douglasPeucker(coords, 0, len(coords)-1, tolerance, keep)

	out := make([]geom.Coordinate, 0, len(coords))
	for i, k := range keep {
		if k {
			out = append(out, coords[i])
		}
	}
	if len(out) < 2 {
		return coords
	}
	return out
}

func douglasPeucker(coords []geom.Coordinate, lo, hi int, tolerance float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	maxDist := -1.0
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(coords[i], coords[lo], coords[hi])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist > tolerance {
		keep[maxIdx] = true
		douglasPeucker(coords, lo, maxIdx, tolerance, keep)
		douglasPeucker(coords, maxIdx, hi, tolerance, keep)
	}
}

func perpendicularDistance(p, a, b geom.Coordinate) float64 {
	if a.Equals2D(b) {
		return p.Distance(a)
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	num := abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	den := hypot(dx, dy)
	return num / den
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
