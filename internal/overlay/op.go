// Package overlay implements spec §4.5's overlay engine: it orchestrates
// noding, graph construction, labelling, edge-result selection per boolean
// operation, and assembly back into polygons, lines, and points.
package overlay

import "github.com/planarith/geom/pkg/geom"

// Op is one of the four boolean set operations of spec §4.5.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	SymDifference
)

// inResult implements spec §4.5's per-edge result-selection rule: an edge
// is in the area result iff, for both of its side locations (left, right),
// the pair (locA, locB) satisfies the operation's rule, with BOUNDARY
// treated as INTERIOR for this purpose.
func inResult(op Op, locA, locB geom.Location) bool {
	a := effectiveInterior(locA)
	b := effectiveInterior(locB)
	switch op {
	case Intersection:
		return a && b
	case Union:
		return a || b
	case Difference:
		return a && !b
	case SymDifference:
		return a != b
	default:
		return false
	}
}

func effectiveInterior(loc geom.Location) bool {
	return loc == geom.LocationInterior || loc == geom.LocationBoundary
}
