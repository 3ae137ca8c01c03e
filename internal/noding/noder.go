package noding

import (
	"github.com/planarith/geom/internal/algorithm"
	"github.com/planarith/geom/pkg/geom"
)

// Noder is implemented by the two strategies of spec §4.4 (SimpleNoder,
// MCIndexNoder). ComputeNodes produces a new collection of SegmentStrings
// such that the only common points between any two output strings are
// their endpoints, and every interior intersection of inputs corresponds to
// an endpoint in the output.
type Noder interface {
	ComputeNodes(inputs []*SegmentString, pm geom.PrecisionModel) []*SegmentString
}

// SimpleNoder is the O(N²) pairwise-comparison noder: a correct reference
// implementation, used directly for small inputs (spec §4.4).
type SimpleNoder struct{}

func (SimpleNoder) ComputeNodes(inputs []*SegmentString, pm geom.PrecisionModel) []*SegmentString {
	for i := 0; i < len(inputs); i++ {
		for j := i; j < len(inputs); j++ {
			computeSegmentIntersections(inputs[i], inputs[j], i == j, pm)
		}
	}
	var out []*SegmentString
	for _, s := range inputs {
		out = append(out, s.NodedSubstrings()...)
	}
	return out
}

// computeSegmentIntersections runs every segment pair of a against every
// segment pair of b (skipping a segment against itself when a==b) through
// the robust LineIntersector, recording results into each string's
// intersection list.
func computeSegmentIntersections(a, b *SegmentString, sameString bool, pm geom.PrecisionModel) {
	for i := 0; i < a.NumSegments(); i++ {
		jStart := 0
		if sameString {
			jStart = i
		}
		for j := jStart; j < b.NumSegments(); j++ {
			if sameString && adjacentOrSame(i, j) {
				continue
			}
			addIntersections(a, i, b, j, pm)
		}
	}
}

// adjacentOrSame skips a segment against itself and against its immediate
// neighbor (which always shares an endpoint and is not a topology error).
func adjacentOrSame(i, j int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= 1
}

func addIntersections(a *SegmentString, i int, b *SegmentString, j int, pm geom.PrecisionModel) {
	p1, p2 := a.SegmentStart(i), a.SegmentEnd(i)
	q1, q2 := b.SegmentStart(j), b.SegmentEnd(j)
	res := algorithm.ComputeIntersection(p1, p2, q1, q2, pm)
	if !res.HasIntersection() {
		return
	}
	for k := 0; k < res.NumPoints; k++ {
		pt := res.Points[k]
		a.AddIntersection(pt, i, res.DistP[k])
		b.AddIntersection(pt, j, res.DistQ[k])
	}
}
