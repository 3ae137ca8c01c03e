// Package noding implements spec §4.4: given a collection of segment
// strings, produce a new collection such that the only common points
// between any two output strings are their endpoints, and every interior
// intersection of the inputs corresponds to an endpoint in the output.
package noding

import (
	"sort"

	"github.com/planarith/geom/pkg/geom"
)

// SegmentString is an ordered coordinate sequence with an opaque context
// pointer a caller uses to recover topology labels after noding (spec
// §4.4).
type SegmentString struct {
	Coords  []geom.Coordinate
	Context any

	isects []nodedPoint
}

// NewSegmentString builds a SegmentString over coords, carrying ctx through
// noding unchanged.
func NewSegmentString(coords []geom.Coordinate, ctx any) *SegmentString {
	return &SegmentString{Coords: coords, Context: ctx}
}

// Size returns the number of coordinates.
func (s *SegmentString) Size() int { return len(s.Coords) }

// NumSegments returns the number of segments (Size-1, or 0).
func (s *SegmentString) NumSegments() int {
	if len(s.Coords) == 0 {
		return 0
	}
	return len(s.Coords) - 1
}

// SegmentStart/SegmentEnd return the endpoints of segment i.
func (s *SegmentString) SegmentStart(i int) geom.Coordinate { return s.Coords[i] }
func (s *SegmentString) SegmentEnd(i int) geom.Coordinate   { return s.Coords[i+1] }

// IsClosed reports whether the string's first and last coordinates coincide.
func (s *SegmentString) IsClosed() bool {
	if len(s.Coords) < 2 {
		return false
	}
	return s.Coords[0].Equals2D(s.Coords[len(s.Coords)-1])
}

// nodedPoint is one entry of a segment string's sorted intersection list,
// keyed by its position along the whole string: segIndex+dist, so that a
// dist==1 entry on segment i and a dist==0 entry on segment i+1 naturally
// coalesce at the same position (spec §4.4's "normalize to the later
// segment index" without needing a separate normalization step).
type nodedPoint struct {
	pos   float64
	coord geom.Coordinate
}

// AddIntersection inserts coord into the sorted intersection list, keyed by
// (segIndex, dist). Duplicates at the same position are coalesced.
func (s *SegmentString) AddIntersection(coord geom.Coordinate, segIndex int, dist float64) {
	pos := float64(segIndex) + dist
	for _, p := range s.isects {
		if p.pos == pos {
			return
		}
	}
	s.isects = append(s.isects, nodedPoint{pos: pos, coord: coord})
}

// addEndpoints unconditionally adds the string's own endpoints and every
// original vertex to the intersection list (spec §4.4): original vertices
// are always node boundaries, since they mark where one input segment ends
// and the next begins.
func (s *SegmentString) addEndpoints() {
	n := len(s.Coords)
	if n == 0 {
		return
	}
	for i := 0; i < n-1; i++ {
		s.AddIntersection(s.Coords[i], i, 0.0)
	}
	s.AddIntersection(s.Coords[n-1], n-2, 1.0)
}

// NodedSubstrings returns the output of noding this single string: new
// SegmentStrings split at every entry of the sorted intersection list, each
// inheriting this string's Context. A substring spans from one node
// position to the next; since addEndpoints makes every original vertex a
// node, each substring is a plain 2-point segment.
func (s *SegmentString) NodedSubstrings() []*SegmentString {
	s.addEndpoints()
	sorted := append([]nodedPoint(nil), s.isects...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].pos < sorted[j].pos })

	var out []*SegmentString
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		if a.coord.Equals2D(b.coord) {
			continue
		}
		coords := []geom.Coordinate{a.coord}
		lo, hi := int(a.pos+1), int(b.pos)+1
		// original vertices strictly between the two node positions
		for v := lo; v < hi && v < len(s.Coords)-1; v++ {
			if float64(v) > a.pos && float64(v) < b.pos {
				coords = append(coords, s.Coords[v])
			}
		}
		coords = append(coords, b.coord)
		out = append(out, NewSegmentString(coords, s.Context))
	}
	return out
}
