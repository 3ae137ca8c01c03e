package engine

import (
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/pkg/geom"
)

// IsSimple reports whether g has no anomalous geometric points: no
// self-intersection (other than ring closure) for lineal geometry, no
// repeated points for puntal geometry. Polygonal geometry is simple by
// definition once it is valid, since its rings cannot self-intersect
// without also being invalid. Uses the same self-noding technique as the
// validity checker's self-intersection check: an output substring count
// greater than the original segment count means two interior points met.
func (e *engineImpl) IsSimple(g geom.Geometry) bool {
	if g == nil || g.IsEmpty() {
		return true
	}

	simple := true
	seen := make(map[[2]float64]bool)

	geom.Walk(g, func(child geom.Geometry) {
		if !simple {
			return
		}
		switch t := child.(type) {
		case *geom.LineString:
			if t.IsEmpty() {
				return
			}
			if _, isRing := child.(*geom.LinearRing); isRing {
				return
			}
			coords := append([]geom.Coordinate(nil), t.CoordinateSequence().All()...)
			ss := noding.NewSegmentString(coords, nil)
			out := noding.SimpleNoder{}.ComputeNodes([]*noding.SegmentString{ss}, e.pm)
			if len(out) > ss.NumSegments() {
				simple = false
			}
		case *geom.Point:
			if t.IsEmpty() {
				return
			}
			c := t.Coordinate()
			key := [2]float64{c.X, c.Y}
			if seen[key] {
				simple = false
				return
			}
			seen[key] = true
		}
	})

	return simple
}
