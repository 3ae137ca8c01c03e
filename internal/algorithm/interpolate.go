package algorithm

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// InterpolateZ fills in pt.Z given the two parent segments the intersection
// point lies on (spec §4.3): if pt coincides with an endpoint, that
// endpoint's Z is copied; otherwise Z is linearly interpolated along each
// parent segment and the defined results are averaged.
func InterpolateZ(pt geom.Coordinate, p1, p2, q1, q2 geom.Coordinate) geom.Coordinate {
	if z, ok := endpointZ(pt, p1, p2, q1, q2); ok {
		pt.Z = z
		return pt
	}
	zp, okP := interpolateAlong(p1, p2, pt)
	zq, okQ := interpolateAlong(q1, q2, pt)
	switch {
	case okP && okQ:
		pt.Z = (zp + zq) / 2
	case okP:
		pt.Z = zp
	case okQ:
		pt.Z = zq
	default:
		pt.Z = math.NaN()
	}
	return pt
}

func endpointZ(pt, p1, p2, q1, q2 geom.Coordinate) (float64, bool) {
	for _, c := range []geom.Coordinate{p1, p2, q1, q2} {
		if pt.Equals2D(c) && c.HasZ() {
			return c.Z, true
		}
	}
	return 0, false
}

func interpolateAlong(a, b, pt geom.Coordinate) (float64, bool) {
	if !a.HasZ() || !b.HasZ() {
		return 0, false
	}
	t := segmentFraction(a, b, pt)
	return a.Z + t*(b.Z-a.Z), true
}
