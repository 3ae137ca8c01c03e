package algorithm

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// IntersectionResult is the outcome of intersecting segment (p1,p2) with
// segment (q1,q2): 0, 1, or 2 points, whether the intersection is proper
// (interior-interior, spec GLOSSARY), and the per-segment edge-distance
// fraction of each intersection point for noding purposes.
type IntersectionResult struct {
	NumPoints int
	Points    [2]geom.Coordinate
	Proper    bool
	// DistP/DistQ are the fractional distance (0..1) of each intersection
	// point along segment (p1,p2) and (q1,q2) respectively.
	DistP, DistQ [2]float64
}

// HasIntersection reports whether any intersection was found.
func (r IntersectionResult) HasIntersection() bool { return r.NumPoints > 0 }

// IsCollinear reports a 2-point (collinear-overlap) result.
func (r IntersectionResult) IsCollinear() bool { return r.NumPoints == 2 }

// ComputeIntersection implements spec §4.3's central routine for segments
// (p1,p2) and (q1,q2), rounding any computed (non-endpoint-copied) result
// through pm.
func ComputeIntersection(p1, p2, q1, q2 geom.Coordinate, pm geom.PrecisionModel) IntersectionResult {
	envP := geom.NewEnvelope(min2(p1.X, p2.X), max2(p1.X, p2.X), min2(p1.Y, p2.Y), max2(p1.Y, p2.Y))
	envQ := geom.NewEnvelope(min2(q1.X, q2.X), max2(q1.X, q2.X), min2(q1.Y, q2.Y), max2(q1.Y, q2.Y))
	if !envP.Intersects(envQ) {
		return IntersectionResult{}
	}

	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)

	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return IntersectionResult{}
	}
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return IntersectionResult{}
	}

	collinear := pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0
	if collinear {
		return computeCollinearIntersection(p1, p2, q1, q2)
	}

	// Endpoint-on-supporting-line coincidences: the intersection point IS
	// that endpoint, copied verbatim, never recomputed (spec §4.3 step 4).
	if pq1 == 0 {
		return endpointResult(p1, p2, q1, q2, q1, isBetween(p1, p2, q1))
	}
	if pq2 == 0 {
		return endpointResult(p1, p2, q1, q2, q2, isBetween(p1, p2, q2))
	}
	if qp1 == 0 {
		return endpointResult(p1, p2, q1, q2, p1, isBetween(q1, q2, p1))
	}
	if qp2 == 0 {
		return endpointResult(p1, p2, q1, q2, p2, isBetween(q1, q2, p2))
	}

	// Proper crossing: normalize around the common envelope centroid, then
	// solve in homogeneous coordinates.
	pt, ok := intersectProper(p1, p2, q1, q2)
	if !ok {
		// NotRepresentable: fall back to nearest endpoint (spec §4.3 step 6/§7).
		pt = nearestEndpoint(p1, p2, q1, q2)
	} else {
		common := envP.Intersection(envQ)
		if !common.ContainsXY(pt.X, pt.Y) {
			pt = nearestEndpoint(p1, p2, q1, q2)
		}
	}
	pt = pm.MakePreciseCoordinate(pt)

	return IntersectionResult{
		NumPoints: 1,
		Points:    [2]geom.Coordinate{pt, {}},
		Proper:    true,
		DistP:     [2]float64{segmentFraction(p1, p2, pt), 0},
		DistQ:     [2]float64{segmentFraction(q1, q2, pt), 0},
	}
}

func endpointResult(p1, p2, q1, q2, pt geom.Coordinate, onOther bool) IntersectionResult {
	if !onOther {
		return IntersectionResult{}
	}
	proper := !pt.Equals2D(p1) && !pt.Equals2D(p2) && !pt.Equals2D(q1) && !pt.Equals2D(q2)
	return IntersectionResult{
		NumPoints: 1,
		Points:    [2]geom.Coordinate{pt, {}},
		Proper:    proper,
		DistP:     [2]float64{segmentFraction(p1, p2, pt), 0},
		DistQ:     [2]float64{segmentFraction(q1, q2, pt), 0},
	}
}

// isBetween reports whether r, known collinear with segment (a,b), lies
// within the closed segment's envelope.
func isBetween(a, b, r geom.Coordinate) bool {
	env := geom.NewEnvelope(min2(a.X, b.X), max2(a.X, b.X), min2(a.Y, b.Y), max2(a.Y, b.Y))
	return env.ContainsXY(r.X, r.Y)
}

// computeCollinearIntersection handles the case where all four endpoints
// are collinear (spec §4.3 step 3): no intersection, a single touching
// endpoint, or a two-point overlap.
func computeCollinearIntersection(p1, p2, q1, q2 geom.Coordinate) IntersectionResult {
	envP := geom.NewEnvelope(min2(p1.X, p2.X), max2(p1.X, p2.X), min2(p1.Y, p2.Y), max2(p1.Y, p2.Y))
	envQ := geom.NewEnvelope(min2(q1.X, q2.X), max2(q1.X, q2.X), min2(q1.Y, q2.Y), max2(q1.Y, q2.Y))

	p1q := envQ.ContainsXY(p1.X, p1.Y)
	p2q := envQ.ContainsXY(p2.X, p2.Y)
	q1p := envP.ContainsXY(q1.X, q1.Y)
	q2p := envP.ContainsXY(q2.X, q2.Y)

	var pts []geom.Coordinate
	switch {
	case p1q && p2q:
		pts = []geom.Coordinate{p1, p2}
	case q1p && q2p:
		pts = []geom.Coordinate{q1, q2}
	case p1q && q1p:
		pts = dedupe(p1, q1)
	case p1q && q2p:
		pts = dedupe(p1, q2)
	case p2q && q1p:
		pts = dedupe(p2, q1)
	case p2q && q2p:
		pts = dedupe(p2, q2)
	default:
		return IntersectionResult{}
	}

	res := IntersectionResult{NumPoints: len(pts)}
	for i, pt := range pts {
		res.Points[i] = pt
		res.DistP[i] = segmentFraction(p1, p2, pt)
		res.DistQ[i] = segmentFraction(q1, q2, pt)
	}
	return res
}

func dedupe(a, b geom.Coordinate) []geom.Coordinate {
	if a.Equals2D(b) {
		return []geom.Coordinate{a}
	}
	return []geom.Coordinate{a, b}
}

// intersectProper solves for the intersection of two properly-crossing
// segments by translating the common envelope centroid to the origin
// (precision normalization) and solving in homogeneous coordinates (spec
// §4.3 step 5). ok is false if the homogeneous solve is not representable
// (near-parallel lines), triggering the nearest-endpoint fallback.
func intersectProper(p1, p2, q1, q2 geom.Coordinate) (geom.Coordinate, bool) {
	cx := (min2(p1.X, min2(p2.X, min2(q1.X, q2.X))) + max2(p1.X, max2(p2.X, max2(q1.X, q2.X)))) / 2
	cy := (min2(p1.Y, min2(p2.Y, min2(q1.Y, q2.Y))) + max2(p1.Y, max2(p2.Y, max2(q1.Y, q2.Y)))) / 2

	shift := func(c geom.Coordinate) (float64, float64) { return c.X - cx, c.Y - cy }
	p1x, p1y := shift(p1)
	p2x, p2y := shift(p2)
	q1x, q1y := shift(q1)
	q2x, q2y := shift(q2)

	// Line through p: a1*x + b1*y = c1 ; line through q: a2*x + b2*y = c2
	a1 := p2y - p1y
	b1 := p1x - p2x
	c1 := a1*p1x + b1*p1y

	a2 := q2y - q1y
	b2 := q1x - q2x
	c2 := a2*q1x + b2*q1y

	det := a1*b2 - a2*b1
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return geom.Coordinate{}, false
	}
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return geom.Coordinate{}, false
	}
	return geom.NewXY(x+cx, y+cy), true
}

// nearestEndpoint is the fallback of spec §4.3 step 6: the endpoint of
// either segment nearest to the other segment.
func nearestEndpoint(p1, p2, q1, q2 geom.Coordinate) geom.Coordinate {
	best := p1
	bestDist := distToSegment(p1, q1, q2)
	for k, cand := range []geom.Coordinate{p2, q1, q2} {
		var d float64
		switch k {
		case 0:
			d = distToSegment(p2, q1, q2)
		default:
			d = distToSegment(cand, p1, p2)
		}
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func distToSegment(p, a, b geom.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := geom.NewXY(a.X+t*dx, a.Y+t*dy)
	return p.Distance(proj)
}

func segmentFraction(a, b, p geom.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return 0
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / len2
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
