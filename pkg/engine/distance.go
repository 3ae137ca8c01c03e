package engine

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// Distance returns the minimum Euclidean distance between a and b, computed
// by brute-force over every pairwise combination of extracted segments and
// points (spec §6's `distance` operation). GeometryCollection operands are
// rejected per spec §7's UnsupportedGeometry policy; this check is local to
// Distance.
func (e *engineImpl) Distance(a, b geom.Geometry) (float64, error) {
	if err := rejectCollection(a); err != nil {
		notify(e.sink, err)
		return 0, err
	}
	if err := rejectCollection(b); err != nil {
		notify(e.sink, err)
		return 0, err
	}
	if a == nil || b == nil || a.IsEmpty() || b.IsEmpty() {
		err := &geom.ErrUnsupportedGeometry{Op: "Distance", Type: "empty geometry"}
		notify(e.sink, err)
		return 0, err
	}

	segsA, ptsA := extractGeometry(a)
	segsB, ptsB := extractGeometry(b)

	best := math.Inf(1)
	for _, sa := range segsA {
		for _, sb := range segsB {
			if d := segmentDistance(sa[0], sa[1], sb[0], sb[1]); d < best {
				best = d
			}
		}
		for _, p := range ptsB {
			if d := pointSegmentDistance(p, sa[0], sa[1]); d < best {
				best = d
			}
		}
	}
	for _, sb := range segsB {
		for _, p := range ptsA {
			if d := pointSegmentDistance(p, sb[0], sb[1]); d < best {
				best = d
			}
		}
	}
	for _, pa := range ptsA {
		for _, pb := range ptsB {
			if d := pa.Distance(pb); d < best {
				best = d
			}
		}
	}
	return best, nil
}

func rejectCollection(g geom.Geometry) error {
	if _, ok := g.(*geom.GeometryCollection); ok {
		return &geom.ErrUnsupportedGeometry{Op: "Distance", Type: g.GeometryType()}
	}
	return nil
}

// extractGeometry decomposes g into its constituent segments (as coordinate
// pairs) and standalone points.
func extractGeometry(g geom.Geometry) ([][2]geom.Coordinate, []geom.Coordinate) {
	var segs [][2]geom.Coordinate
	var pts []geom.Coordinate
	geom.Walk(g, func(child geom.Geometry) {
		switch t := child.(type) {
		case *geom.Point:
			if !t.IsEmpty() {
				pts = append(pts, t.Coordinate())
			}
		case *geom.LineString:
			seq := t.CoordinateSequence()
			for i := 0; i+1 < seq.Size(); i++ {
				segs = append(segs, [2]geom.Coordinate{seq.Get(i), seq.Get(i + 1)})
			}
		case *geom.Polygon:
			ringSegs := func(r *geom.LinearRing) {
				seq := r.CoordinateSequence()
				for i := 0; i+1 < seq.Size(); i++ {
					segs = append(segs, [2]geom.Coordinate{seq.Get(i), seq.Get(i + 1)})
				}
			}
			if !t.IsEmpty() {
				ringSegs(t.Shell())
				for _, h := range t.Holes() {
					ringSegs(h)
				}
			}
		}
	})
	return segs, pts
}

func pointSegmentDistance(p, a, b geom.Coordinate) float64 {
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

func segmentDistance(a1, a2, b1, b2 geom.Coordinate) float64 {
	if segmentsIntersectXY(a1, a2, b1, b2) {
		return 0
	}
	d := pointSegmentDistance(a1, b1, b2)
	if v := pointSegmentDistance(a2, b1, b2); v < d {
		d = v
	}
	if v := pointSegmentDistance(b1, a1, a2); v < d {
		d = v
	}
	if v := pointSegmentDistance(b2, a1, a2); v < d {
		d = v
	}
	return d
}

func segmentsIntersectXY(p1, p2, p3, p4 geom.Coordinate) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func orientation(a, b, c geom.Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p geom.Coordinate) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}
