package graph

import (
	"github.com/planarith/geom/pkg/geom"
)

// Locate computes the Location of point p with respect to geometry g: the
// precise point-in-polygon / point-on-line locator of spec §4.5 step 2,
// used to fill a node's label slot for whichever input that node's edges
// didn't already establish.
func Locate(p geom.Coordinate, g geom.Geometry) geom.Location {
	if g == nil || g.IsEmpty() {
		return geom.LocationExterior
	}
	switch t := g.(type) {
	case *geom.Point:
		if !t.IsEmpty() && t.Coordinate().Equals2D(p) {
			return geom.LocationInterior
		}
		return geom.LocationExterior
	case *geom.LineString:
		return locateOnLine(p, t)
	case *geom.Polygon:
		return locateInPolygon(p, t)
	case geom.Collection:
		best := geom.LocationExterior
		for _, child := range t.Geometries() {
			loc := Locate(p, child)
			if loc == geom.LocationBoundary {
				return geom.LocationBoundary
			}
			if loc == geom.LocationInterior {
				best = geom.LocationInterior
			}
		}
		return best
	default:
		return geom.LocationExterior
	}
}

func locateOnLine(p geom.Coordinate, l *geom.LineString) geom.Location {
	seq := l.CoordinateSequence()
	n := seq.Size()
	if n == 0 {
		return geom.LocationExterior
	}
	if p.Equals2D(seq.Get(0)) || p.Equals2D(seq.Get(n-1)) {
		if !l.IsClosed() {
			return geom.LocationBoundary
		}
	}
	for i := 0; i < n-1; i++ {
		if onSegment(p, seq.Get(i), seq.Get(i+1)) {
			return geom.LocationInterior
		}
	}
	return geom.LocationExterior
}

func onSegment(p, a, b geom.Coordinate) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// locateInPolygon runs the ray-casting rule against the shell, then against
// each hole: inside the shell and outside every hole => Interior; on the
// shell or any hole boundary => Boundary; otherwise Exterior.
func locateInPolygon(p geom.Coordinate, poly *geom.Polygon) geom.Location {
	if poly.IsEmpty() {
		return geom.LocationExterior
	}
	shellLoc := locateInRing(p, poly.Shell())
	if shellLoc != geom.LocationInterior {
		return shellLoc
	}
	for _, h := range poly.Holes() {
		holeLoc := locateInRing(p, h)
		if holeLoc == geom.LocationBoundary {
			return geom.LocationBoundary
		}
		if holeLoc == geom.LocationInterior {
			return geom.LocationExterior
		}
	}
	return geom.LocationInterior
}

// locateInRing implements the standard even-odd ray-casting point-in-ring
// test, with an on-boundary check first.
func locateInRing(p geom.Coordinate, ring *geom.LinearRing) geom.Location {
	seq := ring.CoordinateSequence()
	n := seq.Size()
	if n == 0 {
		return geom.LocationExterior
	}
	for i := 0; i < n-1; i++ {
		if onSegment(p, seq.Get(i), seq.Get(i+1)) {
			return geom.LocationBoundary
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := seq.Get(i), seq.Get(j)
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	if inside {
		return geom.LocationInterior
	}
	return geom.LocationExterior
}
