package buffer

import (
	"math"

	"github.com/planarith/geom/internal/overlay"
	"github.com/planarith/geom/pkg/geom"
)

// Buffer computes the polygonal region within distance of g, following the
// offset-curve-then-union pipeline of spec §4.6: every linear/areal/puntal
// component contributes one or more raw offset polygons, which are unioned
// together through the overlay engine to recover a clean result. A negative
// distance erodes areal components inward; lines and points have no defined
// erosion and contribute nothing.
func Buffer(factory *geom.Factory, g geom.Geometry, distance float64, params BufferParameters, pm geom.PrecisionModel) (geom.Geometry, error) {
	if g == nil || g.IsEmpty() {
		return factory.CreateGeometryCollectionEmpty(), nil
	}
	if distance == 0 {
		return g, nil
	}

	tolerance := math.Abs(distance) / 100

	var curves []*geom.Polygon
	geom.Walk(g, func(child geom.Geometry) {
		switch t := child.(type) {
		case *geom.Polygon:
			curves = append(curves, areaBufferPolygons(factory, t, distance, tolerance, params)...)
		case *geom.LinearRing:
			if p := ringBufferPolygon(factory, t, distance, tolerance, params); p != nil {
				curves = append(curves, p)
			}
		case *geom.LineString:
			if !t.IsEmpty() {
				if p := lineBufferPolygon(factory, t, distance, tolerance, params); p != nil {
					curves = append(curves, p)
				}
			}
		case *geom.Point:
			if !t.IsEmpty() && distance > 0 {
				curves = append(curves, pointBufferPolygon(factory, t.Coordinate(), distance, params))
			}
		}
	})

	if len(curves) == 0 {
		return factory.CreateGeometryCollectionEmpty(), nil
	}

	// Every curve is routed through the overlay engine's union, even a
	// lone one: spec step 4 requires every offset curve to be noded and
	// union'd, and a single curve can already self-intersect at a
	// concave join or sharp-angled end cap. Unioning against empty still
	// nodes the curve's own edges into the planar graph and traces a
	// simple result ring from them.
	result := geom.Geometry(factory.CreateGeometryCollectionEmpty())
	for _, p := range curves {
		merged, err := overlay.Compute(factory, result, p, overlay.Union, pm)
		if err != nil {
			return nil, err
		}
		result = merged
	}
	return result, nil
}

// pointBufferPolygon returns the full disc of radius distance around c.
func pointBufferPolygon(factory *geom.Factory, c geom.Coordinate, distance float64, params BufferParameters) *geom.Polygon {
	steps := params.QuadrantSegments * 4
	coords := make([]geom.Coordinate, 0, steps+1)
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		coords = append(coords, geom.NewXY(c.X+distance*math.Cos(t), c.Y+distance*math.Sin(t)))
	}
	coords = append(coords, coords[0])
	return closedRingPolygon(factory, coords)
}

// lineBufferPolygon returns the stadium-shaped polygon bridging the left
// and right offset curves of an open line with the configured end caps.
// A negative distance has no defined buffer for a line and yields nil.
func lineBufferPolygon(factory *geom.Factory, line *geom.LineString, distance, tolerance float64, params BufferParameters) *geom.Polygon {
	if distance < 0 {
		return nil
	}
	coords := simplifyCoords(line.CoordinateSequence().All(), tolerance)
	if len(coords) < 2 {
		return nil
	}

	left := buildSide(coords, +1, distance, params)
	right := buildSide(coords, -1, distance, params)

	n := len(coords)
	fdx, fdy := coords[n-1].X-coords[n-2].X, coords[n-1].Y-coords[n-2].Y
	bdx, bdy := coords[0].X-coords[1].X, coords[0].Y-coords[1].Y

	var ring []geom.Coordinate
	ring = append(ring, left...)
	ring = append(ring, endCap(coords[n-1], fdx, fdy, distance, params.EndCapStyle, params.QuadrantSegments)...)
	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}
	ring = append(ring, endCap(coords[0], bdx, bdy, distance, params.EndCapStyle, params.QuadrantSegments)...)
	if len(ring) < 3 {
		return nil
	}
	ring = append(ring, ring[0])
	return closedRingPolygon(factory, ring)
}

// ringBufferPolygon buffers a standalone closed ring (not attached to a
// polygon as a shell/hole) as a single outward offset curve. This omits the
// inner annulus boundary a fully faithful ring buffer would also produce;
// a standalone ring input is rare enough that the outward curve alone is a
// reasonable approximation. A negative distance has no defined erosion for
// a bare ring and yields nil.
func ringBufferPolygon(factory *geom.Factory, ring *geom.LinearRing, distance, tolerance float64, params BufferParameters) *geom.Polygon {
	if distance < 0 {
		return nil
	}
	coords := ccwClosedCoords(ring)
	coords = simplifyCoords(coords, tolerance)
	offset := ringSide(coords, -1, distance, params)
	if len(offset) < 4 {
		return nil
	}
	return closedRingPolygon(factory, offset)
}

// areaBufferPolygons buffers a polygon's shell: a positive distance
// produces the outward offset curve (self-cleaned by the caller's union
// pass into the correct enlarged shape); a negative distance produces the
// inward (eroded) curve directly, which may collapse to nothing for a
// distance larger than the shape supports. Holes are not separately offset.
func areaBufferPolygons(factory *geom.Factory, poly *geom.Polygon, distance, tolerance float64, params BufferParameters) []*geom.Polygon {
	coords := ccwClosedCoords(poly.Shell())
	coords = simplifyCoords(coords, tolerance)

	side := -1.0 // outward of a CCW ring
	if distance < 0 {
		side = 1.0 // inward
	}
	offset := ringSide(coords, side, math.Abs(distance), params)
	if len(offset) < 4 {
		return nil
	}
	p := closedRingPolygon(factory, offset)
	if p == nil {
		return nil
	}
	return []*geom.Polygon{p}
}

// ccwClosedCoords returns ring's coordinates, reversed if necessary so the
// winding is counter-clockwise, with the closing point retained.
func ccwClosedCoords(ring *geom.LinearRing) []geom.Coordinate {
	coords := append([]geom.Coordinate(nil), ring.CoordinateSequence().All()...)
	if !ring.IsCCW() {
		for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
			coords[i], coords[j] = coords[j], coords[i]
		}
	}
	return coords
}

// closedRingPolygon builds a single-shell polygon from a closed coordinate
// loop, tolerating and discarding degenerate (too-short) input.
func closedRingPolygon(factory *geom.Factory, coords []geom.Coordinate) *geom.Polygon {
	if len(coords) > 0 && !coords[0].Equals2D(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	if len(coords) < 4 {
		return nil
	}
	seq := geom.NewCoordinateSequence(geom.StrideXY, coords)
	ring, err := factory.CreateLinearRing(seq)
	if err != nil {
		return nil
	}
	return factory.CreatePolygon(ring, nil)
}
