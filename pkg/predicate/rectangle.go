package predicate

import "github.com/planarith/geom/pkg/geom"

// RectangleIntersects short-circuits Intersects when rect is a rectangular
// Polygon (its shell is exactly its envelope): spec §4.5 names this
// optimization so envelope-shaped inputs skip the full overlay/relate
// pipeline entirely.
func RectangleIntersects(rect *geom.Polygon, other geom.Geometry) (result, applicable bool) {
	if !isRectangle(rect) || other == nil || other.IsEmpty() {
		return false, isRectangle(rect)
	}
	return rect.Envelope().Intersects(other.Envelope()), true
}

// RectangleContains short-circuits Contains the same way, additionally
// requiring other's envelope to lie fully within rect's.
func RectangleContains(rect *geom.Polygon, other geom.Geometry) (result, applicable bool) {
	if !isRectangle(rect) {
		return false, false
	}
	if other == nil || other.IsEmpty() {
		return false, true
	}
	return rect.Envelope().Contains(other.Envelope()), true
}

// isRectangle reports whether poly's shell is a 5-point axis-aligned ring
// exactly tracing its own envelope, with no holes.
func isRectangle(poly *geom.Polygon) bool {
	if poly == nil || poly.IsEmpty() || poly.NumHoles() != 0 {
		return false
	}
	shell := poly.Shell()
	seq := shell.CoordinateSequence()
	if seq.Size() != 5 {
		return false
	}
	env := poly.Envelope()
	for i := 0; i < 5; i++ {
		c := seq.Get(i)
		onX := c.X == env.MinX || c.X == env.MaxX
		onY := c.Y == env.MinY || c.Y == env.MaxY
		if !onX || !onY {
			return false
		}
	}
	return true
}
