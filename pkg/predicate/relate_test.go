package predicate

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func rectangle(f *geom.Factory, x0, y0, x1, y1 float64) *geom.Polygon {
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(x0, y0), geom.NewXY(x1, y0), geom.NewXY(x1, y1), geom.NewXY(x0, y1), geom.NewXY(x0, y0),
	})
	shell, _ := f.CreateLinearRing(seq)
	return f.CreatePolygon(shell, nil)
}

func line(f *geom.Factory, coords ...geom.Coordinate) *geom.LineString {
	return f.CreateLineString(geom.NewCoordinateSequence(geom.StrideXY, coords))
}

func TestDisjointRectangles(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := rectangle(f, 0, 0, 10, 10)
	b := rectangle(f, 20, 20, 30, 30)

	im, err := Relate(a, b, pm)
	require.Truef(t, err == nil, "relate should not error: %v", err)
	assert.Truef(t, Disjoint(im), "non-overlapping rectangles are disjoint")
	assert.Truef(t, !Intersects(im), "disjoint implies not intersecting")
}

func TestOverlappingRectanglesIntersectAndOverlap(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := rectangle(f, 0, 0, 10, 10)
	b := rectangle(f, 5, 5, 15, 15)

	im, err := Relate(a, b, pm)
	require.Truef(t, err == nil, "relate should not error: %v", err)
	assert.Truef(t, Intersects(im), "partially overlapping rectangles intersect")
	assert.Truef(t, Overlaps(a, b, im), "neither rectangle contains the other")
	assert.Truef(t, !Contains(im), "neither rectangle contains the other")
}

func TestContainedRectangle(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	outer := rectangle(f, 0, 0, 10, 10)
	inner := rectangle(f, 2, 2, 4, 4)

	im, err := Relate(outer, inner, pm)
	require.Truef(t, err == nil, "relate should not error: %v", err)
	assert.Truef(t, Contains(im), "inner rectangle lies fully within outer")
	assert.Truef(t, Intersects(im), "containment implies intersection")
}

func TestCrossingLines(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := line(f, geom.NewXY(0, 5), geom.NewXY(10, 5))
	b := line(f, geom.NewXY(5, 0), geom.NewXY(5, 10))

	im, err := Relate(a, b, pm)
	require.Truef(t, err == nil, "relate should not error: %v", err)
	assert.Truef(t, Crosses(a, b, im), "perpendicular crossing lines cross")
}

func TestRectangleIntersectsShortCircuit(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	rect := rectangle(f, 0, 0, 10, 10)
	l := line(f, geom.NewXY(-5, 5), geom.NewXY(15, 5))

	result, applicable := RectangleIntersects(rect, l)
	require.Truef(t, applicable, "rect is a true axis-aligned rectangle")
	assert.Truef(t, result, "the clipping line crosses the rectangle's envelope")
}
