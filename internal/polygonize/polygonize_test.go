package polygonize

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func lineOf(f *geom.Factory, coords ...geom.Coordinate) *geom.LineString {
	return f.CreateLineString(geom.NewCoordinateSequence(geom.StrideXY, coords))
}

func TestPolygonizesASingleSquareRing(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := lineOf(f, geom.NewXY(0, 0), geom.NewXY(10, 0))
	b := lineOf(f, geom.NewXY(10, 0), geom.NewXY(10, 10))
	c := lineOf(f, geom.NewXY(10, 10), geom.NewXY(0, 10))
	d := lineOf(f, geom.NewXY(0, 10), geom.NewXY(0, 0))

	p := NewPolygonizer()
	p.Add(a, b, c, d)
	polys, err := p.Polygons(f, pm)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, len(polys) == 1, "expected one polygon, got %d", len(polys))
	assert.Truef(t, polys[0].Area() > 99 && polys[0].Area() < 101, "expected area ~100, got %v", polys[0].Area())
}

func TestDanglingEdgeDoesNotProduceAPolygon(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	dangle := lineOf(f, geom.NewXY(0, 0), geom.NewXY(5, 5))

	p := NewPolygonizer()
	p.Add(dangle)
	polys, err := p.Polygons(f, pm)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, len(polys) == 0, "a single dangling line should not form a polygon, got %d", len(polys))
}
