package overlay

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func square(f *geom.Factory, x0, y0, x1, y1 float64) *geom.Polygon {
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(x0, y0), geom.NewXY(x1, y0), geom.NewXY(x1, y1), geom.NewXY(x0, y1), geom.NewXY(x0, y0),
	})
	shell, _ := f.CreateLinearRing(seq)
	return f.CreatePolygon(shell, nil)
}

func TestComputeIntersectionOfOverlappingSquaresHasArea25(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := square(f, 0, 0, 10, 10)
	b := square(f, 5, 5, 15, 15)

	result, err := Compute(f, a, b, Intersection, pm)
	require.Truef(t, err == nil, "intersection of overlapping squares should not error: %v", err)

	poly, ok := result.(*geom.Polygon)
	require.Truef(t, ok, "result should be a single polygon, got %T", result)
	assert.EqualValuesf(t, poly.Area(), 25, "overlap of [0,10]x[0,10] and [5,15]x[5,15] is the 5x5 square")
}

func TestComputeUnionOfOverlappingSquaresHasArea175(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := square(f, 0, 0, 10, 10)
	b := square(f, 5, 5, 15, 15)

	result, err := Compute(f, a, b, Union, pm)
	require.Truef(t, err == nil, "union of overlapping squares should not error: %v", err)

	poly, ok := result.(*geom.Polygon)
	require.Truef(t, ok, "union of two overlapping squares is one polygon, got %T", result)
	assert.EqualValuesf(t, poly.Area(), 175, "100 + 100 - 25 overlap = 175")
}

func TestComputeDifferenceOfDisjointSquaresReturnsA(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	a := square(f, 0, 0, 10, 10)
	b := square(f, 20, 20, 30, 30)

	result, err := Compute(f, a, b, Difference, pm)
	require.Truef(t, err == nil, "difference of disjoint squares should not error: %v", err)

	poly, ok := result.(*geom.Polygon)
	require.Truef(t, ok, "result should be a single polygon, got %T", result)
	assert.EqualValuesf(t, poly.Area(), 100, "disjoint B subtracts nothing from A")
}
