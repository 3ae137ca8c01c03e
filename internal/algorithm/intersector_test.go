package algorithm

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func TestOrientationIndex(t *testing.T) {
	p := geom.NewXY(0, 0)
	q := geom.NewXY(10, 0)
	left := geom.NewXY(5, 5)
	right := geom.NewXY(5, -5)
	on := geom.NewXY(5, 0)

	assert.EqualValuesf(t, OrientationIndex(p, q, left), CounterClockwise, "left turn")
	assert.EqualValuesf(t, OrientationIndex(p, q, right), Clockwise, "right turn")
	assert.EqualValuesf(t, OrientationIndex(p, q, on), Collinear, "collinear")
}

func TestComputeIntersectionCrossing(t *testing.T) {
	// Scenario 2 from spec §8.
	pm := geom.NewFloatingPrecisionModel()
	res := ComputeIntersection(geom.NewXY(0, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(10, 0), pm)
	assert.EqualValuesf(t, res.NumPoints, 1, "one intersection point")
	assert.True(t, res.Proper)
	assert.EqualValuesf(t, res.Points[0], geom.NewXY(5, 5), "intersection at (5,5)")
}

func TestComputeIntersectionEndpointTouchVerbatim(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	q1 := geom.NewXY(5, 0)
	res := ComputeIntersection(geom.NewXY(0, 0), geom.NewXY(10, 0), q1, geom.NewXY(5, 5), pm)
	assert.EqualValuesf(t, res.NumPoints, 1, "endpoint touch")
	assert.EqualValuesf(t, res.Points[0], q1, "point returned verbatim, not recomputed")
}

func TestComputeIntersectionCollinearOverlap(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	res := ComputeIntersection(
		geom.NewXY(0, 0), geom.NewXY(10, 0),
		geom.NewXY(5, 0), geom.NewXY(15, 0), pm)
	assert.EqualValuesf(t, res.NumPoints, 2, "collinear overlap yields two points")
	assert.True(t, res.IsCollinear())
}

func TestComputeIntersectionDisjoint(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	res := ComputeIntersection(
		geom.NewXY(0, 0), geom.NewXY(1, 0),
		geom.NewXY(5, 5), geom.NewXY(6, 6), pm)
	assert.False(t, res.HasIntersection())
}
