package linemerge

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func lineOf(f *geom.Factory, coords ...geom.Coordinate) *geom.LineString {
	return f.CreateLineString(geom.NewCoordinateSequence(geom.StrideXY, coords))
}

func TestMergesTwoLinesSharingAnEndpoint(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel(), 0)
	a := lineOf(f, geom.NewXY(0, 0), geom.NewXY(5, 0))
	b := lineOf(f, geom.NewXY(5, 0), geom.NewXY(10, 0))

	m := NewLineMerger()
	m.Add(a, b)
	merged := m.MergedLineStrings(f)

	assert.Truef(t, len(merged) == 1, "expected one merged line, got %d", len(merged))
	assert.Truef(t, merged[0].NumPoints() == 3, "expected 3 points after merging, got %d", merged[0].NumPoints())
}

func TestDoesNotMergeThroughAThreeWayJunction(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel(), 0)
	a := lineOf(f, geom.NewXY(0, 0), geom.NewXY(5, 0))
	b := lineOf(f, geom.NewXY(5, 0), geom.NewXY(10, 0))
	c := lineOf(f, geom.NewXY(5, 0), geom.NewXY(5, 10))

	m := NewLineMerger()
	m.Add(a, b, c)
	merged := m.MergedLineStrings(f)

	assert.Truef(t, len(merged) == 3, "a three-way junction should stop merging, got %d lines", len(merged))
}

func TestMergesIsolatedClosedLoop(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel(), 0)
	a := lineOf(f, geom.NewXY(0, 0), geom.NewXY(10, 0))
	b := lineOf(f, geom.NewXY(10, 0), geom.NewXY(10, 10))
	c := lineOf(f, geom.NewXY(10, 10), geom.NewXY(0, 10))
	d := lineOf(f, geom.NewXY(0, 10), geom.NewXY(0, 0))

	m := NewLineMerger()
	m.Add(a, b, c, d)
	merged := m.MergedLineStrings(f)

	assert.Truef(t, len(merged) == 1, "expected the loop to merge into one closed line, got %d", len(merged))
	assert.Truef(t, merged[0].IsClosed(), "merged loop should be closed")
}
