package graph

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestAddEdgeCreatesSymmetricEnds(t *testing.T) {
	g := New()
	label := Label{}
	*label.Slot(0) = Slot{Present: true, On: geom.LocationBoundary, Left: geom.LocationInterior, Right: geom.LocationExterior}
	id := g.AddEdge([]geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(10, 0)}, label)

	require.EqualValuesf(t, len(g.EdgeEnds), 2, "one forward, one backward edge-end")
	a, b := g.EdgeEnds[0], g.EdgeEnds[1]
	assert.EqualValuesf(t, a.Sym, EdgeEndID(1), "a's twin is b")
	assert.EqualValuesf(t, b.Sym, EdgeEndID(0), "b's twin is a")
	assert.EqualValuesf(t, g.Edges[id].Coords[0], geom.NewXY(0, 0), "edge retains original coords")
	assert.True(t, g.Validate() == nil)
}

func TestLocateInRectangle(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	shell, err := f.CreateLinearRing(seq)
	require.True(t, err == nil, "valid shell")
	poly := f.CreatePolygon(shell, nil)

	assert.EqualValuesf(t, Locate(geom.NewXY(5, 5), poly), geom.LocationInterior, "center is interior")
	assert.EqualValuesf(t, Locate(geom.NewXY(0, 5), poly), geom.LocationBoundary, "on edge")
	assert.EqualValuesf(t, Locate(geom.NewXY(50, 50), poly), geom.LocationExterior, "outside")
}
