package noding

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func TestSimpleNoderSplitsAtCrossing(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	a := NewSegmentString([]geom.Coordinate{geom.NewXY(0, 5), geom.NewXY(10, 5)}, "a")
	b := NewSegmentString([]geom.Coordinate{geom.NewXY(5, 0), geom.NewXY(5, 10)}, "b")

	out := SimpleNoder{}.ComputeNodes([]*SegmentString{a, b}, pm)

	assert.EqualValuesf(t, len(out), 4, "each input split into two pieces at the crossing")
	for _, s := range out {
		assert.EqualValuesf(t, s.Size(), 2, "each noded substring is a plain 2-point segment")
	}
}

func TestSimpleNoderNoIntersectionPassesThrough(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	a := NewSegmentString([]geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(1, 1), geom.NewXY(2, 2)}, "a")
	out := SimpleNoder{}.ComputeNodes([]*SegmentString{a}, pm)
	assert.EqualValuesf(t, len(out), 2, "no intersection adds no node: one piece per original segment")
	assert.EqualValuesf(t, out[0].Size(), 2, "each piece is a plain 2-point segment")
}

func TestMCIndexNoderAgreesWithSimpleNoder(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	mk := func() []*SegmentString {
		return []*SegmentString{
			NewSegmentString([]geom.Coordinate{geom.NewXY(0, 5), geom.NewXY(10, 5)}, "a"),
			NewSegmentString([]geom.Coordinate{geom.NewXY(5, 0), geom.NewXY(5, 10)}, "b"),
		}
	}
	simple := SimpleNoder{}.ComputeNodes(mk(), pm)
	mc := MCIndexNoder{}.ComputeNodes(mk(), pm)
	assert.EqualValuesf(t, len(mc), len(simple), "MCIndexNoder produces the same piece count as SimpleNoder")
}

func TestIteratedNoderConverges(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	a := NewSegmentString([]geom.Coordinate{geom.NewXY(0, 5), geom.NewXY(10, 5)}, "a")
	b := NewSegmentString([]geom.Coordinate{geom.NewXY(5, 0), geom.NewXY(5, 10)}, "b")

	n := NewIteratedNoder(SimpleNoder{})
	out, err := n.ComputeNodes([]*SegmentString{a, b}, pm)
	assert.True(t, err == nil)
	assert.True(t, len(out) > 0)
}
