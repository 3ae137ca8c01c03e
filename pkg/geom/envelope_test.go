package geom

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestEnvelopeNull(t *testing.T) {
	e := NullEnvelope()
	assert.True(t, e.IsNull())
	assert.True(t, e.Equals(NullEnvelope()))
	assert.False(t, e.Intersects(NewEnvelope(0, 1, 0, 1)))
}

func TestEnvelopeIntersectsClosedIntervals(t *testing.T) {
	tests := map[string]struct {
		a, b Envelope
		want bool
	}{
		"touching edges intersect": {
			a: NewEnvelope(0, 10, 0, 10), b: NewEnvelope(10, 20, 0, 10), want: true,
		},
		"disjoint": {
			a: NewEnvelope(0, 10, 0, 10), b: NewEnvelope(11, 20, 0, 10), want: false,
		},
		"nested": {
			a: NewEnvelope(0, 10, 0, 10), b: NewEnvelope(2, 3, 2, 3), want: true,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.EqualValuesf(t, test.a.Intersects(test.b), test.want, "Intersects(%v,%v)", test.a, test.b)
		})
	}
}

func TestEnvelopeCompareTotalOrder(t *testing.T) {
	null := NullEnvelope()
	bounded := NewEnvelope(0, 1, 0, 1)
	assert.EqualValuesf(t, null.Compare(bounded), -1, "null < bounded")
	assert.EqualValuesf(t, bounded.Compare(null), 1, "bounded > null")
	assert.EqualValuesf(t, null.Compare(null), 0, "null == null")
}

func TestEnvelopeExpandToIncludeXY(t *testing.T) {
	e := NullEnvelope().ExpandToIncludeXY(5, 5)
	assert.True(t, e.ContainsXY(5, 5))
	e = e.ExpandToIncludeXY(10, -2)
	assert.EqualValuesf(t, e.MinX, 5.0, "minX")
	assert.EqualValuesf(t, e.MaxX, 10.0, "maxX")
	assert.EqualValuesf(t, e.MinY, -2.0, "minY")
	assert.EqualValuesf(t, e.MaxY, 5.0, "maxY")
}

func TestCoordinateSequenceCloseRing(t *testing.T) {
	seq := NewCoordinateSequence(StrideXY, []Coordinate{NewXY(0, 0), NewXY(1, 0), NewXY(1, 1)})
	seq.CloseRing()
	assert.True(t, seq.IsClosed())
	assert.EqualValuesf(t, seq.Size(), 4, "size after close")

	again := seq.Clone()
	again.CloseRing()
	assert.EqualValuesf(t, again.Size(), 4, "no-op on already-closed ring")
}
