package geom

import "math"

// Point owns zero or one coordinate. A Point is never a ring and its
// boundary is always empty (spec §3).
type Point struct {
	base
	coord Coordinate
	empty bool
}

func newPoint(pm PrecisionModel, srid int, c Coordinate, empty bool) *Point {
	if empty {
		c = NewXY(math.NaN(), math.NaN())
	}
	return &Point{base: base{pm: pm, srid: srid}, coord: c, empty: empty}
}

func (p *Point) GeometryType() string { return "Point" }
func (p *Point) Dimension() Dimension { return DimPoint }
func (p *Point) IsEmpty() bool        { return p.empty }

func (p *Point) Envelope() Envelope {
	return p.cachedEnvelope(func() Envelope {
		if p.empty {
			return NullEnvelope()
		}
		return NewEnvelope(p.coord.X, p.coord.X, p.coord.Y, p.coord.Y)
	})
}

func (p *Point) NumGeometries() int       { return 1 }
func (p *Point) GeometryN(n int) Geometry { return p }

// Coordinate returns the point's coordinate. Undefined if IsEmpty.
func (p *Point) Coordinate() Coordinate { return p.coord }

// X returns the X ordinate (NaN if empty).
func (p *Point) X() float64 { return p.coord.X }

// Y returns the Y ordinate (NaN if empty).
func (p *Point) Y() float64 { return p.coord.Y }
