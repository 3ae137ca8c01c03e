package geom

// LineString owns N>=0 coordinates; N must not equal 1 (spec §3).
type LineString struct {
	base
	seq *CoordinateSequence
}

func newLineString(pm PrecisionModel, srid int, seq *CoordinateSequence) *LineString {
	return &LineString{base: base{pm: pm, srid: srid}, seq: seq}
}

func (l *LineString) GeometryType() string { return "LineString" }
func (l *LineString) Dimension() Dimension { return DimLine }
func (l *LineString) IsEmpty() bool        { return l.seq.Size() == 0 }

func (l *LineString) Envelope() Envelope {
	return l.cachedEnvelope(func() Envelope {
		return l.seq.ExpandEnvelope(NullEnvelope())
	})
}

func (l *LineString) NumGeometries() int       { return 1 }
func (l *LineString) GeometryN(n int) Geometry { return l }

// CoordinateSequence exposes the underlying coordinates.
func (l *LineString) CoordinateSequence() *CoordinateSequence { return l.seq }

// NumPoints returns the coordinate count.
func (l *LineString) NumPoints() int { return l.seq.Size() }

// PointN returns the n'th coordinate.
func (l *LineString) PointN(n int) Coordinate { return l.seq.Get(n) }

// Length returns the sum of segment lengths.
func (l *LineString) Length() float64 { return l.seq.Length() }

// IsClosed reports whether the first and last points coincide. False for an
// empty or single-point LineString.
func (l *LineString) IsClosed() bool { return l.seq.IsClosed() }

// IsRing reports whether the LineString is closed and simple enough to act
// as a ring: closed and at least 4 points (or empty).
func (l *LineString) IsRing() bool {
	if l.IsEmpty() {
		return true
	}
	return l.IsClosed() && l.NumPoints() >= 4
}

// LinearRing is a LineString additionally constrained to be empty or closed
// with at least 4 points (spec §3). It must not self-intersect when used as
// a Polygon shell/hole, a property checked by the validity checker rather
// than enforced at construction.
type LinearRing struct {
	LineString
}

func newLinearRing(pm PrecisionModel, srid int, seq *CoordinateSequence) (*LinearRing, error) {
	n := seq.Size()
	if n != 0 && n < 4 {
		return nil, &ErrInvalidRing{Reason: "a non-empty ring needs at least 4 points"}
	}
	if n != 0 && !seq.IsClosed() {
		return nil, &ErrInvalidRing{Reason: "ring is not closed (first != last)"}
	}
	return &LinearRing{LineString: LineString{base: base{pm: pm, srid: srid}, seq: seq}}, nil
}

func (r *LinearRing) GeometryType() string { return "LinearRing" }

// IsCCW reports whether the ring's coordinates wind counter-clockwise,
// using the shoelace signed-area test.
func (r *LinearRing) IsCCW() bool {
	return SignedArea(r.seq) > 0
}

// SignedArea computes the signed area of a closed ring via the
// shoelace formula; positive for CCW, negative for CW.
func SignedArea(seq *CoordinateSequence) float64 {
	n := seq.Size()
	if n < 4 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		p, q := seq.Get(i), seq.Get(i+1)
		sum += (p.X * q.Y) - (q.X * p.Y)
	}
	return sum / 2
}
