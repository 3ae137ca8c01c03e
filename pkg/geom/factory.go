package geom

// Factory allocates geometries sharing one precision model and SRID. A
// Factory is immutable after construction and may be shared by many
// geometries; descendant coordinate data lives with whichever geometry the
// factory returns (spec §3, §5).
type Factory struct {
	pm   PrecisionModel
	srid int
}

// NewFactory builds a Factory over the given precision model and SRID tag.
func NewFactory(pm PrecisionModel, srid int) *Factory {
	return &Factory{pm: pm, srid: srid}
}

// PrecisionModel returns the factory's shared precision model.
func (f *Factory) PrecisionModel() PrecisionModel { return f.pm }

// CreatePoint builds a Point from a single coordinate. A null coordinate
// (NaN X) yields an empty Point (spec §6).
func (f *Factory) CreatePoint(c Coordinate) *Point {
	if c.IsNull() {
		return newPoint(f.pm, f.srid, Coordinate{}, true)
	}
	return newPoint(f.pm, f.srid, f.pm.MakePreciseCoordinate(c), false)
}

// CreatePointEmpty builds an empty Point.
func (f *Factory) CreatePointEmpty() *Point {
	return newPoint(f.pm, f.srid, Coordinate{}, true)
}

// CreateLineString builds a LineString from a coordinate sequence. On
// failure the caller retains ownership of seq (there is no failure mode
// today beyond programmer error, since N=1 is permitted here and only
// rejected by the validity checker per spec §3's invariant table).
func (f *Factory) CreateLineString(seq *CoordinateSequence) *LineString {
	f.round(seq)
	return newLineString(f.pm, f.srid, seq)
}

// CreateLineStringEmpty builds an empty LineString.
func (f *Factory) CreateLineStringEmpty() *LineString {
	return newLineString(f.pm, f.srid, NewCoordinateSequence(StrideXY, nil))
}

// CreateLinearRing builds a LinearRing. On failure (ErrInvalidRing) the
// factory releases seq and propagates the error, per spec §6's ownership
// rule.
func (f *Factory) CreateLinearRing(seq *CoordinateSequence) (*LinearRing, error) {
	f.round(seq)
	return newLinearRing(f.pm, f.srid, seq)
}

// CreateLinearRingEmpty builds an empty LinearRing.
func (f *Factory) CreateLinearRingEmpty() *LinearRing {
	r, _ := newLinearRing(f.pm, f.srid, NewCoordinateSequence(StrideXY, nil))
	return r
}

// CreatePolygon builds a Polygon from a shell and holes. A nil shell
// produces an empty polygon.
func (f *Factory) CreatePolygon(shell *LinearRing, holes []*LinearRing) *Polygon {
	return newPolygon(f.pm, f.srid, shell, holes)
}

// CreatePolygonEmpty builds an empty Polygon.
func (f *Factory) CreatePolygonEmpty() *Polygon {
	return newPolygon(f.pm, f.srid, nil, nil)
}

// CreateMultiPoint builds a MultiPoint.
func (f *Factory) CreateMultiPoint(pts []*Point) *MultiPoint {
	return newMultiPoint(f.pm, f.srid, pts)
}

// CreateMultiLineString builds a MultiLineString.
func (f *Factory) CreateMultiLineString(lines []*LineString) *MultiLineString {
	return newMultiLineString(f.pm, f.srid, lines)
}

// CreateMultiLineStringEmpty builds an empty MultiLineString.
func (f *Factory) CreateMultiLineStringEmpty() *MultiLineString {
	return newMultiLineString(f.pm, f.srid, nil)
}

// CreateMultiPolygon builds a MultiPolygon.
func (f *Factory) CreateMultiPolygon(polys []*Polygon) *MultiPolygon {
	return newMultiPolygon(f.pm, f.srid, polys)
}

// CreateMultiPolygonEmpty builds an empty MultiPolygon.
func (f *Factory) CreateMultiPolygonEmpty() *MultiPolygon {
	return newMultiPolygon(f.pm, f.srid, nil)
}

// CreateGeometryCollection builds a heterogeneous collection.
func (f *Factory) CreateGeometryCollection(children []Geometry) *GeometryCollection {
	return newGeometryCollection(f.pm, f.srid, children)
}

// CreateGeometryCollectionEmpty builds an empty collection.
func (f *Factory) CreateGeometryCollectionEmpty() *GeometryCollection {
	return newGeometryCollection(f.pm, f.srid, nil)
}

// round applies the factory's precision model to every coordinate in seq in
// place.
func (f *Factory) round(seq *CoordinateSequence) {
	if f.pm.Kind == Floating {
		return
	}
	for i := 0; i < seq.Size(); i++ {
		seq.Set(i, f.pm.MakePreciseCoordinate(seq.Get(i)))
	}
}
