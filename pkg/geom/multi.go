package geom

// MultiPoint is zero or more Points; components are individually valid with
// no cross-dependencies (spec §3).
type MultiPoint struct {
	base
	points []*Point
}

func newMultiPoint(pm PrecisionModel, srid int, pts []*Point) *MultiPoint {
	return &MultiPoint{base: base{pm: pm, srid: srid}, points: pts}
}

func (m *MultiPoint) GeometryType() string { return "MultiPoint" }
func (m *MultiPoint) Dimension() Dimension { return DimPoint }
func (m *MultiPoint) IsEmpty() bool        { return len(m.points) == 0 }
func (m *MultiPoint) NumGeometries() int   { return len(m.points) }
func (m *MultiPoint) GeometryN(n int) Geometry { return m.points[n] }

func (m *MultiPoint) Geometries() []Geometry {
	out := make([]Geometry, len(m.points))
	for i, p := range m.points {
		out[i] = p
	}
	return out
}

func (m *MultiPoint) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NullEnvelope()
		for _, p := range m.points {
			env = env.ExpandToInclude(p.Envelope())
		}
		return env
	})
}

// MultiLineString is zero or more LineStrings.
type MultiLineString struct {
	base
	lines []*LineString
}

func newMultiLineString(pm PrecisionModel, srid int, lines []*LineString) *MultiLineString {
	return &MultiLineString{base: base{pm: pm, srid: srid}, lines: lines}
}

func (m *MultiLineString) GeometryType() string { return "MultiLineString" }
func (m *MultiLineString) Dimension() Dimension { return DimLine }
func (m *MultiLineString) IsEmpty() bool        { return len(m.lines) == 0 }
func (m *MultiLineString) NumGeometries() int   { return len(m.lines) }
func (m *MultiLineString) GeometryN(n int) Geometry { return m.lines[n] }

func (m *MultiLineString) Geometries() []Geometry {
	out := make([]Geometry, len(m.lines))
	for i, l := range m.lines {
		out[i] = l
	}
	return out
}

func (m *MultiLineString) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NullEnvelope()
		for _, l := range m.lines {
			env = env.ExpandToInclude(l.Envelope())
		}
		return env
	})
}

func (m *MultiLineString) Length() float64 {
	total := 0.0
	for _, l := range m.lines {
		total += l.Length()
	}
	return total
}

// IsClosed reports whether every component line is closed. False if empty.
func (m *MultiLineString) IsClosed() bool {
	if len(m.lines) == 0 {
		return false
	}
	for _, l := range m.lines {
		if !l.IsClosed() {
			return false
		}
	}
	return true
}

// MultiPolygon is zero or more Polygons.
type MultiPolygon struct {
	base
	polys []*Polygon
}

func newMultiPolygon(pm PrecisionModel, srid int, polys []*Polygon) *MultiPolygon {
	return &MultiPolygon{base: base{pm: pm, srid: srid}, polys: polys}
}

func (m *MultiPolygon) GeometryType() string { return "MultiPolygon" }
func (m *MultiPolygon) Dimension() Dimension { return DimArea }
func (m *MultiPolygon) IsEmpty() bool        { return len(m.polys) == 0 }
func (m *MultiPolygon) NumGeometries() int   { return len(m.polys) }
func (m *MultiPolygon) GeometryN(n int) Geometry { return m.polys[n] }

func (m *MultiPolygon) Geometries() []Geometry {
	out := make([]Geometry, len(m.polys))
	for i, p := range m.polys {
		out[i] = p
	}
	return out
}

func (m *MultiPolygon) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NullEnvelope()
		for _, p := range m.polys {
			env = env.ExpandToInclude(p.Envelope())
		}
		return env
	})
}

func (m *MultiPolygon) Area() float64 {
	total := 0.0
	for _, p := range m.polys {
		total += p.Area()
	}
	return total
}

// Polygons returns the component polygons.
func (m *MultiPolygon) Polygons() []*Polygon { return m.polys }

// GeometryCollection is zero or more heterogeneous children, with no
// constraints beyond child validity (spec §3).
type GeometryCollection struct {
	base
	children []Geometry
}

func newGeometryCollection(pm PrecisionModel, srid int, children []Geometry) *GeometryCollection {
	return &GeometryCollection{base: base{pm: pm, srid: srid}, children: children}
}

func (g *GeometryCollection) GeometryType() string { return "GeometryCollection" }

func (g *GeometryCollection) Dimension() Dimension {
	best := DimFalse
	for _, c := range g.children {
		if c.Dimension() > best {
			best = c.Dimension()
		}
	}
	return best
}

func (g *GeometryCollection) IsEmpty() bool {
	for _, c := range g.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *GeometryCollection) NumGeometries() int       { return len(g.children) }
func (g *GeometryCollection) GeometryN(n int) Geometry { return g.children[n] }
func (g *GeometryCollection) Geometries() []Geometry   { return g.children }

func (g *GeometryCollection) Envelope() Envelope {
	return g.cachedEnvelope(func() Envelope {
		env := NullEnvelope()
		for _, c := range g.children {
			env = env.ExpandToInclude(c.Envelope())
		}
		return env
	})
}
