package engine

import "github.com/planarith/geom/pkg/geom"

// boundary computes the topological boundary of g (spec §6's `boundary`
// operation): the endpoints of an open line, a polygon's rings, the mod-2
// combination of a MultiLineString's component endpoints, or the union of a
// MultiPolygon's component boundaries. Points have no boundary.
// GeometryCollection has no defined boundary (spec §7 UnsupportedGeometry).
func (e *engineImpl) Boundary(g geom.Geometry) (geom.Geometry, error) {
	if g == nil || g.IsEmpty() {
		return e.factory.CreateGeometryCollectionEmpty(), nil
	}
	switch t := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return e.factory.CreateGeometryCollectionEmpty(), nil
	case *geom.LinearRing:
		return e.factory.CreateGeometryCollectionEmpty(), nil
	case *geom.LineString:
		return lineBoundary(e.factory, t), nil
	case *geom.Polygon:
		return t.Boundary(e.factory), nil
	case *geom.MultiLineString:
		return multiLineBoundary(e.factory, t), nil
	case *geom.MultiPolygon:
		var lines []*geom.LineString
		for _, p := range t.Polygons() {
			b := p.Boundary(e.factory)
			if ml, ok := b.(*geom.MultiLineString); ok {
				for i := 0; i < ml.NumGeometries(); i++ {
					lines = append(lines, ml.GeometryN(i).(*geom.LineString))
				}
			}
		}
		return e.factory.CreateMultiLineString(lines), nil
	default:
		err := &geom.ErrUnsupportedGeometry{Op: "Boundary", Type: g.GeometryType()}
		notify(e.sink, err)
		return nil, err
	}
}

// lineBoundary returns the two endpoints of an open line, or an empty
// collection for a closed one (spec §3: a ring's boundary is empty).
func lineBoundary(factory *geom.Factory, l *geom.LineString) geom.Geometry {
	if l.IsClosed() {
		return factory.CreateMultiPoint(nil)
	}
	first, last := l.PointN(0), l.PointN(l.NumPoints()-1)
	return factory.CreateMultiPoint([]*geom.Point{factory.CreatePoint(first), factory.CreatePoint(last)})
}

// multiLineBoundary applies the mod-2 rule: an endpoint shared by an even
// number of component lines is interior, by an odd number is boundary.
func multiLineBoundary(factory *geom.Factory, m *geom.MultiLineString) geom.Geometry {
	type key struct{ x, y float64 }
	counts := make(map[key]int)
	coords := make(map[key]geom.Coordinate)
	for i := 0; i < m.NumGeometries(); i++ {
		l := m.GeometryN(i).(*geom.LineString)
		if l.IsEmpty() || l.IsClosed() {
			continue
		}
		for _, c := range []geom.Coordinate{l.PointN(0), l.PointN(l.NumPoints() - 1)} {
			k := key{c.X, c.Y}
			counts[k]++
			coords[k] = c
		}
	}
	var pts []*geom.Point
	for k, n := range counts {
		if n%2 == 1 {
			pts = append(pts, factory.CreatePoint(coords[k]))
		}
	}
	return factory.CreateMultiPoint(pts)
}
