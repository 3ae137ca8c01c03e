package engine

import (
	"sort"

	"github.com/planarith/geom/pkg/geom"
)

// InteriorPoint returns a point guaranteed to lie in g's interior (or on its
// boundary for lower-dimensional g), unlike Centroid which can fall outside
// a concave shape. Polygonal geometry uses a horizontal scanline through the
// envelope's vertical midpoint, intersected against the shell/hole edges and
// widest gap picked, following JTS's InteriorPointArea technique. Lineal
// geometry picks the point at half the total length. Puntal geometry returns
// its first point.
func (e *engineImpl) InteriorPoint(g geom.Geometry) (*geom.Point, bool) {
	if g == nil || g.IsEmpty() {
		return nil, false
	}

	if p := polygonalInteriorPoint(e.factory, g); p != nil {
		return p, true
	}
	if p := linealInteriorPoint(e.factory, g); p != nil {
		return p, true
	}
	if p := puntalInteriorPoint(e.factory, g); p != nil {
		return p, true
	}
	return nil, false
}

func polygonalInteriorPoint(factory *geom.Factory, g geom.Geometry) *geom.Point {
	var best *geom.Point
	var bestWidth float64
	geom.Walk(g, func(child geom.Geometry) {
		poly, ok := child.(*geom.Polygon)
		if !ok || poly.IsEmpty() {
			return
		}
		env := poly.Envelope()
		y := (env.MinY + env.MaxY) / 2
		xs := scanlineCrossings(poly, y)
		for i := 0; i+1 < len(xs); i += 2 {
			width := xs[i+1] - xs[i]
			if width > bestWidth {
				bestWidth = width
				best = factory.CreatePoint(geom.NewXY((xs[i]+xs[i+1])/2, y))
			}
		}
	})
	return best
}

// scanlineCrossings returns the sorted x-coordinates where the horizontal
// line y crosses poly's shell and hole boundaries.
func scanlineCrossings(poly *geom.Polygon, y float64) []float64 {
	var xs []float64
	collect := func(r *geom.LinearRing) {
		seq := r.CoordinateSequence()
		n := seq.Size()
		for i := 0; i < n-1; i++ {
			p, q := seq.Get(i), seq.Get(i+1)
			if (p.Y <= y && q.Y > y) || (q.Y <= y && p.Y > y) {
				t := (y - p.Y) / (q.Y - p.Y)
				xs = append(xs, p.X+t*(q.X-p.X))
			}
		}
	}
	collect(poly.Shell())
	for _, h := range poly.Holes() {
		collect(h)
	}
	sort.Float64s(xs)
	return xs
}

func linealInteriorPoint(factory *geom.Factory, g geom.Geometry) *geom.Point {
	var segs [][2]geom.Coordinate
	var total float64
	geom.Walk(g, func(child geom.Geometry) {
		line, ok := child.(*geom.LineString)
		if !ok || line.IsEmpty() {
			return
		}
		seq := line.CoordinateSequence()
		for i := 0; i+1 < seq.Size(); i++ {
			segs = append(segs, [2]geom.Coordinate{seq.Get(i), seq.Get(i + 1)})
		}
		total += line.Length()
	})
	if len(segs) == 0 {
		return nil
	}
	target := total / 2
	var walked float64
	for _, s := range segs {
		p, q := s[0], s[1]
		segLen := p.Distance(q)
		if walked+segLen >= target {
			t := 0.0
			if segLen > 0 {
				t = (target - walked) / segLen
			}
			return factory.CreatePoint(geom.NewXY(p.X+t*(q.X-p.X), p.Y+t*(q.Y-p.Y)))
		}
		walked += segLen
	}
	return factory.CreatePoint(segs[len(segs)-1][1])
}

func puntalInteriorPoint(factory *geom.Factory, g geom.Geometry) *geom.Point {
	var found *geom.Point
	geom.Walk(g, func(child geom.Geometry) {
		if found != nil {
			return
		}
		if pt, ok := child.(*geom.Point); ok && !pt.IsEmpty() {
			found = factory.CreatePoint(pt.Coordinate())
		}
	})
	return found
}
