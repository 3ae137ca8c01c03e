package engine

import "github.com/planarith/geom/pkg/geom"

// Centroid computes the area-weighted centroid of g's polygonal components
// if any exist, else the length-weighted centroid of its lineal components,
// else the simple average of its point components (JTS's three-tier
// fallback). Reports ok=false for an empty geometry.
func (e *engineImpl) Centroid(g geom.Geometry) (*geom.Point, bool) {
	var areaX, areaY, areaSum float64
	var lineX, lineY, lineSum float64
	var ptX, ptY float64
	var ptCount int

	geom.Walk(g, func(child geom.Geometry) {
		switch t := child.(type) {
		case *geom.Polygon:
			if t.IsEmpty() {
				return
			}
			cx, cy, a := ringCentroidComponent(t.Shell())
			areaX += cx
			areaY += cy
			areaSum += a
			for _, h := range t.Holes() {
				cx, cy, a := ringCentroidComponent(h)
				areaX -= cx
				areaY -= cy
				areaSum -= a
			}
		case *geom.LineString:
			if t.IsEmpty() {
				return
			}
			seq := t.CoordinateSequence()
			for i := 0; i < seq.Size()-1; i++ {
				p, q := seq.Get(i), seq.Get(i+1)
				segLen := p.Distance(q)
				lineX += (p.X + q.X) / 2 * segLen
				lineY += (p.Y + q.Y) / 2 * segLen
				lineSum += segLen
			}
		case *geom.Point:
			if t.IsEmpty() {
				return
			}
			ptX += t.X()
			ptY += t.Y()
			ptCount++
		}
	})

	switch {
	case areaSum != 0:
		return e.factory.CreatePoint(geom.NewXY(areaX/areaSum, areaY/areaSum)), true
	case lineSum != 0:
		return e.factory.CreatePoint(geom.NewXY(lineX/lineSum, lineY/lineSum)), true
	case ptCount > 0:
		return e.factory.CreatePoint(geom.NewXY(ptX/float64(ptCount), ptY/float64(ptCount))), true
	default:
		return nil, false
	}
}

// ringCentroidComponent returns the area-weighted numerator X, Y and the
// ring's area, all normalised to a counter-clockwise winding so callers can
// subtract holes directly whatever the ring's orientation.
func ringCentroidComponent(r *geom.LinearRing) (sumX, sumY, area float64) {
	seq := r.CoordinateSequence()
	n := seq.Size()
	for i := 0; i < n-1; i++ {
		p, q := seq.Get(i), seq.Get(i+1)
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		sumX += (p.X + q.X) * cross
		sumY += (p.Y + q.Y) * cross
	}
	area /= 2
	if area == 0 {
		return 0, 0, 0
	}
	if area < 0 {
		return -sumX / 6, -sumY / 6, -area
	}
	return sumX / 6, sumY / 6, area
}
