package geom

import "sort"

// ConvexHull computes the smallest convex polygon enclosing g's vertices
// (supplementing spec.md's distilled scope with the hull builder its
// original GEOS source carries). Degenerate inputs collapse to the lowest
// dimension that still encloses them: zero vertices yield an empty
// GeometryCollection, one distinct vertex yields a Point, two yield a
// LineString, three or more a Polygon.
func (f *Factory) ConvexHull(g Geometry) Geometry {
	pts := uniqueVertices(g)
	switch len(pts) {
	case 0:
		return f.CreateGeometryCollectionEmpty()
	case 1:
		return f.CreatePoint(pts[0])
	case 2:
		seq := NewCoordinateSequence(StrideXY, pts)
		return f.CreateLineString(seq)
	}

	hull := grahamScan(pts)
	if len(hull) < 3 {
		seq := NewCoordinateSequence(StrideXY, hull)
		return f.CreateLineString(seq)
	}
	hull = append(hull, hull[0])
	seq := NewCoordinateSequence(StrideXY, hull)
	shell, err := f.CreateLinearRing(seq)
	if err != nil {
		return f.CreateGeometryCollectionEmpty()
	}
	return f.CreatePolygon(shell, nil)
}

func uniqueVertices(g Geometry) []Coordinate {
	seen := make(map[Coordinate]bool)
	var out []Coordinate
	Walk(g, func(child Geometry) {
		switch t := child.(type) {
		case *Point:
			if !t.IsEmpty() {
				addUnique(&out, seen, t.Coordinate())
			}
		case *LineString:
			seq := t.CoordinateSequence()
			for i := 0; i < seq.Size(); i++ {
				addUnique(&out, seen, seq.Get(i))
			}
		case *Polygon:
			if !t.IsEmpty() {
				seq := t.Shell().CoordinateSequence()
				for i := 0; i < seq.Size(); i++ {
					addUnique(&out, seen, seq.Get(i))
				}
			}
		}
	})
	return out
}

func addUnique(out *[]Coordinate, seen map[Coordinate]bool, c Coordinate) {
	key := Coordinate{X: c.X, Y: c.Y}
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, key)
}

// grahamScan returns the convex hull of pts in counter-clockwise order,
// starting from the lowest-then-leftmost point (spec GLOSSARY's
// orientation predicate, reused for the turn test).
func grahamScan(pts []Coordinate) []Coordinate {
	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}
	sorted := append([]Coordinate(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i] == pivot {
			return true
		}
		if sorted[j] == pivot {
			return false
		}
		oi := polarAngleLess(pivot, sorted[i], sorted[j])
		return oi
	})

	stack := make([]Coordinate, 0, len(sorted))
	for _, p := range sorted {
		for len(stack) >= 2 && turn(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

func polarAngleLess(pivot, a, b Coordinate) bool {
	o := turn(pivot, a, b)
	if o != 0 {
		return o > 0
	}
	// collinear with pivot: closer point first, it'll be popped if redundant
	return pivot.Distance(a) < pivot.Distance(b)
}

// turn returns >0 for a left (CCW) turn at b going a->b->c, <0 for right, 0
// for collinear.
func turn(a, b, c Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
