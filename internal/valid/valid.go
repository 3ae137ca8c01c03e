// Package valid implements spec §4.7's validity checker: given a geometry,
// report either "valid" or the first specific failure found.
package valid

import (
	"github.com/dhconnelly/rtreego"
	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/pkg/geom"
)

// Validate runs every check of spec §4.7 against g under precision model pm,
// in order: coordinate scan, per-ring structure and self-intersection,
// hole-in-shell and nested-ring containment (the nested-hole test is
// rtreego-indexed, mirroring how the teacher's chart index queries bounding
// boxes; the other containment tests compare ring pairs directly), and a
// connected-interior pass. Returns nil if g is valid.
func Validate(g geom.Geometry, pm geom.PrecisionModel) error {
	if g == nil || g.IsEmpty() {
		return nil
	}
	if err := checkCoordinates(g); err != nil {
		return err
	}
	if err := checkRingStructure(g); err != nil {
		return err
	}
	if err := checkSelfIntersections(g, pm); err != nil {
		return err
	}

	switch t := g.(type) {
	case *geom.Polygon:
		return validatePolygon(t, pm)
	case geom.Collection:
		for i := 0; i < t.NumGeometries(); i++ {
			if err := Validate(t.GeometryN(i), pm); err != nil {
				return err
			}
		}
		if mp, ok := g.(*geom.MultiPolygon); ok {
			return checkShellsNonNested(mp)
		}
	}
	return nil
}

func checkCoordinates(g geom.Geometry) error {
	var firstErr error
	geom.Walk(g, func(child geom.Geometry) {
		if firstErr != nil {
			return
		}
		if pt, ok := child.(*geom.Point); ok && !pt.IsEmpty() {
			if err := pt.Coordinate().Validate(); err != nil {
				firstErr = err
			}
			return
		}
		if p, ok := child.(*geom.Polygon); ok && !p.IsEmpty() {
			for _, r := range append([]*geom.LinearRing{p.Shell()}, p.Holes()...) {
				seq := r.CoordinateSequence()
				for i := 0; i < seq.Size() && firstErr == nil; i++ {
					firstErr = seq.Get(i).Validate()
				}
			}
			return
		}
		seq := coordsOf(child)
		for i := 0; i < seq.Size(); i++ {
			if err := seq.Get(i).Validate(); err != nil {
				firstErr = err
				return
			}
		}
	})
	return firstErr
}

func coordsOf(g geom.Geometry) *geom.CoordinateSequence {
	switch t := g.(type) {
	case *geom.LineString:
		return t.CoordinateSequence()
	default:
		return geom.NewCoordinateSequence(geom.StrideXY, nil)
	}
}

func checkRingStructure(g geom.Geometry) error {
	var firstErr error
	geom.Walk(g, func(child geom.Geometry) {
		if firstErr != nil {
			return
		}
		ring, ok := child.(*geom.LinearRing)
		if !ok || ring.IsEmpty() {
			return
		}
		seq := ring.CoordinateSequence()
		if seq.Size() < 4 {
			firstErr = &ErrTooFewPoints{Count: seq.Size()}
			return
		}
		if !seq.IsClosed() {
			firstErr = &ErrRingNotClosed{}
		}
	})
	return firstErr
}

// checkSelfIntersections nodes each ring (and each non-ring LineString)
// against itself: an output substring count greater than the original
// segment count means an interior point of the string met another interior
// point, i.e. a self-intersection (spec §4.7 step 2).
func checkSelfIntersections(g geom.Geometry, pm geom.PrecisionModel) error {
	var firstErr error
	geom.Walk(g, func(child geom.Geometry) {
		if firstErr != nil {
			return
		}
		if p, ok := child.(*geom.Polygon); ok && !p.IsEmpty() {
			for _, r := range append([]*geom.LinearRing{p.Shell()}, p.Holes()...) {
				if firstErr == nil {
					firstErr = checkSelfIntersections(r, pm)
				}
			}
			return
		}
		l, ok := child.(*geom.LineString)
		if ring, isRing := child.(*geom.LinearRing); isRing {
			l, ok = &ring.LineString, true
		}
		if !ok || l.IsEmpty() {
			return
		}
		coords := append([]geom.Coordinate(nil), l.CoordinateSequence().All()...)
		ss := noding.NewSegmentString(coords, nil)
		out := noding.SimpleNoder{}.ComputeNodes([]*noding.SegmentString{ss}, pm)
		if len(out) > ss.NumSegments() {
			c := coords[0]
			if _, isRing := child.(*geom.LinearRing); isRing {
				firstErr = &ErrRingSelfIntersection{X: c.X, Y: c.Y}
			} else {
				firstErr = &ErrSelfIntersection{X: c.X, Y: c.Y}
			}
		}
	})
	return firstErr
}

func validatePolygon(p *geom.Polygon, pm geom.PrecisionModel) error {
	if p.IsEmpty() {
		return nil
	}
	shell := p.Shell()
	holes := p.Holes()

	for _, h := range holes {
		if !ringContainsRing(shell, h) {
			c := h.CoordinateSequence().Get(0)
			return &ErrHoleOutsideShell{X: c.X, Y: c.Y}
		}
	}

	if err := checkHolesNonNested(holes); err != nil {
		return err
	}
	if err := checkConnectedInterior(p, pm); err != nil {
		return err
	}
	return nil
}

type ringItem struct {
	ring *geom.LinearRing
	env  geom.Envelope
}

func (r *ringItem) Bounds() rtreego.Rect {
	w := r.env.MaxX - r.env.MinX
	h := r.env.MaxY - r.env.MinY
	if w <= 0 {
		w = 1e-9
	}
	if h <= 0 {
		h = 1e-9
	}
	rect, _ := rtreego.NewRect(rtreego.Point{r.env.MinX, r.env.MinY}, []float64{w, h})
	return rect
}

// checkHolesNonNested indexes hole envelopes in an rtreego tree (spec §4.7
// step 3's "quad-tree-indexed nested-ring tester", built here on rtreego the
// way the teacher indexes chart bounding boxes) and flags any pair whose
// envelopes overlap and where one ring's start vertex lies inside the
// other's ring.
func checkHolesNonNested(holes []*geom.LinearRing) error {
	if len(holes) < 2 {
		return nil
	}
	tree := rtreego.NewTree(2, 4, 8)
	items := make([]*ringItem, len(holes))
	for i, h := range holes {
		it := &ringItem{ring: h, env: h.Envelope()}
		items[i] = it
		tree.Insert(it)
	}
	for _, it := range items {
		for _, cand := range tree.SearchIntersect(it.Bounds()) {
			other := cand.(*ringItem)
			if other.ring == it.ring {
				continue
			}
			if ringContainsRing(it.ring, other.ring) || ringContainsRing(other.ring, it.ring) {
				c := other.ring.CoordinateSequence().Get(0)
				return &ErrNestedHoles{X: c.X, Y: c.Y}
			}
		}
	}
	return nil
}

// checkShellsNonNested requires MultiPolygon shells to be pairwise
// non-nested (spec §4.7 step 4; the refinement allowing a nested shell
// inside a container's hole is treated as out of scope for this checker, an
// open-question simplification recorded in the design notes).
func checkShellsNonNested(mp *geom.MultiPolygon) error {
	var shells []*geom.LinearRing
	for i := 0; i < mp.NumGeometries(); i++ {
		poly := mp.GeometryN(i).(*geom.Polygon)
		if !poly.IsEmpty() {
			shells = append(shells, poly.Shell())
		}
	}
	for i := range shells {
		for j := range shells {
			if i == j {
				continue
			}
			if ringContainsRing(shells[i], shells[j]) {
				c := shells[j].CoordinateSequence().Get(0)
				return &ErrNestedShells{X: c.X, Y: c.Y}
			}
		}
	}
	return nil
}

// checkConnectedInterior nodes the shell and holes together into one
// topology graph and flags a pinch point: any node where edges from more
// than one distinct ring meet, i.e. any node with more than two edge-ends
// (an approximation of spec §4.7 step 5's full connected-interior graph
// walk: a single point where a hole touches the shell is flagged too,
// although it leaves the interior connected).
func checkConnectedInterior(p *geom.Polygon, pm geom.PrecisionModel) error {
	strings := graph.ExtractSegmentStrings(p, 0)
	if len(strings) < 2 {
		return nil
	}
	noder := noding.MCIndexNoder{}
	noded := noder.ComputeNodes(strings, pm)
	g := graph.BuildFromNodedStrings(noded)
	for i := range g.Nodes {
		if len(g.Nodes[i].EdgeEnds) > 2 {
			c := g.Nodes[i].Coord
			return &ErrDisconnectedInterior{X: c.X, Y: c.Y}
		}
	}
	return nil
}

// ringContainsRing reports whether inner's first vertex lies inside outer
// via even-odd ray casting, with its envelope contained as a fast reject.
func ringContainsRing(outer, inner *geom.LinearRing) bool {
	if !outer.Envelope().Contains(inner.Envelope()) {
		return false
	}
	return pointInRing(inner.CoordinateSequence().Get(0), outer)
}

func pointInRing(p geom.Coordinate, ring *geom.LinearRing) bool {
	seq := ring.CoordinateSequence()
	n := seq.Size()
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := seq.Get(i), seq.Get(j)
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
