package predicate

import (
	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/pkg/geom"
)

// Relate computes the DE-9IM matrix between a and b under precision model
// pm (spec §4.5, §6): nodes both inputs together into one topology graph,
// classifies every node into a (locA, locB) cell at dimension 0, and every
// edge into a (side-of-A, side-of-B) cell at dimension 1 (a purely linear
// edge) or 2 (an area edge's side contributes interior/exterior of that
// input). Each input point is located against the other input and marks
// its cell at dimension 0. The Exterior/Exterior cell always starts at
// dimension 2: in planar space there is always room outside any bounded
// geometry.
func Relate(a, b geom.Geometry, pm geom.PrecisionModel) (*IM, error) {
	im := newIM()
	im.setAtLeast(geom.LocationExterior, geom.LocationExterior, 2)
	inputs := [2]geom.Geometry{a, b}
	for i := range inputs {
		geom.Walk(inputs[i], func(child geom.Geometry) {
			p, ok := child.(*geom.Point)
			if !ok || p.IsEmpty() {
				return
			}
			loc := graph.Locate(p.Coordinate(), inputs[1-i])
			if i == 0 {
				im.setAtLeast(geom.LocationInterior, loc, 0)
			} else {
				im.setAtLeast(loc, geom.LocationInterior, 0)
			}
		})
	}

	var segStrings []*noding.SegmentString
	if a != nil && !a.IsEmpty() {
		segStrings = append(segStrings, graph.ExtractSegmentStrings(a, 0)...)
	}
	if b != nil && !b.IsEmpty() {
		segStrings = append(segStrings, graph.ExtractSegmentStrings(b, 1)...)
	}
	if len(segStrings) == 0 {
		return im, nil
	}

	noder := noding.NewIteratedNoder(noding.MCIndexNoder{})
	noded, err := noder.ComputeNodes(segStrings, pm)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}
	g := graph.BuildFromNodedStrings(noded)
	g.ComputeNodeLabels([2]geom.Geometry{a, b})
	g.PropagateEdgeLabels()

	for i := range g.Nodes {
		n := &g.Nodes[i]
		im.setAtLeast(n.Label.A.On, n.Label.B.On, 0)
	}

	for i := range g.Edges {
		e := &g.Edges[i]
		im.setAtLeast(e.Label.A.On, e.Label.B.On, 1)
		if e.Label.A.IsArea() && e.Label.B.IsArea() {
			im.setAtLeast(e.Label.A.Left, e.Label.B.Left, 2)
			im.setAtLeast(e.Label.A.Right, e.Label.B.Right, 2)
		} else if e.Label.A.IsArea() {
			im.setAtLeast(e.Label.A.Left, e.Label.B.On, 2)
			im.setAtLeast(e.Label.A.Right, e.Label.B.On, 2)
		} else if e.Label.B.IsArea() {
			im.setAtLeast(e.Label.A.On, e.Label.B.Left, 2)
			im.setAtLeast(e.Label.A.On, e.Label.B.Right, 2)
		}
	}

	return im, nil
}
