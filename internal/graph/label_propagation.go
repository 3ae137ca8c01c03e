package graph

import "github.com/planarith/geom/pkg/geom"

// ComputeNodeLabels fills in each node's aggregated label: for each input
// whose label is still absent at a node (no incident edge came from that
// input), locate the node against that input's original geometry (spec
// §4.5 step 2). Each edge with no slot for an input is located the same way,
// at the midpoint of its first segment. inputs[i] may be nil if input i is
// not present in this overlay (e.g. a unary operation).
func (g *Graph) ComputeNodeLabels(inputs [2]geom.Geometry) {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		for _, eeID := range n.EdgeEnds {
			n.Label.Merge(g.EdgeEnds[eeID].Label)
		}
		for input := 0; input < 2; input++ {
			slot := n.Label.Slot(input)
			if slot.Present || inputs[input] == nil {
				continue
			}
			loc := Locate(n.Coord, inputs[input])
			*slot = Slot{Present: true, On: loc}
		}
	}
	// An edge with no slot for an input lies wholly inside or outside it
	// (noding split it at every crossing). An edge of an area input also gets
	// that location on both sides when the other input is areal.
	for i := range g.Edges {
		e := &g.Edges[i]
		for input := 0; input < 2; input++ {
			if e.Label.Slot(input).Present || inputs[input] == nil {
				continue
			}
			a, b := e.Coords[0], e.Coords[1]
			loc := Locate(geom.NewXY((a.X+b.X)/2, (a.Y+b.Y)/2), inputs[input])
			s := Slot{Present: true, On: loc}
			if e.Label.Slot(1-input).IsArea() && inputs[input].Dimension() == geom.DimArea {
				s.Left, s.Right = loc, loc
			}
			*e.Label.Slot(input) = s
		}
	}
}

// PropagateEdgeLabels walks each node's edge-end star and fills any
// incident edge-end's still-missing slot from the node's aggregated label,
// keeping each edge-end's twin in sync (Left of one equals Right of the
// other, spec §4.5 step 3).
func (g *Graph) PropagateEdgeLabels() {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		for _, eeID := range n.EdgeEnds {
			ee := &g.EdgeEnds[eeID]
			for input := 0; input < 2; input++ {
				eeSlot := ee.Label.Slot(input)
				if eeSlot.Present {
					continue
				}
				nSlot := n.Label.Slot(input)
				if nSlot.Present {
					*eeSlot = Slot{Present: true, On: nSlot.On}
				}
			}
		}
	}
	// propagate into the owning Edge's label too, and mirror Left/Right
	// between sym pairs.
	for id := range g.EdgeEnds {
		ee := &g.EdgeEnds[id]
		edge := &g.Edges[ee.Edge]
		edge.Label.Merge(ee.Label)
	}
	for id := range g.EdgeEnds {
		ee := &g.EdgeEnds[id]
		edge := &g.Edges[ee.Edge]
		if ee.Forward {
			ee.Label.Merge(edge.Label)
		} else {
			ee.Label.Merge(edge.Label.Flip())
		}
	}
}
