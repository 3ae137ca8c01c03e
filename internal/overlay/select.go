package overlay

import "github.com/planarith/geom/internal/graph"

// selectResultEdges applies spec §4.5's result-selection rule to every edge
// of g for operation op, using each edge's area label. Line-valued edges
// (dimensional collapses, or edges belonging to only a line input) are
// selected by their ON locations instead of Left/Right.
//
// An edge whose forward end and backward end are BOTH selected, or BOTH
// unselected, contributes nothing to the output (spec §4.5: "An edge
// marked in-result whose twin is also in-result cancels out"). Otherwise
// the edge is in the result, oriented in whichever direction was selected.
func selectResultEdges(g *graph.Graph, op Op) {
	for i := range g.Edges {
		edge := &g.Edges[i]
		if !edge.Label.A.IsArea() && !edge.Label.B.IsArea() {
			edge.InResult = selectLineEdge(edge, op)
			edge.ResultForward = true
			continue
		}
		fwdSel := inResult(op, edge.Label.A.Left, edge.Label.B.Left)
		bwdSel := inResult(op, edge.Label.A.Right, edge.Label.B.Right)
		edge.InResult = fwdSel != bwdSel
		edge.ResultForward = fwdSel
	}
}

// selectLineEdge decides whether a line-valued edge belongs in the result:
// present per the operation's rule applied to which input(s) contributed
// the edge (treating an absent input slot as "doesn't exist there").
func selectLineEdge(edge *graph.Edge, op Op) bool {
	switch op {
	case Intersection:
		return edge.Label.A.Present && edge.Label.B.Present
	case Union:
		return edge.Label.A.Present || edge.Label.B.Present
	case Difference:
		return edge.Label.A.Present && !edge.Label.B.Present
	case SymDifference:
		return edge.Label.A.Present != edge.Label.B.Present
	default:
		return false
	}
}
