package graph

import (
	"fmt"
	"math"
	"sort"

	"github.com/planarith/geom/pkg/geom"
)

// NodeID, EdgeID, and EdgeEndID are arena indices (spec §9).
type (
	NodeID    int
	EdgeID    int
	EdgeEndID int
)

// Node is a 2D coordinate plus the set of edge-ends incident to it and an
// aggregated label (spec §3/§4.5).
type Node struct {
	Coord    geom.Coordinate
	EdgeEnds []EdgeEndID // sorted by angle once the star is built
	Label    Label
}

// Edge is an ordered coordinate sequence (its geometric shape) plus a
// label. DepthDelta is a per-input depth slot; nothing in this module writes
// it, so it stays zero, and duplicate edges are merged by label only.
type Edge struct {
	Coords     []geom.Coordinate
	Label      Label
	DepthDelta [2]int // per input, signed depth delta left-to-right
	InResult   bool
	ResultForward bool // when InResult, whether Coords (vs. reversed) is the result-facing direction
	Visited    bool
}

// FirstCoord/LastCoord return the edge's endpoints.
func (e *Edge) FirstCoord() geom.Coordinate { return e.Coords[0] }
func (e *Edge) LastCoord() geom.Coordinate  { return e.Coords[len(e.Coords)-1] }

// EdgeEnd is one directed projection of an Edge from a Node: it carries the
// direction of the edge's first segment away from the node, the node's
// quadrant/angle for sorting, and its twin's ID (spec §3/§4.5).
type EdgeEnd struct {
	Edge    EdgeID
	Node    NodeID
	Forward bool // true: this end starts at Edge.Coords[0]; false: starts at the last coord, walking backward
	Dx, Dy  float64
	Angle   float64
	Sym     EdgeEndID
	Label   Label // this end's view of the edge's label (Left/Right as seen walking away from Node)
}

// Graph is the arena holding every node, edge, and edge-end built while
// processing one or more input geometries (spec §4.5).
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	EdgeEnds []EdgeEnd

	nodeIndex map[coordKey]NodeID
}

type coordKey struct{ x, y float64 }

func keyOf(c geom.Coordinate) coordKey { return coordKey{c.X, c.Y} }

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodeIndex: make(map[coordKey]NodeID)}
}

// GetOrCreateNode returns the node at c, creating it if necessary.
func (g *Graph) GetOrCreateNode(c geom.Coordinate) NodeID {
	k := keyOf(c)
	if id, ok := g.nodeIndex[k]; ok {
		return id
	}
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Coord: c})
	g.nodeIndex[k] = id
	return id
}

// FindNode looks up an existing node at c.
func (g *Graph) FindNode(c geom.Coordinate) (NodeID, bool) {
	id, ok := g.nodeIndex[keyOf(c)]
	return id, ok
}

// AddEdge inserts a fully-noded edge (no interior intersections with any
// other edge) into the graph, creating its two EdgeEnds and wiring them as
// each other's Sym. label is the edge's own ON/LEFT/RIGHT annotation
// (already oriented start->end).
func (g *Graph) AddEdge(coords []geom.Coordinate, label Label) EdgeID {
	edgeID := EdgeID(len(g.Edges))
	g.Edges = append(g.Edges, Edge{Coords: coords, Label: label})

	startNode := g.GetOrCreateNode(coords[0])
	endNode := g.GetOrCreateNode(coords[len(coords)-1])

	fwdID := EdgeEndID(len(g.EdgeEnds))
	g.EdgeEnds = append(g.EdgeEnds, g.buildEnd(edgeID, startNode, true, label))
	bwdID := EdgeEndID(len(g.EdgeEnds))
	g.EdgeEnds = append(g.EdgeEnds, g.buildEnd(edgeID, endNode, false, label.Flip()))

	g.EdgeEnds[fwdID].Sym = bwdID
	g.EdgeEnds[bwdID].Sym = fwdID

	g.Nodes[startNode].EdgeEnds = append(g.Nodes[startNode].EdgeEnds, fwdID)
	g.Nodes[endNode].EdgeEnds = append(g.Nodes[endNode].EdgeEnds, bwdID)
	return edgeID
}

func (g *Graph) buildEnd(edgeID EdgeID, node NodeID, forward bool, label Label) EdgeEnd {
	coords := g.Edges[edgeID].Coords
	var dx, dy float64
	if forward {
		dx, dy = coords[1].X-coords[0].X, coords[1].Y-coords[0].Y
	} else {
		n := len(coords)
		dx, dy = coords[n-2].X-coords[n-1].X, coords[n-2].Y-coords[n-1].Y
	}
	return EdgeEnd{
		Edge: edgeID, Node: node, Forward: forward,
		Dx: dx, Dy: dy, Angle: math.Atan2(dy, dx), Label: label,
	}
}

// SortEdgeEndStars sorts each node's incident edge-ends by ascending atan2
// angle (counter-clockwise, starting just past west at -π), forming the
// edge-end star of spec §3.
func (g *Graph) SortEdgeEndStars() {
	for i := range g.Nodes {
		ends := g.Nodes[i].EdgeEnds
		sort.Slice(ends, func(a, b int) bool {
			return g.EdgeEnds[ends[a]].Angle < g.EdgeEnds[ends[b]].Angle
		})
	}
}

// Validate checks the arena-level invariant of spec §3 that every edge-end
// has a valid twin, useful as an internal consistency assertion after graph
// construction.
func (g *Graph) Validate() error {
	for i, e := range g.EdgeEnds {
		if int(e.Sym) < 0 || int(e.Sym) >= len(g.EdgeEnds) {
			return fmt.Errorf("edge-end %d has out-of-range sym %d", i, e.Sym)
		}
		if g.EdgeEnds[e.Sym].Sym != EdgeEndID(i) {
			return fmt.Errorf("edge-end %d and its sym %d are not mutually paired", i, e.Sym)
		}
	}
	return nil
}
