package polygonize

import (
	"fmt"

	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/pkg/geom"
)

const maxRingSteps = 1 << 20

// traceAllRings walks every active edge-end exactly once, tracing out every
// bounded AND unbounded face of the planar graph restricted to active. The
// unbounded face's ring is included here; BuildPolygons discards it as a
// hole with no containing shell.
func traceAllRings(g *graph.Graph, active map[graph.EdgeEndID]bool) ([][]geom.Coordinate, error) {
	visited := make(map[graph.EdgeEndID]bool, len(active))
	var rings [][]geom.Coordinate
	for id := range active {
		if visited[id] {
			continue
		}
		ring, err := traceOneFace(g, id, active, visited)
		if err != nil {
			return nil, err
		}
		if len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	return rings, nil
}

func traceOneFace(g *graph.Graph, start graph.EdgeEndID, active, visited map[graph.EdgeEndID]bool) ([]geom.Coordinate, error) {
	var coords []geom.Coordinate
	cur := start
	for steps := 0; ; steps++ {
		if steps > maxRingSteps {
			return nil, fmt.Errorf("polygonize: could not close a face ring")
		}
		visited[cur] = true
		ee := g.EdgeEnds[cur]
		edgeCoords := g.Edges[ee.Edge].Coords
		if ee.Forward {
			if len(coords) > 0 {
				edgeCoords = edgeCoords[1:]
			}
			coords = append(coords, edgeCoords...)
		} else {
			rev := reverseCoords(edgeCoords)
			if len(coords) > 0 {
				rev = rev[1:]
			}
			coords = append(coords, rev...)
		}

		sym := g.EdgeEnds[ee.Sym]
		next := nextActiveEdgeEnd(g, sym.Node, ee.Sym, active)
		if next < 0 {
			return nil, fmt.Errorf("polygonize: could not close a face ring")
		}
		if next == start {
			break
		}
		cur = next
	}
	if len(coords) > 0 && !coords[0].Equals2D(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	return coords, nil
}

func reverseCoords(c []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(c))
	for i, v := range c {
		out[len(c)-1-i] = v
	}
	return out
}

// nextActiveEdgeEnd returns the next active edge-end in node's angularly
// sorted star, walking forward from from (exclusive). Returns -1 if none.
func nextActiveEdgeEnd(g *graph.Graph, node graph.NodeID, from graph.EdgeEndID, active map[graph.EdgeEndID]bool) graph.EdgeEndID {
	ends := g.Nodes[node].EdgeEnds
	idx := -1
	for i, id := range ends {
		if id == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1
	}
	n := len(ends)
	for k := 1; k <= n; k++ {
		cand := ends[(idx+k)%n]
		if active[cand] {
			return cand
		}
	}
	return -1
}
