package overlay

import (
	"sort"

	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/internal/index/strtree"
	"github.com/planarith/geom/pkg/geom"
)

// TraceEdgeRings walks every in-result edge exactly once, following the
// planar-graph face-tracing rule of spec §4.5 step 1: around each node,
// directed edges are threaded by angle, and the in-result edges are walked
// in minimal-angle order to recover closed rings.
func TraceEdgeRings(g *graph.Graph) ([][]geom.Coordinate, error) {
	active := make(map[graph.EdgeEndID]bool)
	for i := range g.Edges {
		e := &g.Edges[i]
		if !e.InResult {
			continue
		}
		active[resultEdgeEndID(graph.EdgeID(i), e.ResultForward)] = true
	}

	visited := make(map[graph.EdgeEndID]bool)
	var rings [][]geom.Coordinate
	for i := range g.Edges {
		e := &g.Edges[i]
		if !e.InResult {
			continue
		}
		start := resultEdgeEndID(graph.EdgeID(i), e.ResultForward)
		if visited[start] {
			continue
		}
		ring, err := traceOneRing(g, start, active, visited)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// resultEdgeEndID returns the edge-end ID representing the result-facing
// direction of edgeID: edge-ends are always created as a (forward,
// backward) pair at consecutive IDs (spec §9 arena layout), forward first.
func resultEdgeEndID(edgeID graph.EdgeID, forward bool) graph.EdgeEndID {
	base := graph.EdgeEndID(2 * int(edgeID))
	if forward {
		return base
	}
	return base + 1
}

const maxRingSteps = 1 << 20 // guards against a malformed graph looping forever

func traceOneRing(g *graph.Graph, start graph.EdgeEndID, active, visited map[graph.EdgeEndID]bool) ([]geom.Coordinate, error) {
	var coords []geom.Coordinate
	cur := start
	for steps := 0; ; steps++ {
		if steps > maxRingSteps {
			return nil, &unclosedRingError{}
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
			return nil, &unclosedRingError{}
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

type unclosedRingError struct{}

func (e *unclosedRingError) Error() string { return "overlay assembly could not close a ring" }

func reverseCoords(c []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(c))
	for i, v := range c {
		out[len(c)-1-i] = v
	}
	return out
}

// nextActiveEdgeEnd finds the next active (in-result, direction-selected)
// edge-end in the sorted edge-end star of node, walking forward from the
// position of from (exclusive), wrapping around. Returns -1 if none found.
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

// ringPolygon pairs an assembled ring with its envelope and whether it
// winds counter-clockwise (shell candidate) or clockwise (hole candidate).
type ringPolygon struct {
	ring *geom.LinearRing
	ccw  bool
	env  geom.Envelope
}

func (r *ringPolygon) Bounds() geom.Envelope { return r.env }

// BuildPolygons assembles the traced rings into polygons: CCW rings are
// shells, CW rings are holes, and each hole is attached to the smallest-area
// shell whose ring contains it and whose area exceeds the hole's (spec §4.5
// step 1); a hole with no such shell is dropped. An STR-tree index
// (internal/index/strtree) over shell envelopes keeps hole-to-shell
// assignment sub-quadratic.
func BuildPolygons(factory *geom.Factory, rawRings [][]geom.Coordinate) ([]*geom.Polygon, error) {
	var shells, holes []*ringPolygon
	for _, coords := range rawRings {
		seq := geom.NewCoordinateSequence(geom.StrideXY, coords)
		ring, err := factory.CreateLinearRing(seq)
		if err != nil {
			continue // degenerate ring (collapsed to < 4 points): drop silently, matches a zero-area face
		}
		rp := &ringPolygon{ring: ring, ccw: ring.IsCCW(), env: ring.Envelope()}
		if rp.ccw {
			shells = append(shells, rp)
		} else {
			holes = append(holes, rp)
		}
	}

	sort.Slice(shells, func(i, j int) bool { return absArea(shells[i].ring) < absArea(shells[j].ring) })
	tree := strtree.New(strtree.DefaultNodeCapacity)
	for _, s := range shells {
		tree.Insert(s.env, s)
	}
	tree.Build()

	assigned := make(map[*ringPolygon][]*geom.LinearRing)
	for _, h := range holes {
		var best *ringPolygon
		pt := h.ring.CoordinateSequence().Get(0)
		tree.Query(h.env, func(it strtree.Item) bool {
			cand := it.(*ringPolygon)
			if !cand.env.Contains(h.env) || absArea(cand.ring) <= absArea(h.ring)*(1+1e-9) {
				return true
			}
			if pointInRing(pt, cand.ring) {
				if best == nil || absArea(cand.ring) < absArea(best.ring) {
					best = cand
				}
			}
			return true
		})
		if best != nil {
			assigned[best] = append(assigned[best], h.ring)
		}
	}

	polys := make([]*geom.Polygon, 0, len(shells))
	for _, s := range shells {
		polys = append(polys, factory.CreatePolygon(s.ring, assigned[s]))
	}
	return polys, nil
}

func absArea(r *geom.LinearRing) float64 {
	a := geom.SignedArea(r.CoordinateSequence())
	if a < 0 {
		return -a
	}
	return a
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
