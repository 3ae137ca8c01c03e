// Package polygonize builds polygons from a network of noded, possibly
// dangling or bridging line segments (spec §4.5's face-tracing machinery,
// reused here without the overlay engine's area-selection step).
package polygonize

import (
	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/internal/overlay"
	"github.com/planarith/geom/pkg/geom"
)

// Polygonizer accumulates line segments and assembles every polygon their
// noded network encloses.
type Polygonizer struct {
	lines []*noding.SegmentString
}

// NewPolygonizer returns an empty polygonizer.
func NewPolygonizer() *Polygonizer {
	return &Polygonizer{}
}

// Add stages every LineString component of each geometry for polygonization.
func (p *Polygonizer) Add(geoms ...geom.Geometry) {
	for _, g := range geoms {
		if g == nil {
			continue
		}
		geom.Walk(g, func(child geom.Geometry) {
			line, ok := child.(*geom.LineString)
			if !ok || line.IsEmpty() || line.NumPoints() < 2 {
				return
			}
			coords := append([]geom.Coordinate(nil), line.CoordinateSequence().All()...)
			p.lines = append(p.lines, noding.NewSegmentString(coords, nil))
		})
	}
}

// Polygons nodes every staged line, discards dangling (degree-1-terminated)
// edges, traces the remaining planar graph's bounded faces, and assembles
// them into polygons the same way the overlay engine does (spec §4.5 step
// 1's shell/hole classification). Edges that bridge two polygon components
// without ever dangling (JTS's "cut edges") are not separately detected:
// the face ring running along such an edge traverses it once in each
// direction and is assembled like any other ring.
func (p *Polygonizer) Polygons(factory *geom.Factory, pm geom.PrecisionModel) ([]*geom.Polygon, error) {
	if len(p.lines) == 0 {
		return nil, nil
	}
	noder := noding.NewIteratedNoder(noding.MCIndexNoder{})
	noded, err := noder.ComputeNodes(p.lines, pm)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}

	g := graph.New()
	for _, s := range noded {
		if len(s.Coords) < 2 {
			continue
		}
		g.AddEdge(s.Coords, graph.Label{})
	}
	g.SortEdgeEndStars()

	active := removeDangles(g)
	activeEnds := make(map[graph.EdgeEndID]bool, 2*len(active))
	for eid, on := range active {
		if !on {
			continue
		}
		activeEnds[graph.EdgeEndID(2*int(eid))] = true
		activeEnds[graph.EdgeEndID(2*int(eid)+1)] = true
	}

	rawRings, err := traceAllRings(g, activeEnds)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}
	return overlay.BuildPolygons(factory, rawRings)
}

// removeDangles iteratively drops edges with a degree-1 endpoint until none
// remain, returning the surviving edge set.
func removeDangles(g *graph.Graph) map[graph.EdgeID]bool {
	degree := make([]int, len(g.Nodes))
	for i := range g.Nodes {
		degree[i] = len(g.Nodes[i].EdgeEnds)
	}
	active := make(map[graph.EdgeID]bool, len(g.Edges))
	for i := range g.Edges {
		active[graph.EdgeID(i)] = true
	}

	for changed := true; changed; {
		changed = false
		for i := range g.Edges {
			id := graph.EdgeID(i)
			if !active[id] {
				continue
			}
			e := &g.Edges[i]
			sNode, sOK := g.FindNode(e.FirstCoord())
			tNode, tOK := g.FindNode(e.LastCoord())
			if !sOK || !tOK {
				continue
			}
			if degree[sNode] == 1 || degree[tNode] == 1 {
				active[id] = false
				degree[sNode]--
				degree[tNode]--
				changed = true
			}
		}
	}
	return active
}
