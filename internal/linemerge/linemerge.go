// Package linemerge implements spec §4.5's line merger: given a collection
// of LineStrings, it joins chains of lines that meet end-to-end into the
// longest possible LineStrings, splitting only at nodes where more than two
// edge-ends meet (an intersection of three or more lines) or at a genuine
// dangling end.
package linemerge

import "github.com/planarith/geom/pkg/geom"

type coordKey struct{ x, y float64 }

func keyOf(c geom.Coordinate) coordKey { return coordKey{c.X, c.Y} }

type mergeEdge struct {
	coords []geom.Coordinate
	used   bool
}

type incidence struct {
	edge    *mergeEdge
	atStart bool
}

// LineMerger accumulates LineStrings from one or more input geometries and
// merges them into maximal lines.
type LineMerger struct {
	edges []*mergeEdge
}

// NewLineMerger returns an empty merger.
func NewLineMerger() *LineMerger {
	return &LineMerger{}
}

// Add extracts every LineString component from each geometry and stages it
// for merging. Polygon boundaries and points are ignored.
func (m *LineMerger) Add(geoms ...geom.Geometry) {
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
			m.edges = append(m.edges, &mergeEdge{coords: coords})
		})
	}
}

// MergedLineStrings returns the merged result: one LineString per maximal
// chain, plus one per isolated closed loop found among the inputs.
func (m *LineMerger) MergedLineStrings(factory *geom.Factory) []*geom.LineString {
	nodeEdges := make(map[coordKey][]incidence)
	nodeDegree := make(map[coordKey]int)
	for _, e := range m.edges {
		s, t := keyOf(e.coords[0]), keyOf(e.coords[len(e.coords)-1])
		nodeEdges[s] = append(nodeEdges[s], incidence{e, true})
		nodeEdges[t] = append(nodeEdges[t], incidence{e, false})
		nodeDegree[s]++
		nodeDegree[t]++
	}

	var chains [][]geom.Coordinate

	for _, e := range m.edges {
		if e.used {
			continue
		}
		s, t := keyOf(e.coords[0]), keyOf(e.coords[len(e.coords)-1])
		switch {
		case nodeDegree[s] != 2:
			chains = append(chains, trace(e, true, nodeEdges, nodeDegree))
		case nodeDegree[t] != 2:
			chains = append(chains, trace(e, false, nodeEdges, nodeDegree))
		}
	}

	// Anything left unused only touches degree-2 nodes: isolated loops.
	for _, e := range m.edges {
		if e.used {
			continue
		}
		chains = append(chains, traceLoop(e, nodeEdges, nodeDegree))
	}

	out := make([]*geom.LineString, 0, len(chains))
	for _, c := range chains {
		if len(c) < 2 {
			continue
		}
		seq := geom.NewCoordinateSequence(geom.StrideXY, c)
		out = append(out, factory.CreateLineString(seq))
	}
	return out
}

// trace builds the maximal chain starting from e, oriented so the fixed
// (non-degree-2, or dangling) endpoint comes first and extension proceeds
// from the other end.
func trace(e *mergeEdge, forward bool, nodeEdges map[coordKey][]incidence, nodeDegree map[coordKey]int) []geom.Coordinate {
	e.used = true
	var chain []geom.Coordinate
	if forward {
		chain = append(chain, e.coords...)
	} else {
		chain = append(chain, reverseCoords(e.coords)...)
	}

	for {
		tail := keyOf(chain[len(chain)-1])
		if nodeDegree[tail] != 2 {
			return chain
		}
		next, nextAtStart, ok := findUnused(nodeEdges[tail])
		if !ok {
			return chain
		}
		next.used = true
		if nextAtStart {
			chain = append(chain, next.coords[1:]...)
		} else {
			chain = append(chain, reverseCoords(next.coords)[1:]...)
		}
	}
}

// traceLoop walks a closed ring of edges where every node has degree
// exactly 2, starting from e in its stored orientation.
func traceLoop(e *mergeEdge, nodeEdges map[coordKey][]incidence, nodeDegree map[coordKey]int) []geom.Coordinate {
	e.used = true
	chain := append([]geom.Coordinate(nil), e.coords...)
	head := keyOf(chain[0])

	for {
		tail := keyOf(chain[len(chain)-1])
		if tail == head {
			return chain
		}
		next, nextAtStart, ok := findUnused(nodeEdges[tail])
		if !ok {
			return chain
		}
		next.used = true
		if nextAtStart {
			chain = append(chain, next.coords[1:]...)
		} else {
			chain = append(chain, reverseCoords(next.coords)[1:]...)
		}
	}
}

// findUnused returns the single unused incidence among candidates, or
// ok=false if there isn't exactly one (a safety guard; with correct degree
// bookkeeping there is always exactly one at a degree-2 node mid-trace).
func findUnused(candidates []incidence) (*mergeEdge, bool, bool) {
	var found *mergeEdge
	var atStart bool
	count := 0
	for _, inc := range candidates {
		if inc.edge.used {
			continue
		}
		found, atStart = inc.edge, inc.atStart
		count++
	}
	if count != 1 {
		return nil, false, false
	}
	return found, atStart, true
}

func reverseCoords(coords []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}
