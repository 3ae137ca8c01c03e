package overlay

import (
	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/pkg/geom"
)

// buildLines collects every in-result line-valued edge (one not labelled as
// an area boundary on either input) into LineString coordinate chains, in
// whichever direction selectResultEdges chose (spec §4.5 step 5).
func buildLines(g *graph.Graph) [][]geom.Coordinate {
	var out [][]geom.Coordinate
	for i := range g.Edges {
		e := &g.Edges[i]
		if !e.InResult || e.Label.A.IsArea() || e.Label.B.IsArea() {
			continue
		}
		coords := e.Coords
		if !e.ResultForward {
			coords = reverseCoords(coords)
		}
		out = append(out, append([]geom.Coordinate(nil), coords...))
	}
	return out
}

// buildPoints locates input points not covered by the area or line result:
// spec §4.5 step 5's "point result" collapses to whatever of A's and B's
// Point/MultiPoint components aren't swallowed by a higher-dimension output.
func buildPoints(op Op, a, b geom.Geometry, areaOrLineCovers func(geom.Coordinate) bool) []geom.Coordinate {
	ptsA := extractPoints(a)
	ptsB := extractPoints(b)
	var out []geom.Coordinate
	switch op {
	case Intersection:
		for _, p := range ptsA {
			if containsCoord(ptsB, p) && !areaOrLineCovers(p) {
				out = append(out, p)
			}
		}
	case Union:
		for _, p := range append(append([]geom.Coordinate{}, ptsA...), ptsB...) {
			if areaOrLineCovers(p) || containsCoord(out, p) {
				continue
			}
			out = append(out, p)
		}
	case Difference:
		for _, p := range ptsA {
			if !containsCoord(ptsB, p) && !areaOrLineCovers(p) {
				out = append(out, p)
			}
		}
	case SymDifference:
		for _, p := range ptsA {
			if !containsCoord(ptsB, p) && !areaOrLineCovers(p) {
				out = append(out, p)
			}
		}
		for _, p := range ptsB {
			if !containsCoord(ptsA, p) && !areaOrLineCovers(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func extractPoints(g geom.Geometry) []geom.Coordinate {
	if g == nil {
		return nil
	}
	var out []geom.Coordinate
	geom.Walk(g, func(child geom.Geometry) {
		if p, ok := child.(*geom.Point); ok && !p.IsEmpty() {
			out = append(out, p.Coordinate())
		}
	})
	return out
}

func containsCoord(coords []geom.Coordinate, p geom.Coordinate) bool {
	for _, c := range coords {
		if c.Equals2D(p) {
			return true
		}
	}
	return false
}
