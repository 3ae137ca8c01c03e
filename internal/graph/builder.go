package graph

import (
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/pkg/geom"
)

// ringContext is the opaque context noding.SegmentString carries through
// the noder for a ring/line extracted from input geometry Input (0=A,
// 1=B). IsArea distinguishes a polygon ring (labelled ON=BOUNDARY with
// LEFT/RIGHT by winding) from a line component (labelled ON=INTERIOR,
// spec §4.5 step 1).
type ringContext struct {
	Input  int
	IsArea bool
	CCW    bool // orientation of the source ring, forward direction only meaningful for IsArea
}

// ExtractSegmentStrings walks g (the geometry for input index `input`,
// 0 or 1) and produces one noding.SegmentString per linear component:
// polygon shells/holes, and the lines of LineString/MultiLineString (spec
// §4.5 step 1).
func ExtractSegmentStrings(g geom.Geometry, input int) []*noding.SegmentString {
	var out []*noding.SegmentString
	geom.Walk(g, func(child geom.Geometry) {
		switch t := child.(type) {
		case *geom.Polygon:
			if t.IsEmpty() {
				return
			}
			out = append(out, ringToSegmentString(t.Shell(), input))
			for _, h := range t.Holes() {
				out = append(out, ringToSegmentString(h, input))
			}
		case *geom.LineString:
			if t.IsEmpty() || isRingType(child) {
				return
			}
			out = append(out, lineToSegmentString(t, input))
		}
	})
	return out
}

func isRingType(g geom.Geometry) bool {
	_, ok := g.(*geom.LinearRing)
	return ok
}

func ringToSegmentString(r *geom.LinearRing, input int) *noding.SegmentString {
	coords := append([]geom.Coordinate(nil), r.CoordinateSequence().All()...)
	return noding.NewSegmentString(coords, ringContext{Input: input, IsArea: true, CCW: r.IsCCW()})
}

func lineToSegmentString(l *geom.LineString, input int) *noding.SegmentString {
	coords := append([]geom.Coordinate(nil), l.CoordinateSequence().All()...)
	return noding.NewSegmentString(coords, ringContext{Input: input, IsArea: false})
}

// BuildFromNodedStrings assembles a Graph from the noded output of
// ExtractSegmentStrings for both inputs, assigning each substring's label
// from its ringContext and de-duplicating edges that are geometrically
// identical (possibly reversed) across the two inputs (spec §4.5 "edge
// deduplication").
func BuildFromNodedStrings(noded []*noding.SegmentString) *Graph {
	g := New()
	seen := make(map[edgeKey]EdgeID)

	for _, s := range noded {
		ctx := s.Context.(ringContext)
		label := labelFor(ctx)
		k, reversed := canonicalKey(s.Coords)
		if existing, ok := seen[k]; ok {
			mergeIntoExisting(g, existing, label, reversed)
			continue
		}
		id := g.AddEdge(s.Coords, label)
		seen[k] = id
	}
	g.SortEdgeEndStars()
	return g
}

func labelFor(ctx ringContext) Label {
	var l Label
	slot := Slot{Present: true}
	if ctx.IsArea {
		slot.On = geom.LocationBoundary
		if ctx.CCW {
			slot.Left, slot.Right = geom.LocationInterior, geom.LocationExterior
		} else {
			slot.Left, slot.Right = geom.LocationExterior, geom.LocationInterior
		}
	} else {
		slot.On = geom.LocationInterior
	}
	*l.Slot(ctx.Input) = slot
	return l
}

// mergeIntoExisting folds a duplicate edge's label into the one already in
// the graph. If the duplicate's coordinates were stored in reverse relative
// to the canonical orientation, its Left/Right are flipped before merging.
func mergeIntoExisting(g *Graph, id EdgeID, label Label, reversed bool) {
	if reversed {
		label = label.Flip()
	}
	edge := &g.Edges[id]
	edge.Label.Merge(label)
	// propagate the merged label onto both of this edge's EdgeEnds
	for i := range g.EdgeEnds {
		if g.EdgeEnds[i].Edge == id {
			if g.EdgeEnds[i].Forward {
				g.EdgeEnds[i].Label.Merge(label)
			} else {
				g.EdgeEnds[i].Label.Merge(label.Flip())
			}
		}
	}
}

type edgeKey struct{ a, b coordKey }

// canonicalKey returns a direction-independent key for a coordinate chain,
// plus whether the chain is stored reversed relative to that canonical
// direction (first coordinate's key sorts before the last's).
func canonicalKey(coords []geom.Coordinate) (edgeKey, bool) {
	first, last := keyOf(coords[0]), keyOf(coords[len(coords)-1])
	if lessKey(first, last) || first == last {
		return edgeKey{first, last}, false
	}
	return edgeKey{last, first}, true
}

func lessKey(a, b coordKey) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}
