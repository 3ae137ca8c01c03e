package overlay

import (
	"errors"

	"github.com/planarith/geom/internal/graph"
	"github.com/planarith/geom/internal/noding"
	"github.com/planarith/geom/pkg/geom"
)

// Compute runs the full overlay pipeline of spec §4.5 for op over inputs a
// and b under precision model pm. On a topology failure it falls back
// through the precision-retry schedule of spec §9, snapping to a
// progressively coarser fixed grid until one scale nodes cleanly.
func Compute(factory *geom.Factory, a, b geom.Geometry, op Op, pm geom.PrecisionModel) (geom.Geometry, error) {
	result, err := computeOnce(factory, a, b, op, pm)
	if err == nil {
		return result, nil
	}
	var topoErr *geom.ErrTopology
	if !errors.As(err, &topoErr) {
		return nil, err
	}
	for _, scale := range geom.PrecisionRetrySchedule() {
		result, retryErr := computeOnce(factory, a, b, op, geom.NewFixedPrecisionModel(scale))
		if retryErr == nil {
			return result, nil
		}
		err = retryErr
	}
	return nil, err
}

// computeOnce is the single-pass overlay pipeline: node every input
// segment, build the topology graph, label it, select result edges, and
// assemble the result geometry.
func computeOnce(factory *geom.Factory, a, b geom.Geometry, op Op, pm geom.PrecisionModel) (geom.Geometry, error) {
	var segStrings []*noding.SegmentString
	if a != nil {
		segStrings = append(segStrings, graph.ExtractSegmentStrings(a, 0)...)
	}
	if b != nil {
		segStrings = append(segStrings, graph.ExtractSegmentStrings(b, 1)...)
	}
	if len(segStrings) == 0 {
		var points []*geom.Point
		for _, c := range buildPoints(op, a, b, func(geom.Coordinate) bool { return false }) {
			points = append(points, factory.CreatePoint(c))
		}
		return assembleResult(factory, nil, nil, points), nil
	}

	noder := noding.NewIteratedNoder(noding.MCIndexNoder{})
	noded, err := noder.ComputeNodes(segStrings, pm)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}

	g := graph.BuildFromNodedStrings(noded)
	if err := g.Validate(); err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}
	g.ComputeNodeLabels([2]geom.Geometry{a, b})
	g.PropagateEdgeLabels()
	selectResultEdges(g, op)

	rawRings, err := TraceEdgeRings(g)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}
	polys, err := BuildPolygons(factory, rawRings)
	if err != nil {
		return nil, &geom.ErrTopology{Reason: err.Error()}
	}

	var areaEnvelopes []geom.Envelope
	for _, p := range polys {
		areaEnvelopes = append(areaEnvelopes, p.Envelope())
	}
	covers := func(c geom.Coordinate) bool {
		for i, p := range polys {
			if areaEnvelopes[i].ContainsXY(c.X, c.Y) && graph.Locate(c, p) != geom.LocationExterior {
				return true
			}
		}
		return false
	}

	lineChains := buildLines(g)
	var lines []*geom.LineString
	for _, chain := range lineChains {
		if len(chain) > 0 && covers(chain[0]) && covers(chain[len(chain)-1]) {
			continue
		}
		seq := geom.NewCoordinateSequence(geom.StrideXY, chain)
		lines = append(lines, factory.CreateLineString(seq))
	}
	lineCovers := func(c geom.Coordinate) bool {
		if covers(c) {
			return true
		}
		for _, l := range lines {
			if graph.Locate(c, l) != geom.LocationExterior {
				return true
			}
		}
		return false
	}

	pointCoords := buildPoints(op, a, b, lineCovers)
	var points []*geom.Point
	for _, c := range pointCoords {
		points = append(points, factory.CreatePoint(c))
	}

	return assembleResult(factory, polys, lines, points), nil
}

// assembleResult packages the three result buckets into the simplest
// geometry that represents them: empty if all are empty, a single
// typed/multi-typed geometry if only one bucket is non-empty, else a
// heterogeneous collection (spec §4.5 step 5).
func assembleResult(factory *geom.Factory, polys []*geom.Polygon, lines []*geom.LineString, points []*geom.Point) geom.Geometry {
	nonEmpty := 0
	if len(polys) > 0 {
		nonEmpty++
	}
	if len(lines) > 0 {
		nonEmpty++
	}
	if len(points) > 0 {
		nonEmpty++
	}
	switch {
	case nonEmpty == 0:
		return factory.CreateGeometryCollectionEmpty()
	case len(polys) > 0 && nonEmpty == 1:
		if len(polys) == 1 {
			return polys[0]
		}
		return factory.CreateMultiPolygon(polys)
	case len(lines) > 0 && nonEmpty == 1:
		if len(lines) == 1 {
			return lines[0]
		}
		return factory.CreateMultiLineString(lines)
	case len(points) > 0 && nonEmpty == 1:
		if len(points) == 1 {
			return points[0]
		}
		return factory.CreateMultiPoint(points)
	}

	var children []geom.Geometry
	for _, p := range polys {
		children = append(children, p)
	}
	for _, l := range lines {
		children = append(children, l)
	}
	for _, p := range points {
		children = append(children, p)
	}
	return factory.CreateGeometryCollection(children)
}
