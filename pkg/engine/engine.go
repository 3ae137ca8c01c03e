// Package engine is the public API surface of the geometry core (spec §6):
// a thin wrapper over internal/overlay, internal/buffer, internal/valid and
// pkg/predicate that converts between caller-facing options and the
// internal pipelines, in the same spirit as the teacher's pkg/s57 facade
// over internal/parser.
package engine

import (
	"github.com/planarith/geom/internal/buffer"
	"github.com/planarith/geom/internal/overlay"
	"github.com/planarith/geom/internal/valid"
	"github.com/planarith/geom/pkg/geom"
	"github.com/planarith/geom/pkg/predicate"
)

// DiagnosticSink receives non-fatal notices and the human-readable error
// that accompanies a degraded (null/empty) result, replacing the global
// notice/error callback spec §5 flags as a design smell. A nil sink is a
// valid no-op.
type DiagnosticSink interface {
	Notice(msg string)
	Error(err error)
}

func notify(sink DiagnosticSink, err error) {
	if sink != nil && err != nil {
		sink.Error(err)
	}
}

// EngineOptions configures an Engine, following the teacher's plain-struct-
// plus-Default-constructor options shape.
type EngineOptions struct {
	Sink DiagnosticSink
}

// DefaultEngineOptions returns an Engine with no diagnostic sink.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{}
}

// Engine exposes the public operations of spec §6 over geometries sharing
// a precision model.
//
// Create one with NewEngine and reuse it across operations.
type Engine interface {
	Intersection(a, b geom.Geometry) (geom.Geometry, error)
	Union(a, b geom.Geometry) (geom.Geometry, error)
	Difference(a, b geom.Geometry) (geom.Geometry, error)
	SymDifference(a, b geom.Geometry) (geom.Geometry, error)

	Buffer(g geom.Geometry, distance float64, params buffer.BufferParameters) (geom.Geometry, error)
	ConvexHull(g geom.Geometry) geom.Geometry
	Boundary(g geom.Geometry) (geom.Geometry, error)
	Centroid(g geom.Geometry) (*geom.Point, bool)
	InteriorPoint(g geom.Geometry) (*geom.Point, bool)
	Distance(a, b geom.Geometry) (float64, error)

	IsValid(g geom.Geometry) error
	IsSimple(g geom.Geometry) bool

	Relate(a, b geom.Geometry) (*predicate.IM, error)
	Disjoint(a, b geom.Geometry) (bool, error)
	Intersects(a, b geom.Geometry) (bool, error)
	Touches(a, b geom.Geometry) (bool, error)
	Crosses(a, b geom.Geometry) (bool, error)
	Within(a, b geom.Geometry) (bool, error)
	Contains(a, b geom.Geometry) (bool, error)
	Overlaps(a, b geom.Geometry) (bool, error)
	Equals(a, b geom.Geometry) (bool, error)
	Covers(a, b geom.Geometry) (bool, error)
	CoveredBy(a, b geom.Geometry) (bool, error)
}

// NewEngine creates an Engine whose factory owns every result geometry and
// whose precision model governs noding and rounding throughout.
func NewEngine(factory *geom.Factory, pm geom.PrecisionModel, opts EngineOptions) Engine {
	return &engineImpl{factory: factory, pm: pm, sink: opts.Sink}
}

type engineImpl struct {
	factory *geom.Factory
	pm      geom.PrecisionModel
	sink    DiagnosticSink
}

func (e *engineImpl) overlayOp(a, b geom.Geometry, op overlay.Op) (geom.Geometry, error) {
	result, err := overlay.Compute(e.factory, a, b, op, e.pm)
	if err != nil {
		notify(e.sink, err)
		return e.factory.CreateGeometryCollectionEmpty(), err
	}
	return result, nil
}

func (e *engineImpl) Intersection(a, b geom.Geometry) (geom.Geometry, error) {
	return e.overlayOp(a, b, overlay.Intersection)
}

func (e *engineImpl) Union(a, b geom.Geometry) (geom.Geometry, error) {
	return e.overlayOp(a, b, overlay.Union)
}

func (e *engineImpl) Difference(a, b geom.Geometry) (geom.Geometry, error) {
	return e.overlayOp(a, b, overlay.Difference)
}

func (e *engineImpl) SymDifference(a, b geom.Geometry) (geom.Geometry, error) {
	return e.overlayOp(a, b, overlay.SymDifference)
}

func (e *engineImpl) Buffer(g geom.Geometry, distance float64, params buffer.BufferParameters) (geom.Geometry, error) {
	result, err := buffer.Buffer(e.factory, g, distance, params, e.pm)
	if err != nil {
		notify(e.sink, err)
		return e.factory.CreateGeometryCollectionEmpty(), err
	}
	return result, nil
}

func (e *engineImpl) ConvexHull(g geom.Geometry) geom.Geometry {
	return e.factory.ConvexHull(g)
}

func (e *engineImpl) IsValid(g geom.Geometry) error {
	err := valid.Validate(g, e.pm)
	if err != nil {
		notify(e.sink, err)
	}
	return err
}

func (e *engineImpl) Relate(a, b geom.Geometry) (*predicate.IM, error) {
	im, err := predicate.Relate(a, b, e.pm)
	if err != nil {
		notify(e.sink, err)
		return nil, err
	}
	return im, nil
}

func (e *engineImpl) relateBool(a, b geom.Geometry, apply func(*predicate.IM) bool) (bool, error) {
	im, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return apply(im), nil
}

func (e *engineImpl) Disjoint(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, predicate.Disjoint)
}

func (e *engineImpl) Intersects(a, b geom.Geometry) (bool, error) {
	if rect, other, ok := asRectangleQuery(a, b); ok {
		if result, applicable := predicate.RectangleIntersects(rect, other); applicable {
			return result, nil
		}
	}
	return e.relateBool(a, b, predicate.Intersects)
}

func (e *engineImpl) Touches(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, func(im *predicate.IM) bool { return predicate.Touches(a, b, im) })
}

func (e *engineImpl) Crosses(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, func(im *predicate.IM) bool { return predicate.Crosses(a, b, im) })
}

func (e *engineImpl) Within(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, predicate.Within)
}

func (e *engineImpl) Contains(a, b geom.Geometry) (bool, error) {
	if rect, other, ok := asRectangleQuery(a, b); ok {
		if result, applicable := predicate.RectangleContains(rect, other); applicable {
			return result, nil
		}
	}
	return e.relateBool(a, b, predicate.Contains)
}

func (e *engineImpl) Overlaps(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, func(im *predicate.IM) bool { return predicate.Overlaps(a, b, im) })
}

func (e *engineImpl) Equals(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, predicate.Equals)
}

func (e *engineImpl) Covers(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, predicate.Covers)
}

func (e *engineImpl) CoveredBy(a, b geom.Geometry) (bool, error) {
	return e.relateBool(a, b, predicate.CoveredBy)
}

// asRectangleQuery treats a Polygon first operand as the rectangle for the
// RectangleIntersects/RectangleContains short circuits. The operands are not
// swapped: a Polygon in the second position alone is not recognized.
func asRectangleQuery(a, b geom.Geometry) (*geom.Polygon, geom.Geometry, bool) {
	if p, ok := a.(*geom.Polygon); ok {
		return p, b, true
	}
	return nil, nil, false
}
