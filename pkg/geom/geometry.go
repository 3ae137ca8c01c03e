package geom

// Geometry is the common interface implemented by every tagged variant:
// Point, LineString, LinearRing, Polygon, MultiPoint, MultiLineString,
// MultiPolygon, GeometryCollection (spec §3).
//
// Geometries are immutable after construction (spec §9's "cleaner choice"
// for the lazy-envelope-cache design note): "mutation" is expressed by
// building a new value via the factory rather than editing one in place.
type Geometry interface {
	// GeometryType names the variant, e.g. "Polygon".
	GeometryType() string
	// Dimension is the topological dimension: 0 point, 1 line, 2 area, or
	// DimFalse for an empty GeometryCollection.
	Dimension() Dimension
	// Envelope returns the (lazily cached) bounding rectangle. Empty
	// geometries yield the null envelope.
	Envelope() Envelope
	// IsEmpty reports whether the geometry has no coordinates/children.
	IsEmpty() bool
	// PrecisionModel returns the shared precision model.
	PrecisionModel() PrecisionModel
	// SRID returns the opaque spatial-reference tag, 0 if unset.
	SRID() int
	// NumGeometries returns 1 for simple types, or the child count for
	// Multi*/GeometryCollection.
	NumGeometries() int
	// GeometryN returns the n'th child (0 for simple types returns the
	// receiver itself).
	GeometryN(n int) Geometry
}

// base carries the fields common to every variant: shared precision model,
// SRID tag, and the lazily-computed envelope cache (spec §9's
// NotComputed/Null/Bounded three-state enum is modeled with a bool flag
// plus the Envelope's own null state, since Envelope already distinguishes
// null from bounded).
type base struct {
	pm            PrecisionModel
	srid          int
	envComputed   bool
	envCache      Envelope
}

func (b *base) PrecisionModel() PrecisionModel { return b.pm }
func (b *base) SRID() int                      { return b.srid }

// cachedEnvelope returns the cached envelope if present, else computes it
// via compute, caches, and returns it. Geometries are immutable once built
// so the cache is never invalidated after first computation.
func (b *base) cachedEnvelope(compute func() Envelope) Envelope {
	if !b.envComputed {
		b.envCache = compute()
		b.envComputed = true
	}
	return b.envCache
}

// Collection is the interface satisfied by the four Multi*/GeometryCollection
// variants, used by generic visitor-style traversals (spec §9's
// "mixin-like filter traversal becomes a generic visitor function").
type Collection interface {
	Geometry
	Geometries() []Geometry
}

// Polygonal is satisfied by Polygon and MultiPolygon.
type Polygonal interface {
	Geometry
	Area() float64
}

// Lineal is satisfied by LineString, LinearRing, and MultiLineString.
type Lineal interface {
	Geometry
	Length() float64
}

// Puntal is satisfied by Point and MultiPoint.
type Puntal interface {
	Geometry
}

// Walk applies visit to g and, recursively, every member of a Collection
// (Multi* and GeometryCollection) — the generic visitor replacing a
// class-hierarchy "apply to all components" traversal (spec §9). A
// Polygon's shell and holes are not visited.
func Walk(g Geometry, visit func(Geometry)) {
	visit(g)
	if c, ok := g.(Collection); ok {
		for _, child := range c.Geometries() {
			Walk(child, visit)
		}
	}
}
