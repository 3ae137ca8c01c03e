package geom_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/planarith/geom/internal/overlay"
	"github.com/planarith/geom/pkg/geom"
	"github.com/planarith/geom/pkg/predicate"
	"github.com/teleivo/assertive/assert"
)

// randomRect generates an axis-aligned rectangle polygon with a fuzzed
// origin and a fuzzed positive size, clamped to a sane range so noding
// always has well-separated vertices.
func randomRect(f *geom.Factory, fz *fuzz.Fuzzer) *geom.Polygon {
	var ox, oy float64
	var w, h float64
	fz.Fuzz(&ox)
	fz.Fuzz(&oy)
	fz.Fuzz(&w)
	fz.Fuzz(&h)
	ox = math.Mod(ox, 50)
	oy = math.Mod(oy, 50)
	w = math.Abs(math.Mod(w, 20)) + 1
	h = math.Abs(math.Mod(h, 20)) + 1

	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(ox, oy),
		geom.NewXY(ox+w, oy),
		geom.NewXY(ox+w, oy+h),
		geom.NewXY(ox, oy+h),
		geom.NewXY(ox, oy),
	})
	ring, err := f.CreateLinearRing(seq)
	if err != nil {
		panic(err)
	}
	return f.CreatePolygon(ring, nil)
}

func topoEqual(t *testing.T, pm geom.PrecisionModel, a, b geom.Geometry) bool {
	t.Helper()
	im, err := predicate.Relate(a, b, pm)
	assert.Truef(t, err == nil, "relate error: %v", err)
	return predicate.Equals(im)
}

func TestUnionIsCommutative(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()

	for i := 0; i < 20; i++ {
		a := randomRect(f, fz)
		b := randomRect(f, fz)

		ab, err := overlay.Compute(f, a, b, overlay.Union, pm)
		assert.Truef(t, err == nil, "union(a,b) error: %v", err)
		ba, err := overlay.Compute(f, b, a, overlay.Union, pm)
		assert.Truef(t, err == nil, "union(b,a) error: %v", err)

		assert.Truef(t, topoEqual(t, pm, ab, ba), "union not commutative for %v, %v", a, b)
	}
}

func TestIntersectionIsCommutative(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()

	for i := 0; i < 20; i++ {
		a := randomRect(f, fz)
		b := randomRect(f, fz)

		ab, err := overlay.Compute(f, a, b, overlay.Intersection, pm)
		assert.Truef(t, err == nil, "intersection(a,b) error: %v", err)
		ba, err := overlay.Compute(f, b, a, overlay.Intersection, pm)
		assert.Truef(t, err == nil, "intersection(b,a) error: %v", err)

		assert.Truef(t, topoEqual(t, pm, ab, ba), "intersection not commutative for %v, %v", a, b)
	}
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()
	empty := f.CreateGeometryCollectionEmpty()

	for i := 0; i < 10; i++ {
		a := randomRect(f, fz)
		result, err := overlay.Compute(f, a, empty, overlay.Union, pm)
		assert.Truef(t, err == nil, "union error: %v", err)
		assert.Truef(t, topoEqual(t, pm, result, a), "union(A, empty) != A for %v", a)
	}
}

func TestIntersectionWithEmptyIsEmpty(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()
	empty := f.CreateGeometryCollectionEmpty()

	for i := 0; i < 10; i++ {
		a := randomRect(f, fz)
		result, err := overlay.Compute(f, a, empty, overlay.Intersection, pm)
		assert.Truef(t, err == nil, "intersection error: %v", err)
		assert.Truef(t, result.IsEmpty(), "intersection(A, empty) not empty for %v", a)
	}
}

func TestDifferenceWithEmptyIsIdentity(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()
	empty := f.CreateGeometryCollectionEmpty()

	for i := 0; i < 10; i++ {
		a := randomRect(f, fz)
		result, err := overlay.Compute(f, a, empty, overlay.Difference, pm)
		assert.Truef(t, err == nil, "difference error: %v", err)
		assert.Truef(t, topoEqual(t, pm, result, a), "A \\ empty != A for %v", a)
	}
}

func TestEmptyDifferenceIsEmpty(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()
	empty := f.CreateGeometryCollectionEmpty()

	for i := 0; i < 10; i++ {
		a := randomRect(f, fz)
		result, err := overlay.Compute(f, empty, a, overlay.Difference, pm)
		assert.Truef(t, err == nil, "difference error: %v", err)
		assert.Truef(t, result.IsEmpty(), "empty \\ A not empty for %v", a)
	}
}

func TestUnionOfIntersectionRecoversA(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()

	for i := 0; i < 20; i++ {
		a := randomRect(f, fz)
		b := randomRect(f, fz)

		inter, err := overlay.Compute(f, a, b, overlay.Intersection, pm)
		assert.Truef(t, err == nil, "intersection error: %v", err)
		result, err := overlay.Compute(f, a, inter, overlay.Union, pm)
		assert.Truef(t, err == nil, "union error: %v", err)

		assert.Truef(t, topoEqual(t, pm, result, a), "union(A, A∩B) != A for %v, %v", a, b)
	}
}

func TestConvexHullIsIdempotent(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()

	for i := 0; i < 20; i++ {
		var pts []*geom.Point
		n := 5 + i%10
		for j := 0; j < n; j++ {
			var x, y float64
			fz.Fuzz(&x)
			fz.Fuzz(&y)
			pts = append(pts, f.CreatePoint(geom.NewXY(math.Mod(x, 100), math.Mod(y, 100))))
		}
		mp := f.CreateMultiPoint(pts)

		hull1 := f.ConvexHull(mp)
		hull2 := f.ConvexHull(hull1)

		assert.Truef(t, topoEqual(t, pm, hull1, hull2), "convexHull not idempotent for %v", pts)
	}
}

func TestEnvelopeContainsEveryCoordinate(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	fz := fuzz.New()

	for i := 0; i < 10; i++ {
		poly := randomRect(f, fz)
		env := poly.Envelope()
		seq := poly.Shell().CoordinateSequence()
		for j := 0; j < seq.Size(); j++ {
			c := seq.Get(j)
			assert.Truef(t, env.ContainsXY(c.X, c.Y), "envelope %v does not contain vertex %v", env, c)
		}
	}
}

// Concrete scenarios anchor the randomized laws to known results.

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)

	a := square(f, 0, 0, 10)
	b := square(f, 5, 5, 10)

	result, err := overlay.Compute(f, a, b, overlay.Intersection, pm)
	assert.Truef(t, err == nil, "intersection error: %v", err)
	poly, ok := result.(*geom.Polygon)
	assert.Truef(t, ok, "expected a polygon result, got %T", result)
	assert.EqualValuesf(t, poly.Area(), 25.0, "intersection area")
}

func TestUnionOfMultiPointAbsorbsDuplicate(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)

	mp := f.CreateMultiPoint([]*geom.Point{
		f.CreatePoint(geom.NewXY(0, 0)),
		f.CreatePoint(geom.NewXY(1, 1)),
		f.CreatePoint(geom.NewXY(2, 2)),
	})
	dup := f.CreatePoint(geom.NewXY(1, 1))

	result, err := overlay.Compute(f, mp, dup, overlay.Union, pm)
	assert.Truef(t, err == nil, "union error: %v", err)
	assert.Truef(t, topoEqual(t, pm, result, mp), "union with duplicate point changed the set")
}

func square(f *geom.Factory, x, y, size float64) *geom.Polygon {
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(x, y),
		geom.NewXY(x+size, y),
		geom.NewXY(x+size, y+size),
		geom.NewXY(x, y+size),
		geom.NewXY(x, y),
	})
	ring, err := f.CreateLinearRing(seq)
	if err != nil {
		panic(err)
	}
	return f.CreatePolygon(ring, nil)
}
