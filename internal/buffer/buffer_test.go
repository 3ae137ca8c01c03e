package buffer

import (
	"testing"

	"github.com/planarith/geom/internal/valid"
	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func TestBufferOfPointIsDiscOfCorrectArea(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	pt := f.CreatePoint(geom.NewXY(0, 0))

	result, err := Buffer(f, pt, 10, DefaultBufferParameters(), pm)
	assert.Truef(t, err == nil, "unexpected error: %v", err)

	poly, ok := result.(*geom.Polygon)
	assert.Truef(t, ok, "expected a Polygon result, got %T", result)
	area := poly.Area()
	expected := 3.14159265 * 100
	assert.Truef(t, area > expected*0.9 && area < expected*1.1,
		"disc area %v should be close to pi*r^2 = %v", area, expected)
}

func TestBufferOfLineGrowsArea(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0),
	})
	line := f.CreateLineString(seq)

	result, err := Buffer(f, line, 2, DefaultBufferParameters(), pm)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, !result.IsEmpty(), "buffer of a line should not be empty")
}

func TestBufferOfZeroDistanceReturnsInputUnchanged(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	pt := f.CreatePoint(geom.NewXY(1, 2))

	result, err := Buffer(f, pt, 0, DefaultBufferParameters(), pm)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, result == geom.Geometry(pt), "a zero-distance buffer returns the input geometry")
}

func TestBufferOfPolygonGrowsArea(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	shell, err := f.CreateLinearRing(seq)
	assert.Truef(t, err == nil, "unexpected ring error: %v", err)
	poly := f.CreatePolygon(shell, nil)

	result, bufErr := Buffer(f, poly, 1, DefaultBufferParameters(), pm)
	assert.Truef(t, bufErr == nil, "unexpected error: %v", bufErr)
	areal, ok := result.(geom.Polygonal)
	assert.Truef(t, ok, "expected an areal result, got %T", result)
	assert.Truef(t, areal.Area() > poly.Area(), "a positive buffer should grow the polygon's area")
}

// TestBufferOfConcavePolygonIsSimple buffers an L-shaped (concave) polygon.
// Its single offset curve self-intersects at the reflex corner's inside
// turn before the union pass cleans it up; a buffer that skipped noding a
// lone curve (the bug this test guards against) would hand back that
// self-intersecting ring as the result.
func TestBufferOfConcavePolygonIsSimple(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 4),
		geom.NewXY(4, 4), geom.NewXY(4, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	shell, err := f.CreateLinearRing(seq)
	assert.Truef(t, err == nil, "unexpected ring error: %v", err)
	lShape := f.CreatePolygon(shell, nil)

	result, bufErr := Buffer(f, lShape, 1, DefaultBufferParameters(), pm)
	assert.Truef(t, bufErr == nil, "unexpected error: %v", bufErr)

	areal, ok := result.(geom.Polygonal)
	assert.Truef(t, ok, "expected an areal result, got %T", result)
	assert.Truef(t, areal.Area() > lShape.Area(), "a positive buffer should grow the L-shape's area")
	assert.Truef(t, valid.Validate(result, pm) == nil,
		"buffer of a concave polygon must be a simple, valid result: %v", valid.Validate(result, pm))
}

// TestBufferOfSharplyAngledLineIsSimple buffers a line with a hairpin bend
// (a reflex/near-zero angle), which produces left/right offset curves that
// cross near the bend before the union pass traces a clean outline.
func TestBufferOfSharplyAngledLineIsSimple(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	seq := geom.NewCoordinateSequence(geom.StrideXY, []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(0, 1),
	})
	line := f.CreateLineString(seq)

	result, bufErr := Buffer(f, line, 2, DefaultBufferParameters(), pm)
	assert.Truef(t, bufErr == nil, "unexpected error: %v", bufErr)
	assert.Truef(t, !result.IsEmpty(), "buffer of a sharply-angled line should not be empty")
	assert.Truef(t, valid.Validate(result, pm) == nil,
		"buffer of a sharply-angled line must be a simple, valid result: %v", valid.Validate(result, pm))
}
