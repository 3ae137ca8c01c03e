package valid

import (
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
)

func ring(f *geom.Factory, coords ...geom.Coordinate) *geom.LinearRing {
	r, _ := f.CreateLinearRing(geom.NewCoordinateSequence(geom.StrideXY, coords))
	return r
}

func TestValidSquareIsValid(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	shell := ring(f, geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0))
	poly := f.CreatePolygon(shell, nil)

	assert.Truef(t, Validate(poly, pm) == nil, "a plain square polygon should be valid")
}

func TestHoleOutsideShellIsInvalid(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	shell := ring(f, geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0))
	hole := ring(f, geom.NewXY(20, 20), geom.NewXY(25, 20), geom.NewXY(25, 25), geom.NewXY(20, 25), geom.NewXY(20, 20))
	poly := f.CreatePolygon(shell, []*geom.LinearRing{hole})

	err := Validate(poly, pm)
	assert.Truef(t, err != nil, "a hole entirely outside the shell should be invalid")
	_, ok := err.(*ErrHoleOutsideShell)
	assert.Truef(t, ok, "expected ErrHoleOutsideShell, got %T", err)
}

func TestNestedHolesAreInvalid(t *testing.T) {
	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm, 0)
	shell := ring(f, geom.NewXY(0, 0), geom.NewXY(100, 0), geom.NewXY(100, 100), geom.NewXY(0, 100), geom.NewXY(0, 0))
	h1 := ring(f, geom.NewXY(10, 10), geom.NewXY(50, 10), geom.NewXY(50, 50), geom.NewXY(10, 50), geom.NewXY(10, 10))
	h2 := ring(f, geom.NewXY(20, 20), geom.NewXY(30, 20), geom.NewXY(30, 30), geom.NewXY(20, 30), geom.NewXY(20, 20))
	poly := f.CreatePolygon(shell, []*geom.LinearRing{h1, h2})

	err := Validate(poly, pm)
	assert.Truef(t, err != nil, "one hole nested inside another should be invalid")
	_, ok := err.(*ErrNestedHoles)
	assert.Truef(t, ok, "expected ErrNestedHoles, got %T", err)
}
