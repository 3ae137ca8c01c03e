// Package algorithm implements the robust segment arithmetic of spec §4.3:
// orientation, segment-segment intersection with coordinate normalization
// and a homogeneous-coordinate fallback, and Z/M interpolation across an
// intersection.
//
// Grounded on LineIntersector.cpp / LineIntersector (original_source) and on
// the robust-predicate technique shown in other_examples' orb predicates
// package; reimplemented here with math/big standing in for the expanded
// ("double-double") precision arithmetic those use, since no pack
// dependency supplies arbitrary-precision arithmetic.
package algorithm

import (
	"math/big"

	"github.com/planarith/geom/pkg/geom"
)

// Orientation is the result of the robust orientation test on a point
// triple (p, q, r): whether r lies to the right of, on, or to the left of
// the directed line through p and q.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// OrientationIndex computes the robust orientation of the triple (p, q, r).
// The signed area determinant is evaluated in expanded (big.Float)
// precision so that only an exactly-zero expanded value reports Collinear —
// the floating-point fast path is used first and only escalated when it is
// close enough to zero that roundoff could flip the sign (spec §4.3).
func OrientationIndex(p, q, r geom.Coordinate) Orientation {
	// Fast path: plain double arithmetic. Safe when the magnitude of the
	// determinant is comfortably larger than the roundoff error bound.
	dx1, dy1 := q.X-p.X, q.Y-p.Y
	dx2, dy2 := r.X-q.X, r.Y-q.Y
	det := dx1*dy2 - dy1*dx2

	errBound := 1e-12 * (abs(dx1)*abs(dy2) + abs(dy1)*abs(dx2) + 1)
	if det > errBound {
		return CounterClockwise
	}
	if det < -errBound {
		return Clockwise
	}

	// Slow path: expanded-precision determinant, exact zero test.
	bigDet := orientationBig(p, q, r)
	switch bigDet.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

func orientationBig(p, q, r geom.Coordinate) *big.Float {
	const prec = 256
	px := big.NewFloat(p.X).SetPrec(prec)
	py := big.NewFloat(p.Y).SetPrec(prec)
	qx := big.NewFloat(q.X).SetPrec(prec)
	qy := big.NewFloat(q.Y).SetPrec(prec)
	rx := big.NewFloat(r.X).SetPrec(prec)
	ry := big.NewFloat(r.Y).SetPrec(prec)

	dx1 := new(big.Float).SetPrec(prec).Sub(qx, px)
	dy1 := new(big.Float).SetPrec(prec).Sub(qy, py)
	dx2 := new(big.Float).SetPrec(prec).Sub(rx, qx)
	dy2 := new(big.Float).SetPrec(prec).Sub(ry, qy)

	t1 := new(big.Float).SetPrec(prec).Mul(dx1, dy2)
	t2 := new(big.Float).SetPrec(prec).Mul(dy1, dx2)
	return new(big.Float).SetPrec(prec).Sub(t1, t2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// IsCCW reports whether three points, read in order, wind counter-clockwise.
func IsCCW(p, q, r geom.Coordinate) bool {
	return OrientationIndex(p, q, r) == CounterClockwise
}
