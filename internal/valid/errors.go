package valid

import "fmt"

// Each of these implements error and names one failure mode of spec §4.7's
// validity checker. Where a type has X, Y they locate the failure: the
// first vertex of the offending ring or line for the self-intersection and
// nesting errors, the node where rings meet for ErrDisconnectedInterior.
type (
	ErrTooFewPoints struct{ Count int }
	ErrRingNotClosed struct{}
	ErrSelfIntersection struct{ X, Y float64 }
	ErrRingSelfIntersection struct{ X, Y float64 }
	ErrDuplicatedRings struct{}
	ErrHoleOutsideShell struct{ X, Y float64 }
	ErrNestedHoles struct{ X, Y float64 }
	ErrDisconnectedInterior struct{ X, Y float64 }
	ErrNestedShells struct{ X, Y float64 }
)

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("too few points: ring has %d, need >= 4 (or 0)", e.Count)
}
func (e *ErrRingNotClosed) Error() string { return "ring not closed: first and last points differ" }
func (e *ErrSelfIntersection) Error() string {
	return fmt.Sprintf("self-intersection at (%v, %v)", e.X, e.Y)
}
func (e *ErrRingSelfIntersection) Error() string {
	return fmt.Sprintf("ring self-intersection at (%v, %v)", e.X, e.Y)
}
func (e *ErrDuplicatedRings) Error() string { return "duplicated rings" }
func (e *ErrHoleOutsideShell) Error() string {
	return fmt.Sprintf("hole outside shell at (%v, %v)", e.X, e.Y)
}
func (e *ErrNestedHoles) Error() string {
	return fmt.Sprintf("nested holes at (%v, %v)", e.X, e.Y)
}
func (e *ErrDisconnectedInterior) Error() string {
	return fmt.Sprintf("disconnected interior near (%v, %v)", e.X, e.Y)
}
func (e *ErrNestedShells) Error() string {
	return fmt.Sprintf("nested shells at (%v, %v)", e.X, e.Y)
}
