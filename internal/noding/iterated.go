package noding

import "github.com/planarith/geom/pkg/geom"

// DefaultMaxIterations is the iteration cap of spec §4.4/§9: a guardrail
// against floating-point livelock where re-noding keeps discovering
// infinitesimally-new intersection points.
const DefaultMaxIterations = 5

// IteratedNoder repeats noding with base until no new intersections appear,
// failing with a topology error if MaxIterations is exceeded (spec §4.4).
type IteratedNoder struct {
	Base          Noder
	MaxIterations int
}

// NewIteratedNoder wraps base with the default iteration cap.
func NewIteratedNoder(base Noder) *IteratedNoder {
	return &IteratedNoder{Base: base, MaxIterations: DefaultMaxIterations}
}

// ErrNodingDidNotConverge is returned when the iteration cap is exhausted;
// callers are expected to retry under a coarser precision model (spec §4.4,
// §7 TopologyError).
type ErrNodingDidNotConverge struct{ Iterations int }

func (e *ErrNodingDidNotConverge) Error() string {
	return "noding did not converge within the iteration budget"
}

// ComputeNodes runs Base repeatedly, re-feeding its own output back in,
// until a pass produces no new segment count beyond the previous pass (a
// stable point count is the convergence signal), or the iteration cap is
// reached.
func (n *IteratedNoder) ComputeNodes(inputs []*SegmentString, pm geom.PrecisionModel) ([]*SegmentString, error) {
	cap := n.MaxIterations
	if cap <= 0 {
		cap = DefaultMaxIterations
	}
	current := inputs
	prevCount := -1
	for i := 0; i < cap; i++ {
		next := n.Base.ComputeNodes(current, pm)
		if countVertices(next) == prevCount {
			return next, nil
		}
		prevCount = countVertices(next)
		current = next
	}
	return nil, &ErrNodingDidNotConverge{Iterations: cap}
}

func countVertices(strings []*SegmentString) int {
	total := 0
	for _, s := range strings {
		total += s.Size()
	}
	return total
}
