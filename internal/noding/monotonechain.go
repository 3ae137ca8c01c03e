package noding

import "github.com/planarith/geom/pkg/geom"

// MonotoneChain is a maximal run of consecutive segments of a SegmentString
// whose X and Y ordinates are each monotonic (spec GLOSSARY). It bounds
// pairwise intersection work in MCIndexNoder.
type MonotoneChain struct {
	String     *SegmentString
	StartIndex int // first segment index covered
	EndIndex   int // last segment index covered (inclusive)
	ID         int // assigned by the caller; used to process each pair once
	env        geom.Envelope
}

// Envelope returns the chain's bounding rectangle (lazily computed).
func (c *MonotoneChain) Envelope() geom.Envelope {
	if c.env.IsNull() {
		env := geom.NullEnvelope()
		for i := c.StartIndex; i <= c.EndIndex+1 && i < c.String.Size(); i++ {
			p := c.String.Coords[i]
			env = env.ExpandToIncludeXY(p.X, p.Y)
		}
		c.env = env
	}
	return c.env
}

// Bounds implements strtree.Item.
func (c *MonotoneChain) Bounds() geom.Envelope { return c.Envelope() }

// BuildMonotoneChains decomposes s into maximal monotone runs.
func BuildMonotoneChains(s *SegmentString) []*MonotoneChain {
	var chains []*MonotoneChain
	n := s.NumSegments()
	if n == 0 {
		return chains
	}
	start := 0
	for i := 1; i < n; i++ {
		if !sameQuadrant(s, start, i) {
			chains = append(chains, &MonotoneChain{String: s, StartIndex: start, EndIndex: i - 1, env: geom.NullEnvelope()})
			start = i
		}
	}
	chains = append(chains, &MonotoneChain{String: s, StartIndex: start, EndIndex: n - 1, env: geom.NullEnvelope()})
	return chains
}

// sameQuadrant reports whether segment at index i continues the monotone
// run started at segment start: both dx and dy keep the same sign (or zero)
// as the run's first segment.
func sameQuadrant(s *SegmentString, start, i int) bool {
	p0, p1 := s.SegmentStart(start), s.SegmentEnd(start)
	q0, q1 := s.SegmentStart(i), s.SegmentEnd(i)
	return signOf(p1.X-p0.X) == signOf(q1.X-q0.X) && signOf(p1.Y-p0.Y) == signOf(q1.Y-q0.Y)
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Overlaps reports whether chains a and b have overlapping envelopes.
func (c *MonotoneChain) Overlaps(other *MonotoneChain) bool {
	return c.Envelope().Intersects(other.Envelope())
}

// EachSegmentPair invokes visit for every (segIndex in c, segIndex in other)
// pair whose individual segment envelopes overlap.
func (c *MonotoneChain) EachSegmentPair(other *MonotoneChain, visit func(i, j int)) {
	for i := c.StartIndex; i <= c.EndIndex; i++ {
		si1, si2 := c.String.SegmentStart(i), c.String.SegmentEnd(i)
		segEnvI := geom.NewEnvelope(min(si1.X, si2.X), max(si1.X, si2.X), min(si1.Y, si2.Y), max(si1.Y, si2.Y))
		for j := other.StartIndex; j <= other.EndIndex; j++ {
			sj1, sj2 := other.String.SegmentStart(j), other.String.SegmentEnd(j)
			segEnvJ := geom.NewEnvelope(min(sj1.X, sj2.X), max(sj1.X, sj2.X), min(sj1.Y, sj2.Y), max(sj1.Y, sj2.Y))
			if segEnvI.Intersects(segEnvJ) {
				visit(i, j)
			}
		}
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
