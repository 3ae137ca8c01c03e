// Package graph implements the planar half-edge topology graph of spec
// §4.5: nodes, directed edges (edge-ends), and edge-end stars, with each
// edge carrying a two-slot label recording its location relative to each
// input geometry.
//
// Per spec §9's "reify cyclic pointer graphs into an arena with integer
// handles" design note, nodes, edges, and edge-ends each live in their own
// append-only slice inside Graph; all cross-references are indices into
// those slices rather than pointers, so the graph has no reference cycles
// and is trivially movable/copyable.
package graph

import "github.com/planarith/geom/pkg/geom"

// Slot is one input's topology-location triple for an edge: ON (the edge
// itself), LEFT side, RIGHT side. Line-valued edges leave Left/Right at
// geom.LocationNone.
type Slot struct {
	Present     bool
	On, Left, Right geom.Location
}

// Label is the two-slot per-edge annotation of spec §3/§4.5, one Slot per
// input geometry (A and B).
type Label struct {
	A, B Slot
}

// Slot returns the label's slot for input index 0 (A) or 1 (B).
func (l *Label) Slot(input int) *Slot {
	if input == 0 {
		return &l.A
	}
	return &l.B
}

// Flip returns a copy of l with Left/Right swapped in both slots — the
// label as seen from an edge-end's symmetric (opposite-direction) twin.
func (l Label) Flip() Label {
	l.A.Left, l.A.Right = l.A.Right, l.A.Left
	l.B.Left, l.B.Right = l.B.Right, l.B.Left
	return l
}

// Merge folds other into l: any slot l leaves non-present is replaced by
// other's slot for the same input. Used when two dimensionally-collapsed
// edges (spec §4.5 "edge deduplication") are merged into one.
func (l *Label) Merge(other Label) {
	mergeSlot(&l.A, other.A)
	mergeSlot(&l.B, other.B)
}

func mergeSlot(dst *Slot, src Slot) {
	if !dst.Present && src.Present {
		*dst = src
	}
}

// IsArea reports whether the slot carries side information (as opposed to
// a line-valued collapse, which carries only On).
func (s Slot) IsArea() bool { return s.Left != geom.LocationNone || s.Right != geom.LocationNone }
