// Package predicate implements spec §4.5/§6's DE-9IM relate matrix and the
// named boolean predicates derived from it, plus the RectangleIntersects /
// RectangleContains short-circuits named in spec §4.5.
package predicate

import "github.com/planarith/geom/pkg/geom"

// dim is a DE-9IM cell value: -1 (F, no intersection), 0, 1, or 2.
type dim int

const none dim = -1

// IM is a 3x3 Dimensionally Extended 9-Intersection Model matrix, indexed
// [Interior=0, Boundary=1, Exterior=2] for each of A (rows) and B (columns).
type IM struct {
	cells [3][3]dim
}

func newIM() *IM {
	m := &IM{}
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = none
		}
	}
	return m
}

func locIndex(l geom.Location) int {
	switch l {
	case geom.LocationInterior:
		return 0
	case geom.LocationBoundary:
		return 1
	case geom.LocationExterior:
		return 2
	default:
		return -1
	}
}

func (m *IM) setAtLeast(a, b geom.Location, d dim) {
	ai, bi := locIndex(a), locIndex(b)
	if ai < 0 || bi < 0 {
		return
	}
	if d > m.cells[ai][bi] {
		m.cells[ai][bi] = d
	}
}

func (m *IM) get(ai, bi int) dim { return m.cells[ai][bi] }

// String renders the matrix as the standard 9-character DE-9IM string, in
// row-major (II IB IE BI BB BE EI EB EE) order, over {0,1,2,F} (spec §6).
func (m *IM) String() string {
	out := make([]byte, 9)
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[k] = symbol(m.cells[i][j])
			k++
		}
	}
	return string(out)
}

func symbol(d dim) byte {
	switch d {
	case 0:
		return '0'
	case 1:
		return '1'
	case 2:
		return '2'
	default:
		return 'F'
	}
}

// Matches reports whether m satisfies pattern, a 9-character DE-9IM pattern
// string using {0,1,2,F,T,*}: T matches any non-F cell, * matches anything,
// a digit requires an exact dimension, F requires no intersection.
func (m *IM) Matches(pattern string) bool {
	if len(pattern) != 9 {
		return false
	}
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !matchesOne(m.cells[i][j], pattern[k]) {
				return false
			}
			k++
		}
	}
	return true
}

func matchesOne(d dim, p byte) bool {
	switch p {
	case '*':
		return true
	case 'T':
		return d >= 0
	case 'F':
		return d == none
	case '0':
		return d == 0
	case '1':
		return d == 1
	case '2':
		return d == 2
	default:
		return false
	}
}
