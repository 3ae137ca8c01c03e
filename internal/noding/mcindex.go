package noding

import (
	"github.com/planarith/geom/internal/index/strtree"
	"github.com/planarith/geom/pkg/geom"
)

// MCIndexNoder decomposes each input SegmentString into monotone chains,
// indexes chain envelopes in an STR-tree, and only intersects chain pairs
// whose envelopes overlap and whose IDs satisfy id(query) > id(other) so
// each pair is processed once (spec §4.4).
type MCIndexNoder struct{}

func (MCIndexNoder) ComputeNodes(inputs []*SegmentString, pm geom.PrecisionModel) []*SegmentString {
	var chains []*MonotoneChain
	tree := strtree.New(strtree.DefaultNodeCapacity)
	id := 0
	for _, s := range inputs {
		for _, c := range BuildMonotoneChains(s) {
			c.ID = id
			id++
			chains = append(chains, c)
			tree.Insert(c.Envelope(), c)
		}
	}
	tree.Build()

	for _, c := range chains {
		tree.Query(c.Envelope(), func(it strtree.Item) bool {
			other := it.(*MonotoneChain)
			if other.ID >= c.ID {
				return true
			}
			if !c.Overlaps(other) {
				return true
			}
			c.EachSegmentPair(other, func(i, j int) {
				addIntersections(c.String, i, other.String, j, pm)
			})
			return true
		})
	}

	seen := make(map[*SegmentString]bool)
	var out []*SegmentString
	for _, s := range inputs {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s.NodedSubstrings()...)
	}
	return out
}
