// Package strtree implements the STR-packed (Sort-Tile-Recursive) R-tree of
// spec §4.2: a bulk-loaded, query-only spatial index. Once Build is called
// no insert/remove may affect query correctness other than the tombstoning
// Remove explicitly supports.
//
// Grounded on the teacher's (beetlebugorg/s57) pkg/s57/index.go, which
// wraps github.com/dhconnelly/rtreego around chart bounding boxes with the
// same Insert-then-Query shape; this package reimplements the index itself
// rather than wrapping rtreego because spec §4.2 mandates the specific
// deterministic STR bulk-load algorithm (vertical-slice partitioning), which
// a dynamic R*-tree library does not expose. See DESIGN.md.
package strtree

import (
	"sort"

	"github.com/planarith/geom/pkg/geom"
)

// DefaultNodeCapacity is M in spec §4.2.
const DefaultNodeCapacity = 10

// Item is anything with a bounding envelope that can be indexed.
type Item interface {
	Bounds() geom.Envelope
}

type entry struct {
	env  geom.Envelope
	item Item
	dead bool
}

type node struct {
	env      geom.Envelope
	children []*node // nil at leaves
	leaves   []*entry
}

// STRtree is the bulk index of spec §4.2.
type STRtree struct {
	capacity int
	pending  []*entry
	root     *node
	built    bool
}

// New returns an unbuilt tree with the given node capacity (M).
func New(capacity int) *STRtree {
	if capacity < 2 {
		capacity = DefaultNodeCapacity
	}
	return &STRtree{capacity: capacity}
}

// Insert defers an item into the tree; actual construction happens at Build.
func (t *STRtree) Insert(env geom.Envelope, item Item) {
	t.pending = append(t.pending, &entry{env: env, item: item})
	t.built = false
	t.root = nil
}

// Build finalizes the tree via the STR bulk-load algorithm (spec §4.2):
// sort leaves by X, partition into ceil(sqrt(ceil(N/M))) vertical slices of
// up to ceil(N/slices)*M items, sort each slice by Y and pack M-at-a-time
// into parent nodes, recursing until one root. Idempotent; a no-op on an
// empty tree.
func (t *STRtree) Build() {
	if t.built {
		return
	}
	t.built = true
	live := make([]*entry, 0, len(t.pending))
	for _, e := range t.pending {
		if !e.dead {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		t.root = nil
		return
	}
	leaves := make([]*node, len(live))
	for i, e := range live {
		leaves[i] = &node{env: e.env, leaves: []*entry{e}}
	}
	t.root = t.buildLevel(leaves)
}

// buildLevel packs a level of nodes into the next level up via STR slicing,
// recursing until a single root remains.
func (t *STRtree) buildLevel(level []*node) *node {
	if len(level) == 1 {
		return level[0]
	}

	numLeaves := len(level)
	numSlices := int(ceilSqrt(ceilDiv(numLeaves, t.capacity)))
	if numSlices < 1 {
		numSlices = 1
	}
	sliceSize := ceilDiv(numLeaves, numSlices) * t.capacity
	if sliceSize < 1 {
		sliceSize = numLeaves
	}

	sorted := append([]*node(nil), level...)
	sort.Slice(sorted, func(i, j int) bool {
		return centerX(sorted[i].env) < centerX(sorted[j].env)
	})

	var parents []*node
	for start := 0; start < len(sorted); start += sliceSize {
		end := start + sliceSize
		if end > len(sorted) {
			end = len(sorted)
		}
		slice := sorted[start:end]
		sort.Slice(slice, func(i, j int) bool {
			return centerY(slice[i].env) < centerY(slice[j].env)
		})
		for i := 0; i < len(slice); i += t.capacity {
			j := i + t.capacity
			if j > len(slice) {
				j = len(slice)
			}
			parents = append(parents, packNode(slice[i:j]))
		}
	}
	return t.buildLevel(parents)
}

func packNode(children []*node) *node {
	env := geom.NullEnvelope()
	for _, c := range children {
		env = env.ExpandToInclude(c.env)
	}
	return &node{env: env, children: children}
}

func centerX(e geom.Envelope) float64 { return (e.MinX + e.MaxX) / 2 }
func centerY(e geom.Envelope) float64 { return (e.MinY + e.MaxY) / 2 }

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func ceilSqrt(n int) int {
	if n <= 0 {
		return 1
	}
	r := 1
	for r*r < n {
		r++
	}
	return r
}

// Query visits every item whose envelope intersects q. No false negatives;
// a few false positives are acceptable (spec §4.2). visit may return false
// to stop the traversal early.
func (t *STRtree) Query(q geom.Envelope, visit func(Item) bool) {
	if !t.built {
		t.Build()
	}
	if t.root == nil {
		return
	}
	queryNode(t.root, q, visit)
}

func queryNode(n *node, q geom.Envelope, visit func(Item) bool) bool {
	if !n.env.Intersects(q) {
		return true
	}
	if n.leaves != nil {
		for _, e := range n.leaves {
			if e.dead {
				continue
			}
			if e.env.Intersects(q) {
				if !visit(e.item) {
					return false
				}
			}
		}
		return true
	}
	for _, c := range n.children {
		if !queryNode(c, q, visit) {
			return false
		}
	}
	return true
}

// QuerySlice is a convenience over Query collecting results into a slice.
func (t *STRtree) QuerySlice(q geom.Envelope) []Item {
	var out []Item
	t.Query(q, func(it Item) bool {
		out = append(out, it)
		return true
	})
	return out
}

// Remove tombstones the first matching (env, item) leaf entry. item
// equality is by Go equality (==) or, for pointer types, identity.
func (t *STRtree) Remove(env geom.Envelope, item Item) bool {
	for _, e := range t.pending {
		if e.dead || !e.env.Equals(env) {
			continue
		}
		if e.item == item {
			e.dead = true
			t.built = false // envelopes/topology may shrink; force a rebuild on next query
			return true
		}
	}
	return false
}

// DistanceFunc computes the distance between two items for NearestNeighbour.
type DistanceFunc func(a, b Item) float64

// NearestNeighbour returns the pair of items (one from each of t and other)
// with the smallest distance under dist (spec §4.2). This is a
// straightforward full-pair scan over both trees' contents; callers with
// large inputs should pre-filter with Query on a bounding envelope first.
func NearestNeighbour(t, other *STRtree, dist DistanceFunc) (Item, Item, float64) {
	t.Build()
	other.Build()
	var bestA, bestB Item
	best := mathInf()
	t.Query(geom.NewEnvelope(-mathInf(), mathInf(), -mathInf(), mathInf()), func(a Item) bool {
		other.Query(geom.NewEnvelope(-mathInf(), mathInf(), -mathInf(), mathInf()), func(b Item) bool {
			d := dist(a, b)
			if d < best {
				best, bestA, bestB = d, a, b
			}
			return true
		})
		return true
	})
	return bestA, bestB, best
}

func mathInf() float64 { return 1e308 }
