package strtree

import (
	"fmt"
	"testing"

	"github.com/planarith/geom/pkg/geom"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

type boxItem struct {
	name string
	env  geom.Envelope
}

func (b boxItem) Bounds() geom.Envelope { return b.env }

func TestSTRtreeQueryFindsAllOverlapping(t *testing.T) {
	tree := New(4)
	var items []boxItem
	for i := 0; i < 50; i++ {
		env := geom.NewEnvelope(float64(i), float64(i)+1, float64(i), float64(i)+1)
		it := boxItem{name: fmt.Sprintf("item-%d", i), env: env}
		items = append(items, it)
		tree.Insert(env, it)
	}
	tree.Build()

	results := tree.QuerySlice(geom.NewEnvelope(10, 10, 10, 10))
	require.True(t, len(results) >= 1, "query should find item(s) covering point (10,10)")
	found := false
	for _, r := range results {
		if r.(boxItem).name == "item-10" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSTRtreeQueryEmptyBeforeInsert(t *testing.T) {
	tree := New(4)
	results := tree.QuerySlice(geom.NewEnvelope(0, 1, 0, 1))
	assert.EqualValuesf(t, len(results), 0, "query before any insert yields empty")
}

func TestSTRtreeRemoveTombstones(t *testing.T) {
	tree := New(4)
	env := geom.NewEnvelope(0, 1, 0, 1)
	it := boxItem{name: "only", env: env}
	tree.Insert(env, it)
	tree.Build()
	require.EqualValuesf(t, len(tree.QuerySlice(env)), 1, "present before remove")

	ok := tree.Remove(env, it)
	assert.True(t, ok)
	assert.EqualValuesf(t, len(tree.QuerySlice(env)), 0, "absent after remove")
}

func TestSTRtreeBuildIsIdempotent(t *testing.T) {
	tree := New(4)
	tree.Insert(geom.NewEnvelope(0, 1, 0, 1), boxItem{name: "a", env: geom.NewEnvelope(0, 1, 0, 1)})
	tree.Build()
	root1 := tree.root
	tree.Build()
	assert.True(t, tree.root == root1)
}
