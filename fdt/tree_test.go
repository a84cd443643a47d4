package fdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *Tree {
	t.Helper()
	raw := newBlobBuilder().
		beginNode("").
		prop("compatible", []byte("acme,board\x00")).
		beginNode("soc").
		prop("compatible", []byte("simple-bus\x00acme,soc\x00")).
		beginNode("uart@10000000").
		prop("compatible", []byte("ns16550a\x00")).
		endNode().
		endNode().
		beginNode("chosen").
		prop("bootargs", []byte("console=ttyS0\x00")).
		endNode().
		endNode().
		end().
		build()
	tree, err := Parse(raw, Options{})
	require.NoError(t, err)
	return tree
}

func TestWalkOrder(t *testing.T) {
	tree := testTree(t)

	var names []string
	var depths []int
	tree.Walk(func(id NodeID, depth int) bool {
		names = append(names, tree.Node(id).Name)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"", "soc", "uart@10000000", "chosen"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}

func TestWalkEarlyStop(t *testing.T) {
	tree := testTree(t)
	visited := 0
	tree.Walk(func(NodeID, int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestFindCompatible(t *testing.T) {
	tree := testTree(t)

	hits := tree.FindCompatible("acme,soc")
	require.Len(t, hits, 1)
	assert.Equal(t, "soc", tree.Node(hits[0]).Name)

	hits = tree.FindCompatible("ns16550a")
	require.Len(t, hits, 1)
	assert.Equal(t, "/soc/uart@10000000", tree.Path(hits[0]))

	assert.Empty(t, tree.FindCompatible("missing"))
}

func TestFindNodePaths(t *testing.T) {
	tree := testTree(t)

	for _, path := range []string{"", "/"} {
		id, err := tree.FindNode(path)
		require.NoError(t, err)
		assert.Equal(t, tree.Root(), id)
	}

	id, err := tree.FindNode("/soc/uart@10000000")
	require.NoError(t, err)
	assert.Equal(t, "uart@10000000", tree.Node(id).Name)

	// Trailing slash is tolerated.
	id2, err := tree.FindNode("/soc/uart@10000000/")
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	_, err = tree.FindNode("/soc/missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHandlesOutOfRange(t *testing.T) {
	tree := testTree(t)

	assert.Nil(t, tree.Node(NodeID(tree.NumNodes())))
	assert.Nil(t, tree.Node(NoNode))
	assert.Nil(t, tree.Property(PropID(tree.NumProperties())))
	assert.Nil(t, tree.Children(NoNode))

	_, err := tree.PropertyNamed(NoNode, "compatible")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = tree.ChildNamed(NodeID(99), "x")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "", tree.Path(NodeID(99)))
}

func TestInterpretByHandle(t *testing.T) {
	tree := testTree(t)
	chosen, err := tree.FindNode("/chosen")
	require.NoError(t, err)
	pids := tree.Properties(chosen)
	require.Len(t, pids, 1)

	v := tree.Interpret(pids[0])
	assert.Equal(t, ValueString, v.Kind)
	assert.Equal(t, "console=ttyS0", v.Str)

	// An out-of-range handle degrades to the opaque fallback.
	assert.Equal(t, ValueBytes, tree.Interpret(PropID(99)).Kind)
}
