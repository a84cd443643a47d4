package fdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The minimal scenario: one root node named "", one property whose value
// interprets as the string "foo".
func TestParseMinimalBlob(t *testing.T) {
	tree, err := Parse(minimalBlob(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, tree.NumNodes())
	assert.Equal(t, 1, tree.NumProperties())

	root := tree.Node(tree.Root())
	require.NotNil(t, root)
	assert.Equal(t, "", root.Name)
	assert.Equal(t, NoNode, root.Parent)

	p, err := tree.PropertyNamed(tree.Root(), "compatible")
	require.NoError(t, err)
	v := InterpretNamed(p.Name, p.Value)
	assert.Equal(t, ValueStringList, v.Kind)
	assert.Equal(t, []string{"foo"}, v.Strs)

	sv := Interpret(p.Value)
	assert.Equal(t, ValueString, sv.Kind)
	assert.Equal(t, "foo", sv.Str)
}

func TestParseNesting(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		prop("#address-cells", []byte{0, 0, 0, 2}).
		beginNode("cpus").
		beginNode("cpu@0").
		prop("device_type", []byte("cpu\x00")).
		endNode().
		beginNode("cpu@1").
		prop("device_type", []byte("cpu\x00")).
		endNode().
		endNode().
		beginNode("memory@80000000").
		endNode().
		endNode().
		end().
		build()
	tree, err := Parse(raw, Options{})
	require.NoError(t, err)

	assert.Equal(t, 5, tree.NumNodes())
	root := tree.Root()
	require.Len(t, tree.Children(root), 2)

	cpus, err := tree.ChildNamed(root, "cpus")
	require.NoError(t, err)
	kids := tree.Children(cpus)
	require.Len(t, kids, 2)
	// Sibling order is document order.
	assert.Equal(t, "cpu@0", tree.Node(kids[0]).Name)
	assert.Equal(t, "cpu@1", tree.Node(kids[1]).Name)
	assert.Equal(t, root, tree.Node(cpus).Parent)

	assert.True(t, tree.HasCPUs())
	assert.Equal(t, 2, tree.NumCPUs())

	id, err := tree.FindNode("/cpus/cpu@1")
	require.NoError(t, err)
	assert.Equal(t, "/cpus/cpu@1", tree.Path(id))
	assert.Equal(t, "/", tree.Path(root))
}

func TestParseMissingEndNode(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		prop("compatible", []byte("foo\x00")).
		end(). // FDT_END_NODE removed
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrUnbalancedNodes)
}

func TestParseExtraEndNode(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		endNode().
		endNode().
		end().
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrUnbalancedNodes)
}

func TestParsePropertyOutsideNode(t *testing.T) {
	raw := newBlobBuilder().
		prop("compatible", []byte("foo\x00")).
		end().
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrPropertyOutsideNode)
}

func TestParseMissingRoot(t *testing.T) {
	raw := newBlobBuilder().end().build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrMissingRoot)
}

func TestParseSecondTopLevelNode(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		endNode().
		beginNode("again").
		endNode().
		end().
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseTruncatedPropertyValue(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		propLying("reg", 1<<16, []byte{1, 2, 3, 4}).
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseBadPropertyNameOffset(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		propAt(0xffff, []byte{1}).
		endNode().
		end().
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestParseNopsIgnored(t *testing.T) {
	raw := newBlobBuilder().
		nop().
		beginNode("").
		nop().
		prop("compatible", []byte("foo\x00")).
		nop().
		endNode().
		nop().
		end().
		build()
	tree, err := Parse(raw, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, tree.NumNodes())
	assert.Equal(t, 1, tree.NumProperties())
}

func TestDuplicatePropertyPolicies(t *testing.T) {
	build := func() []byte {
		return newBlobBuilder().
			beginNode("").
			prop("status", []byte("okay\x00")).
			prop("status", []byte("disabled\x00")).
			endNode().
			end().
			build()
	}

	tree, err := Parse(build(), Options{}) // default: last wins
	require.NoError(t, err)
	p, err := tree.PropertyNamed(tree.Root(), "status")
	require.NoError(t, err)
	assert.Equal(t, "disabled", InterpretNamed(p.Name, p.Value).Str)
	assert.Equal(t, 1, tree.NumProperties())

	tree, err = Parse(build(), Options{DuplicateProps: DupFirstWins})
	require.NoError(t, err)
	p, err = tree.PropertyNamed(tree.Root(), "status")
	require.NoError(t, err)
	assert.Equal(t, "okay", InterpretNamed(p.Name, p.Value).Str)

	_, err = Parse(build(), Options{DuplicateProps: DupReject})
	require.ErrorIs(t, err, ErrDuplicateProperty)
}

func TestPhandleIndex(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		beginNode("intc").
		prop("phandle", []byte{0, 0, 0, 1}).
		endNode().
		beginNode("gpio").
		prop("linux,phandle", []byte{0, 0, 0, 2}).
		endNode().
		beginNode("serial").
		prop("interrupt-parent", []byte{0, 0, 0, 1}).
		endNode().
		endNode().
		end().
		build()
	tree, err := Parse(raw, Options{})
	require.NoError(t, err)

	intc, err := tree.ResolvePhandle(1)
	require.NoError(t, err)
	assert.Equal(t, "intc", tree.Node(intc).Name)
	assert.Equal(t, uint32(1), tree.Node(intc).Phandle)

	gpio, err := tree.ResolvePhandle(2)
	require.NoError(t, err)
	assert.Equal(t, "gpio", tree.Node(gpio).Name)

	_, err = tree.ResolvePhandle(3)
	require.ErrorIs(t, err, ErrNotFound)

	// Resolving an interrupt-parent reference lands on the phandle owner.
	serial, err := tree.FindNode("/serial")
	require.NoError(t, err)
	ip, err := tree.PropertyNamed(serial, "interrupt-parent")
	require.NoError(t, err)
	v := InterpretNamed(ip.Name, ip.Value)
	assert.True(t, v.PhandleRef)
	target, err := tree.ResolvePhandle(v.U32)
	require.NoError(t, err)
	assert.Equal(t, intc, target)
}

func TestDuplicatePhandle(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		beginNode("a").
		prop("phandle", []byte{0, 0, 0, 7}).
		endNode().
		beginNode("b").
		prop("phandle", []byte{0, 0, 0, 7}).
		endNode().
		endNode().
		end().
		build()
	_, err := Parse(raw, Options{})
	require.ErrorIs(t, err, ErrDuplicatePhandle)
}

// Parsing the same bytes twice yields structurally identical trees.
func TestParseIdempotent(t *testing.T) {
	raw := newBlobBuilder().
		beginNode("").
		prop("compatible", []byte("acme,board\x00")).
		beginNode("cpus").
		prop("#size-cells", []byte{0, 0, 0, 0}).
		endNode().
		endNode().
		end().
		build()

	a, err := Parse(raw, Options{})
	require.NoError(t, err)
	b, err := Parse(raw, Options{})
	require.NoError(t, err)

	require.Equal(t, a.NumNodes(), b.NumNodes())
	require.Equal(t, a.NumProperties(), b.NumProperties())
	for i := 0; i < a.NumNodes(); i++ {
		na, nb := a.Node(NodeID(i)), b.Node(NodeID(i))
		assert.Equal(t, na.Name, nb.Name)
		assert.Equal(t, na.Children, nb.Children)
		assert.Equal(t, na.Props, nb.Props)
	}
	for i := 0; i < a.NumProperties(); i++ {
		pa, pb := a.Property(PropID(i)), b.Property(PropID(i))
		assert.Equal(t, pa.Name, pb.Name)
		assert.Equal(t, pa.Value, pb.Value)
	}
}

// In zero-copy mode values alias the input buffer; in owned mode they
// survive the buffer being clobbered.
func TestOwnershipModes(t *testing.T) {
	raw := minimalBlob()
	owned, err := Parse(raw, Options{})
	require.NoError(t, err)
	shared, err := Parse(raw, Options{ZeroCopy: true})
	require.NoError(t, err)

	for i := range raw {
		raw[i] = 0xff
	}

	p, err := owned.PropertyNamed(owned.Root(), "compatible")
	require.NoError(t, err)
	assert.Equal(t, []byte("foo\x00"), p.Value)

	p, err = shared.PropertyNamed(shared.Root(), "compatible")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, p.Value)
}
