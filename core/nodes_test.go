package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariadnegraph/ariadne/core"
)

// TestAddNode_ValueAsID verifies the value-as-ID convenience for textual
// and numeric primitives.
func TestAddNode_ValueAsID(t *testing.T) {
	g := core.NewGraph()

	a, err := g.AddNode("A")
	require.NoError(t, err)
	assert.Equal(t, "A", a.ID)
	assert.Equal(t, "A", a.Value)

	n, err := g.AddNode(42)
	require.NoError(t, err)
	assert.Equal(t, "42", n.ID)

	f, err := g.AddNode(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.5", f.ID)
}

// TestAddNode_ExplicitID verifies WithID takes precedence over the value.
func TestAddNode_ExplicitID(t *testing.T) {
	g := core.NewGraph()

	n, err := g.AddNode("payload", core.WithID("k1"))
	require.NoError(t, err)
	assert.Equal(t, "k1", n.ID)
	assert.Equal(t, "payload", n.Value)

	_, err = g.AddNode("other", core.WithID(""))
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

// TestAddNode_SynthesizedID verifies non-primitive values get a unique
// synthesized identity.
func TestAddNode_SynthesizedID(t *testing.T) {
	g := core.NewGraph()

	type payload struct{ x int }
	a, err := g.AddNode(payload{1})
	require.NoError(t, err)
	b, err := g.AddNode(payload{1})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

// TestAddNode_Duplicate verifies ID collisions fail with ErrDuplicateNode,
// including the documented primitive-aliasing foot-gun.
func TestAddNode_Duplicate(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddNode("A")
	require.NoError(t, err)

	// Same primitive value, no explicit ID: collides by design.
	_, err = g.AddNode("A")
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = g.AddNode("whatever", core.WithID("A"))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

// TestNodeCountMatchesListing checks size() == len(list-nodes()) across a
// mutation sequence.
func TestNodeCountMatchesListing(t *testing.T) {
	g := core.NewGraph()

	for _, id := range []string{"A", "B", "C", "D"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	assert.Equal(t, g.NodeCount(), len(g.Nodes()))
	assert.Equal(t, 4, g.NodeCount())

	g.RemoveNode("B")
	assert.Equal(t, g.NodeCount(), len(g.Nodes()))
	assert.Equal(t, 3, g.NodeCount())
}

// TestNodes_InsertionOrder verifies the cached view preserves insertion
// order and reflects removals.
func TestNodes_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}

	ids := func() []string {
		out := make([]string, 0, g.NodeCount())
		for _, n := range g.Nodes() {
			out = append(out, n.ID)
		}

		return out
	}

	assert.Equal(t, []string{"C", "A", "B"}, ids())

	g.RemoveNode("A")
	assert.Equal(t, []string{"C", "B"}, ids())
}

// TestRemoveNode_Cascade verifies removal drops every branch where the node
// is source or destination.
func TestRemoveNode_Cascade(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	_, err := g.AddBranch("A", "B")
	require.NoError(t, err)
	_, err = g.AddBranch("B", "C")
	require.NoError(t, err)
	_, err = g.AddBranch("C", "A")
	require.NoError(t, err)

	g.RemoveNode("B")

	assert.Equal(t, 1, g.BranchCount())
	assert.False(t, g.HasBranch("A", "B"))
	assert.False(t, g.HasBranch("B", "C"))
	assert.True(t, g.HasBranch("C", "A"))

	a, err := g.Node("A")
	require.NoError(t, err)
	assert.Empty(t, a.Branches())
}

// TestRemoveNode_UnknownIsNoop verifies removing a missing node does not
// error or disturb state.
func TestRemoveNode_UnknownIsNoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("A")
	require.NoError(t, err)

	g.RemoveNode("missing")
	assert.Equal(t, 1, g.NodeCount())
}

// TestNodeLookup covers Node and HasNode.
func TestNodeLookup(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("A")
	require.NoError(t, err)

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.ID)
	assert.True(t, g.HasNode("A"))

	_, err = g.Node("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.HasNode("Z"))
}

// TestClear verifies Clear returns the graph to its empty state.
func TestClear(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("A")
	require.NoError(t, err)
	_, err = g.AddNode("B")
	require.NoError(t, err)
	_, err = g.AddBranch("A", "B")
	require.NoError(t, err)

	g.Clear()

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.BranchCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Branches())

	// The container remains usable after Clear.
	_, err = g.AddNode("A")
	assert.NoError(t, err)
}
