package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariadnegraph/ariadne/core"
)

// buildPair returns a graph with nodes A and B.
func buildPair(t *testing.T) (*core.Graph, *core.Node, *core.Node) {
	t.Helper()
	g := core.NewGraph()
	a, err := g.AddNode("A")
	require.NoError(t, err)
	b, err := g.AddNode("B")
	require.NoError(t, err)

	return g, a, b
}

// TestAddBranch_ByIDAndByHandle verifies both reference forms resolve to
// the same registered endpoints.
func TestAddBranch_ByIDAndByHandle(t *testing.T) {
	g, a, b := buildPair(t)

	br, err := g.AddBranch("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "A", br.From)
	assert.Equal(t, "B", br.To)

	br2, err := g.AddBranch(b, a)
	require.NoError(t, err)
	assert.Equal(t, "B", br2.From)
	assert.Equal(t, "A", br2.To)

	assert.True(t, g.HasBranch("A", "B"))
	assert.True(t, g.HasBranch("B", "A"))
}

// TestAddBranch_MissingEndpoint verifies a branch never creates its missing
// endpoint and always fails with ErrNodeNotFound.
func TestAddBranch_MissingEndpoint(t *testing.T) {
	g, _, _ := buildPair(t)

	_, err := g.AddBranch("A", "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.HasNode("Z"))

	_, err = g.AddBranch("Z", "A")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Zero(t, g.BranchCount())
}

// TestAddBranch_CrossGraphHandle verifies a handle from another graph
// instance is rejected even when the ID matches.
func TestAddBranch_CrossGraphHandle(t *testing.T) {
	g, _, _ := buildPair(t)

	other := core.NewGraph()
	foreignA, err := other.AddNode("A")
	require.NoError(t, err)

	_, err = g.AddBranch(foreignA, "B")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestAddBranch_SelfLoop verifies self-loops are rejected.
func TestAddBranch_SelfLoop(t *testing.T) {
	g, a, _ := buildPair(t)

	_, err := g.AddBranch("A", "A")
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.AddBranch(a, a)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

// TestAddBranch_BadRef verifies unsupported reference types are rejected.
func TestAddBranch_BadRef(t *testing.T) {
	g, _, _ := buildPair(t)

	_, err := g.AddBranch(42, "B")
	assert.ErrorIs(t, err, core.ErrBadNodeRef)

	_, err = g.AddBranch((*core.Node)(nil), "B")
	assert.ErrorIs(t, err, core.ErrBadNodeRef)
}

// TestAddBranch_Weight verifies the default weight and WithWeight.
func TestAddBranch_Weight(t *testing.T) {
	g, _, _ := buildPair(t)

	plain, err := g.AddBranch("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, plain.Weight)
	assert.False(t, plain.Weighted())

	heavy, err := g.AddBranch("B", "A", core.WithWeight(3.5))
	require.NoError(t, err)
	assert.Equal(t, 3.5, heavy.Weight)
	assert.True(t, heavy.Weighted())
}

// TestAddBranch_AdjacencyRegistration verifies the branch lands in the
// source node's adjacency list and in the graph collection.
func TestAddBranch_AdjacencyRegistration(t *testing.T) {
	g, a, _ := buildPair(t)

	br, err := g.AddBranch("A", "B")
	require.NoError(t, err)

	require.Len(t, a.Branches(), 1)
	assert.Same(t, br, a.Branches()[0])
	require.Len(t, g.Branches(), 1)
	assert.Same(t, br, g.Branches()[0])
}

// TestBranchCountMatchesListing checks branch-count() == len(list-branches()).
func TestBranchCountMatchesListing(t *testing.T) {
	g, _, _ := buildPair(t)
	_, err := g.AddNode("C")
	require.NoError(t, err)

	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		_, err = g.AddBranch(pair[0], pair[1])
		require.NoError(t, err)
	}
	assert.Equal(t, g.BranchCount(), len(g.Branches()))
	assert.Equal(t, 3, g.BranchCount())
}

// TestRemoveBranch verifies detachment from both the adjacency list and the
// collection, and the no-op on unknown branches.
func TestRemoveBranch(t *testing.T) {
	g, a, _ := buildPair(t)

	br, err := g.AddBranch("A", "B")
	require.NoError(t, err)
	keep, err := g.AddBranch("B", "A")
	require.NoError(t, err)

	g.RemoveBranch(br)
	assert.Equal(t, 1, g.BranchCount())
	assert.False(t, g.HasBranch("A", "B"))
	assert.Empty(t, a.Branches())

	// Unknown branch: no-op.
	g.RemoveBranch(br)
	g.RemoveBranch(nil)
	assert.Equal(t, 1, g.BranchCount())
	assert.True(t, g.HasBranch("B", "A"))
	_ = keep
}

// TestBranches_CachedView verifies the snapshot is stable between mutations
// and rebuilt afterwards.
func TestBranches_CachedView(t *testing.T) {
	g, _, _ := buildPair(t)
	_, err := g.AddBranch("A", "B")
	require.NoError(t, err)

	first := g.Branches()
	second := g.Branches()
	assert.Equal(t, first, second)
	assert.Len(t, first, 1)

	_, err = g.AddBranch("B", "A")
	require.NoError(t, err)
	assert.Len(t, g.Branches(), 2)
	// The pre-mutation snapshot is unaffected by the rebuild.
	assert.Len(t, first, 1)
}

// TestClone verifies deep-copied topology with shared values.
func TestClone(t *testing.T) {
	g, _, _ := buildPair(t)
	_, err := g.AddBranch("A", "B", core.WithWeight(2))
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.NodeCount(), c.NodeCount())
	assert.Equal(t, g.BranchCount(), c.BranchCount())
	assert.True(t, c.HasBranch("A", "B"))

	// Mutating the clone leaves the original untouched.
	c.RemoveNode("A")
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasBranch("A", "B"))
	assert.False(t, c.HasNode("A"))

	// Weight semantics carried over.
	cb := c.Branches()
	require.Empty(t, cb)
	gb := g.Branches()
	require.Len(t, gb, 1)
	assert.True(t, gb[0].Weighted())
}
