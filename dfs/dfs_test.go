package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariadnegraph/ariadne/core"
	"github.com/ariadnegraph/ariadne/dfs"
)

// build constructs a graph from id pairs, adding endpoints on first use.
func build(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		for _, id := range p {
			if !g.HasNode(id) {
				_, err := g.AddNode(id)
				require.NoError(t, err)
			}
		}
		_, err := g.AddBranch(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// TestDFS_NilGraph verifies ErrGraphNil.
func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestDFS_StartNotFound verifies ErrStartNotFound.
func TestDFS_StartNotFound(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	_, err := dfs.DFS(g, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

// TestDFS_PreOrder verifies left-to-right recursive pre-order: the first
// branch of A is explored to exhaustion before the second.
func TestDFS_PreOrder(t *testing.T) {
	// A → B, A → E, B → C, B → D
	g := build(t,
		[2]string{"A", "B"}, [2]string{"A", "E"},
		[2]string{"B", "C"}, [2]string{"B", "D"},
	)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
}

// TestDFS_SharedDescendant verifies a node reachable via two paths is
// visited exactly once, on its first pop.
func TestDFS_SharedDescendant(t *testing.T) {
	// Diamond: A → B, A → C, B → D, C → D
	g := build(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
}

// TestDFS_Cycle verifies termination and exactly-once visiting on cycles.
func TestDFS_Cycle(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestDFS_UnreachableExcluded verifies unreachable nodes never appear.
func TestDFS_UnreachableExcluded(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"X", "Y"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, res.Order)
}

// TestDFS_DeepChain verifies the iterative stack survives a chain far
// deeper than comfortable recursion.
func TestDFS_DeepChain(t *testing.T) {
	g := core.NewGraph()
	const depth = 200_000
	prev, err := g.AddNode(0)
	require.NoError(t, err)
	for i := 1; i < depth; i++ {
		next, err := g.AddNode(i)
		require.NoError(t, err)
		_, err = g.AddBranch(prev, next)
		require.NoError(t, err)
		prev = next
	}

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	assert.Len(t, res.Order, depth)
	assert.Equal(t, "0", res.Order[0])
}

// TestDFS_OnVisitHook verifies hook order and error abort.
func TestDFS_OnVisitHook(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	var seen []string
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(n *core.Node) error {
		seen = append(seen, n.ID)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "A", dfs.WithOnVisit(func(n *core.Node) error {
		if n.ID == "B" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestDFS_ContextCancellation verifies a cancelled context aborts the walk.
func TestDFS_ContextCancellation(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestIterator_MatchesEagerOrder verifies the lazy walk reproduces DFS.
func TestIterator_MatchesEagerOrder(t *testing.T) {
	g := build(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
		[2]string{"D", "A"},
	)

	eager, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	it, err := dfs.NewIterator(g, "A")
	require.NoError(t, err)

	var lazy []string
	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		lazy = append(lazy, id)
	}
	assert.Equal(t, eager.Order, lazy)

	_, ok := it.Next()
	assert.False(t, ok)
}

// TestIterator_Validation verifies constructor errors.
func TestIterator_Validation(t *testing.T) {
	g := build(t, [2]string{"A", "B"})

	_, err := dfs.NewIterator(g, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)

	_, err = dfs.NewIterator(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
