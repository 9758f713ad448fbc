package dfs

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// Iterator is the lazy, pull-based form of the depth-first walk. It holds
// the resumable state — the explicit stack and the visited set — and yields
// one node per Next call, in exactly the eager DFS order.
//
// An Iterator is not rewindable; restarting means constructing a new one.
// Abandoning it is sufficient cancellation. Mutating the graph while an
// Iterator is in flight is undefined.
type Iterator struct {
	graph   *core.Graph
	stack   []*core.Node
	visited map[string]struct{}
}

// NewIterator prepares a lazy depth-first walk from startID.
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
func NewIterator(g *core.Graph, startID string) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	start, err := g.Node(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	return &Iterator{
		graph:   g,
		stack:   []*core.Node{start},
		visited: make(map[string]struct{}),
	}, nil
}

// Next produces the next node ID in depth-first pre-order, or ok == false
// at end of sequence.
func (it *Iterator) Next() (id string, ok bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if _, seen := it.visited[top.ID]; seen {
			continue
		}
		it.visited[top.ID] = struct{}{}

		branches := top.Branches()
		for i := len(branches) - 1; i >= 0; i-- {
			b := branches[i]
			if _, seen := it.visited[b.To]; seen {
				continue
			}
			dst, err := it.graph.Node(b.To)
			if err != nil {
				// Concurrent mutation is undefined behavior; skip the orphan.
				continue
			}
			it.stack = append(it.stack, dst)
		}

		return top.ID, true
	}

	return "", false
}
