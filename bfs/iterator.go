package bfs

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// Iterator is the lazy, pull-based form of the breadth-first walk. It holds
// the resumable state — the queue cursor and the visited set — and advances
// only when Next is called, suspending immediately after yielding one node.
//
// An Iterator is not rewindable; restarting means constructing a new one
// from the same arguments. Abandoning it is sufficient cancellation.
// Mutating the graph while an Iterator is in flight is undefined.
type Iterator struct {
	graph   *core.Graph
	queue   []*core.Node
	head    int
	visited map[string]struct{}
}

// NewIterator prepares a lazy breadth-first walk from startID.
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
func NewIterator(g *core.Graph, startID string) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	start, err := g.Node(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	it := &Iterator{
		graph:   g,
		visited: map[string]struct{}{start.ID: {}},
		queue:   []*core.Node{start},
	}

	return it, nil
}

// Next produces the next node ID in breadth-first order, or ok == false at
// end of sequence. The sequence matches the eager BFS Order exactly.
func (it *Iterator) Next() (id string, ok bool) {
	if it.head >= len(it.queue) {
		return "", false
	}

	n := it.queue[it.head]
	it.head++

	for _, b := range n.Branches() {
		if _, seen := it.visited[b.To]; seen {
			continue
		}
		dst, err := it.graph.Node(b.To)
		if err != nil {
			// Concurrent mutation is undefined behavior; skip the orphan.
			continue
		}
		it.visited[dst.ID] = struct{}{}
		it.queue = append(it.queue, dst)
	}

	return n.ID, true
}
