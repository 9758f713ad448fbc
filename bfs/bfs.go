package bfs

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// walker encapsulates mutable BFS state.
//
// The queue is consumed through a head cursor instead of re-slicing or
// shifting, so dequeuing never pays an O(n) front removal.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []*core.Node
	head    int
	visited map[string]struct{}
	order   []string
	parents map[string]string
	start   string
}

// BFS runs breadth-first search on g starting from startID and returns the
// full visit order. Only outgoing branches are followed; each reachable
// node is visited exactly once.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input, the context
// error on cancellation, or any error returned by the OnVisit hook.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	for w.head < len(w.queue) {
		n, err := w.step()
		if err != nil {
			return nil, err
		}
		if w.opts.OnVisit != nil {
			if err = w.opts.OnVisit(n); err != nil {
				return nil, fmt.Errorf("bfs: OnVisit hook for %q: %w", n.ID, err)
			}
		}
	}

	return &Result{Order: w.order, start: w.start, parents: w.parents}, nil
}

// Find runs the same walk but stops at the first node pred accepts.
// The returned Order contains every node visited up to and including the
// match; Found/Ok report the match itself.
func Find(g *core.Graph, startID string, pred func(n *core.Node) bool, opts ...Option) (*FindResult, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	for w.head < len(w.queue) {
		n, err := w.step()
		if err != nil {
			return nil, err
		}
		if pred(n) {
			return &FindResult{Order: w.order, Found: n, Ok: true}, nil
		}
	}

	return &FindResult{Order: w.order}, nil
}

// newWalker validates inputs and seeds the queue with the start node.
func newWalker(g *core.Graph, startID string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, err := g.Node(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]*core.Node, 0, n),
		visited: make(map[string]struct{}, n),
		order:   make([]string, 0, n),
		parents: make(map[string]string, n),
		start:   start.ID,
	}
	w.enqueue(start)

	return w, nil
}

// enqueue marks the node visited and appends it to the queue. Marking at
// enqueue time keeps a node from being queued twice via different branches.
func (w *walker) enqueue(n *core.Node) {
	w.visited[n.ID] = struct{}{}
	w.queue = append(w.queue, n)
}

// step dequeues one node, records it in the visit order, and enqueues its
// unvisited outgoing neighbors in adjacency order.
func (w *walker) step() (*core.Node, error) {
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	n := w.queue[w.head]
	w.head++
	w.order = append(w.order, n.ID)

	for _, b := range n.Branches() {
		if _, seen := w.visited[b.To]; seen {
			continue
		}
		dst, err := w.graph.Node(b.To)
		if err != nil {
			return nil, fmt.Errorf("bfs: resolve neighbor %q of %q: %w", b.To, n.ID, err)
		}
		w.parents[dst.ID] = n.ID
		w.enqueue(dst)
	}

	return n, nil
}
