package dfs

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// DFS runs an iterative depth-first search on g starting from startID and
// returns the pre-order visit sequence.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input, the context
// error on cancellation, or any error returned by the OnVisit hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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
	visited := make(map[string]struct{}, n)
	order := make([]string, 0, n)
	stack := make([]*core.Node, 0, n)
	stack = append(stack, start)

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// The same node may sit on the stack several times when several
		// branches lead to it; only the first pop counts.
		if _, seen := visited[top.ID]; seen {
			continue
		}
		visited[top.ID] = struct{}{}
		order = append(order, top.ID)

		if o.OnVisit != nil {
			if err = o.OnVisit(top); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", top.ID, err)
			}
		}

		// Push in reverse adjacency order so the first branch is explored
		// first, matching recursive left-to-right pre-order.
		branches := top.Branches()
		for i := len(branches) - 1; i >= 0; i-- {
			b := branches[i]
			if _, seen := visited[b.To]; seen {
				continue
			}
			dst, err := g.Node(b.To)
			if err != nil {
				return nil, fmt.Errorf("dfs: resolve neighbor %q of %q: %w", b.To, top.ID, err)
			}
			stack = append(stack, dst)
		}
	}

	return &Result{Order: order}, nil
}
