package topo

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// frame holds one level of the iterative DFS: the node and a cursor into
// its adjacency list.
type frame struct {
	node *core.Node
	next int
}

// DetectCycle reports whether any cycle is reachable from startID.
//
// The search colors nodes white (unvisited), gray (on the active path), and
// black (done). A branch into a gray node is a back edge: the answer is
// true immediately. Exhausting the reachable set without a back edge
// answers false.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
func DetectCycle(g *core.Graph, startID string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	start, err := g.Node(startID)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	state := make(map[string]int, g.NodeCount())
	stack := []frame{{node: start}}
	state[start.ID] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		branches := top.node.Branches()

		if top.next >= len(branches) {
			// All descendants explored; retire from the active path.
			state[top.node.ID] = black
			stack = stack[:len(stack)-1]
			continue
		}

		b := branches[top.next]
		top.next++

		switch state[b.To] {
		case gray:
			// Back edge into the active path.
			return true, nil
		case white:
			dst, err := g.Node(b.To)
			if err != nil {
				return false, fmt.Errorf("topo: resolve neighbor %q of %q: %w", b.To, top.node.ID, err)
			}
			state[dst.ID] = gray
			stack = append(stack, frame{node: dst})
		}
	}

	return false, nil
}
