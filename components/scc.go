package components

import "github.com/ariadnegraph/ariadne/core"

// sccFrame holds one level of the iterative finish-order sweep: the node ID
// and a cursor into its adjacency slice.
type sccFrame struct {
	id   string
	next int
}

// StronglyConnected returns the strongly connected components of g via
// Kosaraju's algorithm: pass one records depth-first finish order over the
// forward adjacency, pass two flood-fills the transposed adjacency in
// reverse finish order, each fill yielding one component.
//
// Two nodes share a component exactly when each can reach the other along
// branch directions. A node on no cycle — an isolated node included — forms
// a singleton. Both passes run on adjacency indexes built once, so the
// whole call is O(V + E).
func StronglyConnected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	fwd := forwardIndex(g)
	finish := finishOrder(g, fwd)
	rev := transposeIndex(g)

	seen := make(map[string]struct{}, len(finish))
	var comps [][]string
	for i := len(finish) - 1; i >= 0; i-- {
		id := finish[i]
		if _, ok := seen[id]; ok {
			continue
		}
		comps = append(comps, flood(id, rev, seen))
	}

	return comps, nil
}

// finishOrder performs the first Kosaraju pass: an iterative depth-first
// sweep over every node in insertion order, appending a node only once all
// of its descendants are exhausted.
func finishOrder(g *core.Graph, fwd map[string][]string) []string {
	nodes := g.Nodes()
	seen := make(map[string]struct{}, len(nodes))
	finish := make([]string, 0, len(nodes))

	for _, n := range nodes {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		stack := []sccFrame{{id: n.ID}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := fwd[top.id]

			if top.next >= len(nbrs) {
				finish = append(finish, top.id)
				stack = stack[:len(stack)-1]
				continue
			}

			nb := nbrs[top.next]
			top.next++
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				stack = append(stack, sccFrame{id: nb})
			}
		}
	}

	return finish
}
