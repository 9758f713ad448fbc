package components

import "github.com/ariadnegraph/ariadne/core"

// Connected returns the weakly connected components of g: branch direction
// is ignored, so two nodes share a component exactly when some undirected
// path joins them. Every node appears in exactly one component; an isolated
// node forms a singleton.
//
// Components are emitted in insertion order of their first-seen node, and
// nodes within a component in flood-fill discovery order, so the result is
// deterministic for a fixed construction sequence.
func Connected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	idx := undirectedIndex(g)
	seen := make(map[string]struct{}, g.NodeCount())

	var comps [][]string
	for _, n := range g.Nodes() {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		comps = append(comps, flood(n.ID, idx, seen))
	}

	return comps, nil
}

// CountConnected returns the number of weakly connected components of g.
func CountConnected(g *core.Graph) (int, error) {
	comps, err := Connected(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// flood collects every node reachable from start over idx, marking seen as
// it goes. The queue advances by cursor so already-processed entries double
// as the component member list.
func flood(start string, idx map[string][]string, seen map[string]struct{}) []string {
	queue := []string{start}
	seen[start] = struct{}{}

	for head := 0; head < len(queue); head++ {
		for _, nb := range idx[queue[head]] {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}

	return queue
}
