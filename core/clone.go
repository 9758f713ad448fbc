// File: clone.go
// Role: deep copy of graph topology.
package core

// Clone returns a new Graph with the same nodes and branches as g.
// Topology is deep-copied: the clone owns fresh Node and Branch records, so
// mutating either graph never affects the other. Stored Values are shared,
// not copied.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph()

	for _, id := range g.order {
		n := g.nodes[id]
		out.nodes[id] = &Node{ID: id, Value: n.Value}
		out.order = append(out.order, id)
	}

	for _, b := range g.branches {
		nb := &Branch{From: b.From, To: b.To, Weight: b.Weight, weighted: b.weighted}
		out.branches = append(out.branches, nb)
		src := out.nodes[nb.From]
		src.out = append(src.out, nb)
	}

	return out
}
