// File: index.go
// Role: one-shot adjacency indexes over the branch collection.
//
// The core adjacency list is forward-only; these indexes add the undirected
// and reversed orientations a component sweep needs without an O(V·E)
// rescan.
package components

import "github.com/ariadnegraph/ariadne/core"

// undirectedIndex maps each node to every neighbor it shares a branch with,
// in either direction, in branch insertion order.
func undirectedIndex(g *core.Graph) map[string][]string {
	idx := make(map[string][]string, g.NodeCount())
	for _, b := range g.Branches() {
		idx[b.From] = append(idx[b.From], b.To)
		idx[b.To] = append(idx[b.To], b.From)
	}

	return idx
}

// forwardIndex maps each node to its outgoing neighbors in branch insertion
// order.
func forwardIndex(g *core.Graph) map[string][]string {
	idx := make(map[string][]string, g.NodeCount())
	for _, b := range g.Branches() {
		idx[b.From] = append(idx[b.From], b.To)
	}

	return idx
}

// transposeIndex maps each node to its incoming neighbors — the graph with
// every branch reversed.
func transposeIndex(g *core.Graph) map[string][]string {
	idx := make(map[string][]string, g.NodeCount())
	for _, b := range g.Branches() {
		idx[b.To] = append(idx[b.To], b.From)
	}

	return idx
}
