package topo

import (
	"errors"
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// TopologicalSort computes a topological ordering of all nodes in g using
// Kahn's algorithm. In-degrees cover the entire graph, so disconnected
// components are included.
//
// If the graph contains a cycle the ordering is impossible and
// ErrCycleDetected is returned. For a fixed insertion order of nodes and
// branches the result is deterministic.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	indeg := make(map[string]int, len(nodes))
	for _, b := range g.Branches() {
		indeg[b.To]++
	}

	// Seed with every zero-in-degree node, in insertion order.
	queue := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if indeg[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	order := make([]string, 0, len(nodes))
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		order = append(order, id)

		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("topo: resolve %q: %w", id, err)
		}
		for _, b := range n.Branches() {
			indeg[b.To]--
			if indeg[b.To] == 0 {
				queue = append(queue, b.To)
			}
		}
	}

	// Nodes left with positive in-degree sit on a cycle.
	if len(order) < g.NodeCount() {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// IsDAG reports whether g admits a topological ordering. Exactly
// ErrCycleDetected maps to false; any other error propagates unchanged.
func IsDAG(g *core.Graph) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}
