// File: nodes.go
// Role: node lifecycle and queries — AddNode/RemoveNode/Node/HasNode/
//       Nodes/NodeCount/Clear.
//
// Determinism:
//   - Nodes() enumerates in insertion order.
package core

import "fmt"

// AddNode inserts a new node and returns it.
//
// Identity resolution, in order:
//  1. WithID(id) pins the identity explicitly.
//  2. Otherwise, a textual or numeric value becomes its own ID
//     (value-as-ID convenience; see package doc).
//  3. Otherwise a unique ID is synthesized.
//
// Errors:
//   - ErrEmptyNodeID if WithID supplied an empty string.
//   - ErrDuplicateNode if the resolved ID is already taken.
//   - ErrIDGeneration if synthesis exhausted its retry budget.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(value any, opts ...NodeOption) (*Node, error) {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.id
	if cfg.hasID {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
	} else {
		var ok bool
		if id, ok = primitiveID(value); !ok {
			var err error
			if id, err = g.synthesizeID(); err != nil {
				return nil, err
			}
		}
	}

	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	n := &Node{ID: id, Value: value}
	g.nodes[id] = n
	g.order = append(g.order, id)
	g.nodesDirty = true

	return n, nil
}

// RemoveNode deletes the node and every branch where it is source or
// destination. Removing an unknown ID is a no-op, not an error.
//
// Complexity: O(V + E) — the branch collection is scanned once and each
// affected adjacency list is rewritten.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}

	// Cascade: drop every branch touching the node from the collection.
	kept := g.branches[:0]
	for _, b := range g.branches {
		if b.From == id || b.To == id {
			continue
		}
		kept = append(kept, b)
	}
	g.branches = kept

	// Detach incoming branches from their source adjacency lists.
	for _, src := range g.nodes {
		if src.ID == id {
			continue
		}
		out := src.out[:0]
		for _, b := range src.out {
			if b.To == id {
				continue
			}
			out = append(out, b)
		}
		src.out = out
	}

	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	g.nodesDirty = true
	g.branchDirty = true
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n, nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all nodes in insertion order.
//
// The slice is a cached snapshot rebuilt only after a preceding mutation
// invalidated it; repeated reads between mutations are O(1). Callers must
// treat the snapshot as read-only.
func (g *Graph) Nodes() []*Node {
	if g.nodesDirty {
		g.nodeCache = make([]*Node, 0, len(g.order))
		for _, id := range g.order {
			g.nodeCache = append(g.nodeCache, g.nodes[id])
		}
		g.nodesDirty = false
	}

	return g.nodeCache
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Clear removes every node and branch, returning the graph to its
// just-constructed state.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.order = nil
	g.branches = nil
	g.nodeCache = nil
	g.branchCache = nil
	g.nodesDirty = true
	g.branchDirty = true
}
