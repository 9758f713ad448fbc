// File: branches.go
// Role: branch lifecycle and queries — AddBranch/RemoveBranch/HasBranch/
//       Branches/BranchCount, plus node-reference resolution.
//
// Determinism:
//   - Branches() enumerates in insertion order.
package core

import "fmt"

// resolve turns a node reference — a *Node handle or a raw string ID — into
// the registered node of this graph.
//
// A *Node handle must be the very pointer stored in this graph's catalog:
// a handle from another graph instance resolves to ErrNodeNotFound even if
// the ID matches, which prevents cross-graph branch leakage.
func (g *Graph) resolve(ref any) (*Node, error) {
	switch r := ref.(type) {
	case *Node:
		if r == nil {
			return nil, fmt.Errorf("%w: nil *Node", ErrBadNodeRef)
		}
		reg, ok := g.nodes[r.ID]
		if !ok || reg != r {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, r.ID)
		}

		return reg, nil
	case string:
		n, ok := g.nodes[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, r)
		}

		return n, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrBadNodeRef, ref)
	}
}

// AddBranch creates a directed branch from src to dst and returns it.
// src and dst may be *Node handles or raw string IDs; both endpoints must
// already exist in this graph — a missing endpoint is never created
// silently.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is absent from this graph.
//   - ErrSelfLoop if both endpoints resolve to the same node.
//   - ErrBadNodeRef for an unsupported reference type.
//
// Side effects: the branch is appended to the source node's adjacency list
// and registered in the graph's branch collection.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBranch(src, dst any, opts ...BranchOption) (*Branch, error) {
	from, err := g.resolve(src)
	if err != nil {
		return nil, err
	}
	to, err := g.resolve(dst)
	if err != nil {
		return nil, err
	}
	if from.ID == to.ID {
		return nil, fmt.Errorf("%w: %q", ErrSelfLoop, from.ID)
	}

	b := &Branch{From: from.ID, To: to.ID, Weight: defaultBranchWeight}
	for _, opt := range opts {
		opt(b)
	}

	from.out = append(from.out, b)
	g.branches = append(g.branches, b)
	g.branchDirty = true

	return b, nil
}

// RemoveBranch detaches the branch from its source node's adjacency list
// and from the graph's branch collection. Removing a branch unknown to this
// graph is a no-op.
//
// Complexity: O(E) against the collection, O(deg) against the adjacency list.
func (g *Graph) RemoveBranch(b *Branch) {
	if b == nil {
		return
	}

	found := false
	kept := g.branches[:0]
	for _, have := range g.branches {
		if have == b {
			found = true
			continue
		}
		kept = append(kept, have)
	}
	if !found {
		return
	}
	g.branches = kept

	if src, ok := g.nodes[b.From]; ok {
		out := src.out[:0]
		for _, have := range src.out {
			if have == b {
				continue
			}
			out = append(out, have)
		}
		src.out = out
	}

	g.branchDirty = true
}

// HasBranch reports whether at least one branch from → to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasBranch(from, to string) bool {
	src, ok := g.nodes[from]
	if !ok {
		return false
	}
	for _, b := range src.out {
		if b.To == to {
			return true
		}
	}

	return false
}

// Branches returns all branches in insertion order.
//
// Like Nodes, the slice is a cached snapshot rebuilt only after a preceding
// mutation; treat it as read-only.
func (g *Graph) Branches() []*Branch {
	if g.branchDirty {
		g.branchCache = append([]*Branch(nil), g.branches...)
		g.branchDirty = false
	}

	return g.branchCache
}

// BranchCount returns the number of branches.
// Complexity: O(1).
func (g *Graph) BranchCount() int { return len(g.branches) }
