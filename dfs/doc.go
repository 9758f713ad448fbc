// Package dfs provides depth-first traversal over a core.Graph.
//
// The walk is iterative: an explicit stack replaces recursion so that deep
// graphs cannot overflow the call stack. Branches are pushed in reverse
// adjacency order, which makes the emitted sequence identical to a natural
// left-to-right recursive pre-order. A node pushed more than once via
// different incoming paths is skipped when popped after its first visit.
//
// Two shapes are offered: DFS, the eager walk with an optional per-node
// hook, and Iterator, the lazy pull-based variant yielding one node per
// Next call.
//
// Only outgoing branches are followed. For a fixed insertion order of nodes
// and branches the visit order is deterministic.
//
// Complexity: O(V + E) time, O(V) memory for the stack and visited set.
package dfs
