// Package bfs provides breadth-first traversal over a core.Graph.
//
// Three shapes of the same walk are offered:
//
//   - BFS: the eager walk, returning the full visit order and optionally
//     invoking a per-node hook.
//   - Find: the predicate variant, recording the visit order up to and
//     including the first node the predicate accepts.
//   - Iterator: the lazy, pull-based variant, producing one node per Next
//     call with memory bounded by the frontier.
//
// The walk follows outgoing branches only (directed semantics) and visits
// each reachable node exactly once per call. For a fixed insertion order of
// nodes and branches the visit order is deterministic.
//
// Complexity: O(V + E) time, O(V) memory for the queue and visited set.
package bfs
