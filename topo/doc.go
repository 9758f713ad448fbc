// Package topo analyzes cycle structure and topological order of a
// core.Graph.
//
//   - DetectCycle walks everything reachable from a start node with
//     three-state coloring (unvisited / in-progress / done) over an
//     iterative DFS; a branch into an in-progress node is a back edge and
//     answers true immediately.
//   - TopologicalSort runs Kahn's algorithm over the entire graph, not just
//     one component: in-degrees are computed for every node, zero-in-degree
//     nodes are emitted and their neighbors decremented. A result shorter
//     than the node count means a cycle, reported as ErrCycleDetected.
//   - IsDAG derives from the sort, converting exactly ErrCycleDetected to
//     false; any other error propagates unchanged.
//
// Complexity: O(V + E) time and O(V) memory for all three operations.
package topo
