// Package components partitions a core.Graph into connectivity classes.
//
//   - Connected treats every branch as bidirectional and flood-fills the
//     resulting undirected reachability, so each node lands in exactly one
//     component and an isolated node forms a singleton.
//   - StronglyConnected runs Kosaraju's two-pass algorithm: a first
//     depth-first sweep records the finish order (a node is appended only
//     after all its descendants are exhausted), then the transposed graph
//     is swept in reverse finish order, each tree forming one component.
//
// Both operations precompute an adjacency index once up front instead of
// re-scanning the full branch collection per node, keeping the whole run at
// O(V + E).
package components
