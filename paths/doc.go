// Package paths enumerates simple paths (no repeated node) between two
// nodes of a core.Graph under caller-supplied constraints.
//
// The search is depth-first backtracking over an explicit frame stack. It
// carries the active path, its cumulative weight, and a membership set
// scoped to that path only — restored on backtrack, so a node excluded from
// one candidate can still appear in a later one. Constraints are applied in
// a fixed order per candidate branch: result cap, length/weight bound on
// the current prefix, branch filter, node filter on the destination, and
// the inclusive max-weight extension check.
//
// All materializes every admissible path; Shortest, Avoiding, and Through
// derive from it. NewEnumerator is the lazy form: the same pruning, one
// Path per Next call.
//
// Unbounded graphs must be bounded by the caller via WithMaxLength,
// WithMaxWeight, or WithMaxResults; there is no built-in timeout.
package paths
