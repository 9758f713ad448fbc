// Package ariadne is an in-memory directed-graph toolkit: a small core
// container plus a family of traversal, shortest-path, topology, component,
// and path-enumeration algorithms built on top of it.
//
// Everything is organized under one subpackage per concern:
//
//	core/       — Graph, Node and Branch types, integrity rules, cached views
//	bfs/        — breadth-first traversal: eager walks, predicate search, lazy iterator
//	dfs/        — depth-first traversal: iterative eager walks and lazy iterator
//	shortest/   — single-pair shortest path, unweighted (BFS) and weighted (label-setting)
//	topo/       — cycle detection and topological ordering (Kahn)
//	components/ — connected components and strongly-connected components (Kosaraju)
//	paths/      — constrained simple-path enumeration with backtracking, eager and lazy
//
// The execution model is single-threaded and synchronous: no locks, no
// background work. Lazy producers are pull-based; the engine advances only
// when the caller asks for the next item, so abandoning an iterator is all
// the cancellation there is. Mutating a graph while an iteration over it is
// in flight is undefined — serialize mutation against active traversals.
//
//	go get github.com/ariadnegraph/ariadne
package ariadne
