// Package core defines the central Graph, Node, and Branch types and the
// operations that keep them consistent: keyed node insertion, referential
// integrity for branches, cascading removal, and cached read views.
//
// The model is deliberately simple:
//
//   - A Node has a unique string ID, a caller-chosen Value, and an
//     insertion-ordered list of its own outgoing branches. That adjacency
//     list is the single source of truth for every traversal engine.
//   - A Branch is an ordered (From, To) pair with an optional numeric
//     weight. A branch created without WithWeight carries the default
//     weight 1 and reports Weighted() == false.
//   - A Graph owns both catalogs and hands out cached snapshots of "all
//     nodes" and "all branches" that are rebuilt lazily after a mutation.
//
// Nodes and branches are created only through the Graph's add operations and
// destroyed only through its remove operations; an unreachable node persists
// until removed.
//
// Integrity rules, enforced at the mutating operation:
//
//   - duplicate node IDs are rejected with ErrDuplicateNode
//   - both branch endpoints must already exist in the same Graph instance
//     (ErrNodeNotFound); a missing endpoint is never created silently
//   - a branch may not connect a node to itself (ErrSelfLoop)
//
// The package is single-threaded by contract. There are no locks; callers
// that share a Graph across goroutines must serialize access themselves,
// and mutating a Graph while a traversal over it is in flight is undefined.
package core
