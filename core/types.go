// Package core declares Node, Branch, Graph, their options,
// sentinel errors, and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates an insert with an ID that is already taken.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a node that does not
	// exist in this graph instance.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates a branch whose source and destination are the
	// same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEmptyNodeID indicates an explicitly supplied empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadNodeRef indicates a node reference that is neither a *Node
	// handle nor a string ID.
	ErrBadNodeRef = errors.New("core: node reference must be *Node or string ID")

	// ErrIDGeneration indicates the synthesized-ID retry budget was
	// exhausted. Defensive; not expected to occur in normal use.
	ErrIDGeneration = errors.New("core: synthesized ID attempts exhausted")
)

// defaultBranchWeight is the weight carried by a branch created without
// WithWeight. Using 1 makes cumulative weights degrade to hop counts on
// unweighted graphs.
const defaultBranchWeight float64 = 1

// Node is an entity in the graph: a unique identity, a stored value, and an
// ordered list of its own outgoing branches.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Value is the caller-supplied payload. The graph never inspects it
	// after insertion.
	Value any

	// out is the adjacency list: outgoing branches in insertion order.
	// It is the single source of truth for traversal.
	out []*Branch
}

// Branches returns the node's outgoing branches in insertion order.
// The returned slice is live; callers must treat it as read-only.
func (n *Node) Branches() []*Branch { return n.out }

// Branch is a directed connection between two nodes of one graph.
type Branch struct {
	// From is the source node ID; the branch lives in this node's
	// adjacency list.
	From string

	// To is the destination node ID.
	To string

	// Weight is the numeric cost of the branch. Defaults to 1 when no
	// explicit weight was supplied.
	Weight float64

	// weighted records whether an explicit weight was supplied.
	weighted bool
}

// Weighted reports whether the branch carries an explicitly supplied weight,
// as opposed to the default.
func (b *Branch) Weighted() bool { return b.weighted }

// NodeOption configures AddNode.
type NodeOption func(*nodeConfig)

// nodeConfig collects AddNode options before the node exists.
type nodeConfig struct {
	id    string
	hasID bool
}

// WithID pins the new node's identity instead of deriving it from the value
// or synthesizing one.
func WithID(id string) NodeOption {
	return func(c *nodeConfig) {
		c.id = id
		c.hasID = true
	}
}

// BranchOption configures AddBranch.
type BranchOption func(*Branch)

// WithWeight sets an explicit weight on the new branch and marks it
// weighted.
func WithWeight(w float64) BranchOption {
	return func(b *Branch) {
		b.Weight = w
		b.weighted = true
	}
}

// Graph is the owning container enforcing referential integrity between its
// nodes and branches.
//
// nodes is the keyed catalog; order preserves node insertion order so that
// enumeration — and therefore every algorithm built on it — is deterministic
// for a fixed build sequence. branches is the graph-wide branch collection
// in insertion order.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	branches []*Branch

	// Cached read views, rebuilt lazily after an invalidating mutation.
	nodeCache   []*Node
	branchCache []*Branch
	nodesDirty  bool
	branchDirty bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:       make(map[string]*Node),
		nodesDirty:  true,
		branchDirty: true,
	}
}
