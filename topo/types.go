// Package topo defines error definitions and coloring states for cycle
// detection and topological ordering.
package topo

import "errors"

// Node coloring states for cycle detection.
const (
	white = iota // not yet visited
	gray         // on the active DFS path (in progress)
	black        // fully explored
)

// Sentinel errors for topology analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("topo: start node not found")

	// ErrCycleDetected is returned when a topological ordering is
	// impossible because the graph contains a cycle.
	ErrCycleDetected = errors.New("topo: cycle detected")
)
