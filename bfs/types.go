// Package bfs defines options, result types, and error definitions for
// breadth-first traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/ariadnegraph/ariadne/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNilPredicate is returned when Find receives a nil predicate.
	ErrNilPredicate = errors.New("bfs: nil predicate")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued node.
	Ctx context.Context

	// OnVisit is called when a node is visited, in visit order. If it
	// returns an error, the walk aborts and propagates that error.
	OnVisit func(n *core.Node) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a per-node callback; returning an error from it
// stops the walk.
func WithOnVisit(fn func(n *core.Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of an eager breadth-first walk.
type Result struct {
	// Order lists the visited node IDs in visit sequence.
	Order []string

	// start and parents carry the BFS tree for PathTo reconstruction.
	start   string
	parents map[string]string
}

// PathTo reconstructs the fewest-hop path from the walk's start node to
// destID by following parent pointers backward, then reversing once.
// Returns nil when destID was not reached by the walk.
func (r *Result) PathTo(destID string) []string {
	if destID == r.start {
		return []string{r.start}
	}
	if _, ok := r.parents[destID]; !ok {
		return nil
	}

	path := []string{destID}
	for cur := destID; cur != r.start; {
		cur = r.parents[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// FindResult holds the outcome of a predicate search.
//
// Order records every node visited up to and including the first match.
// Early termination on match is part of the caller contract; no work is
// guaranteed to be saved beyond that point.
type FindResult struct {
	Order []string

	// Found is the first node the predicate accepted, nil when none was.
	Found *core.Node

	// Ok reports whether a match occurred.
	Ok bool
}
