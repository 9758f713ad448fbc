// Package dfs defines options, result types, and error definitions for
// depth-first traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"

	"github.com/ariadnegraph/ariadne/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per visited node.
	Ctx context.Context

	// OnVisit is called when a node is visited (pre-order). If it returns
	// an error, the walk aborts and propagates that error.
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

// Result holds the outcome of an eager depth-first walk.
type Result struct {
	// Order lists the visited node IDs in pre-order.
	Order []string
}
