// Package shortest defines options and error definitions for single-pair
// shortest-path queries.
package shortest

import (
	"context"
	"errors"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("shortest: source node not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("shortest: target node not found")
)

// weightSampleSize bounds the branch-prefix scan that classifies a graph as
// weighted. Sampling instead of scanning fully is intentional; see the
// package doc.
const weightSampleSize = 10

// Option configures Path via functional arguments.
type Option func(*Options)

// Options holds parameters for a shortest-path query.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per settled node.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
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
