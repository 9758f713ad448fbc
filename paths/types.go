// Package paths defines the Path value, sentinel errors, and the
// functional options bounding constrained path enumeration.
package paths

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// Sentinel errors for path enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("paths: source node not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("paths: target node not found")

	// ErrOptionViolation is returned when an option carries a negative
	// bound.
	ErrOptionViolation = errors.New("paths: invalid option value")
)

// defaultShortestCap bounds how many candidates Shortest collects before
// picking the lightest. The pick is therefore an approximation on graphs
// with more admissible paths than the cap.
const defaultShortestCap = 100

// Path is one simple route: node IDs source-first plus the cumulative
// weight of its branches.
type Path struct {
	Nodes  []string
	Weight float64
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds the constraint set for one enumeration. Bounds are
// inactive until their With* option sets them.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion
	// step.
	Ctx context.Context

	maxLength     int
	maxLengthSet  bool
	maxWeight     float64
	maxWeightSet  bool
	maxResults    int
	maxResultsSet bool

	nodeFilter   func(n *core.Node) bool
	branchFilter func(b *core.Branch) bool
}

// DefaultOptions returns Options with a background context and every bound
// and filter inactive.
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

// WithMaxLength bounds the branch count of any returned path.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		o.maxLength = n
		o.maxLengthSet = true
	}
}

// WithMaxWeight bounds the cumulative weight of any returned path,
// inclusive: a path weighing exactly w is admitted.
func WithMaxWeight(w float64) Option {
	return func(o *Options) {
		o.maxWeight = w
		o.maxWeightSet = true
	}
}

// WithMaxResults caps how many paths the search may produce.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.maxResults = n
		o.maxResultsSet = true
	}
}

// WithNodeFilter admits only branches whose destination fn accepts.
// A nil fn has no effect. The source node is never filtered.
func WithNodeFilter(fn func(n *core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.nodeFilter = fn
		}
	}
}

// WithBranchFilter admits only branches fn accepts. A nil fn has no effect.
func WithBranchFilter(fn func(b *core.Branch) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.branchFilter = fn
		}
	}
}

// buildOptions applies opts over the defaults and rejects negative bounds.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.maxLengthSet && o.maxLength < 0:
		return o, fmt.Errorf("%w: max length %d", ErrOptionViolation, o.maxLength)
	case o.maxWeightSet && o.maxWeight < 0:
		return o, fmt.Errorf("%w: max weight %v", ErrOptionViolation, o.maxWeight)
	case o.maxResultsSet && o.maxResults < 0:
		return o, fmt.Errorf("%w: max results %d", ErrOptionViolation, o.maxResults)
	}

	return o, nil
}
