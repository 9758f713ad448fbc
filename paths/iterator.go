package paths

import "github.com/ariadnegraph/ariadne/core"

// Enumerator is the lazy, pull-based form of the constrained search. It
// holds the resumable state — the frame stack, the active path with its
// cumulative weight, and the path-scoped visited set — and advances only
// when Next is called, suspending immediately after producing one path.
//
// Pruning is identical to All: for the same graph and options the
// Enumerator yields exactly All's paths in the same order.
//
// An Enumerator is not rewindable; restarting means constructing a new one
// from the same arguments. Abandoning it is sufficient cancellation.
// Mutating the graph while an Enumerator is in flight is undefined.
type Enumerator struct {
	s *search
}

// NewEnumerator validates inputs and prepares a suspended search; no work
// happens until the first Next.
func NewEnumerator(g *core.Graph, sourceID, targetID string, opts ...Option) (*Enumerator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSearch(g, sourceID, targetID, o)
	if err != nil {
		return nil, err
	}

	return &Enumerator{s: s}, nil
}

// Next produces the next admissible path. The second return is false when
// the search space is exhausted; after that every call keeps returning
// false.
func (e *Enumerator) Next() (Path, bool) {
	return e.s.advance()
}
