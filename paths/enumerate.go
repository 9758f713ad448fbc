package paths

import "github.com/ariadnegraph/ariadne/core"

// All returns every simple path from sourceID to targetID admitted by the
// options, in discovery order of the depth-first backtracking search.
// Paths are deterministic for a fixed insertion order of nodes and
// branches.
//
// All(v, v) yields the single zero-length path [v]. No admissible path
// yields an empty slice and a nil error. Invalid inputs yield ErrGraphNil,
// ErrSourceNotFound, ErrTargetNotFound, or ErrOptionViolation.
func All(g *core.Graph, sourceID, targetID string, opts ...Option) ([]Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return collect(g, sourceID, targetID, o)
}

// Shortest returns the minimum-cumulative-weight path among the candidates
// All would produce, collecting at most defaultShortestCap of them (or the
// caller's smaller WithMaxResults). On graphs with more admissible paths
// than the cap the pick is an approximation. Ties go to the first
// candidate found. No admissible path yields the zero Path and a nil
// error.
func Shortest(g *core.Graph, sourceID, targetID string, opts ...Option) (Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Path{}, err
	}
	if !o.maxResultsSet || o.maxResults > defaultShortestCap {
		o.maxResults = defaultShortestCap
		o.maxResultsSet = true
	}

	candidates, err := collect(g, sourceID, targetID, o)
	if err != nil {
		return Path{}, err
	}

	var best Path
	for i, p := range candidates {
		if i == 0 || p.Weight < best.Weight {
			best = p
		}
	}

	return best, nil
}

// Avoiding returns every admissible path that visits none of the avoid
// nodes. It composes with any caller-supplied node filter; a path is kept
// only when both accept every visited destination.
func Avoiding(g *core.Graph, sourceID, targetID string, avoid []string, opts ...Option) ([]Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	banned := make(map[string]struct{}, len(avoid))
	for _, id := range avoid {
		banned[id] = struct{}{}
	}
	inner := o.nodeFilter
	o.nodeFilter = func(n *core.Node) bool {
		if _, ok := banned[n.ID]; ok {
			return false
		}

		return inner == nil || inner(n)
	}

	return collect(g, sourceID, targetID, o)
}

// Through returns every admissible path whose node set covers all of the
// through nodes. The strategy is generate-then-filter: the full candidate
// set is materialized first, so dense graphs should be bounded with
// WithMaxLength or WithMaxResults.
func Through(g *core.Graph, sourceID, targetID string, through []string, opts ...Option) ([]Path, error) {
	all, err := All(g, sourceID, targetID, opts...)
	if err != nil {
		return nil, err
	}

	var kept []Path
	for _, p := range all {
		if covers(p, through) {
			kept = append(kept, p)
		}
	}

	return kept, nil
}

// covers reports whether p visits every node in required.
func covers(p Path, required []string) bool {
	visited := make(map[string]struct{}, len(p.Nodes))
	for _, id := range p.Nodes {
		visited[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := visited[id]; !ok {
			return false
		}
	}

	return true
}

// collect drains the backtracking machine eagerly.
func collect(g *core.Graph, sourceID, targetID string, o Options) ([]Path, error) {
	s, err := newSearch(g, sourceID, targetID, o)
	if err != nil {
		return nil, err
	}

	var out []Path
	for {
		p, ok := s.advance()
		if !ok {
			break
		}
		out = append(out, p)
	}
	if s.err != nil {
		return nil, s.err
	}

	return out, nil
}
