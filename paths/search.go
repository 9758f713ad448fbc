package paths

import (
	"fmt"

	"github.com/ariadnegraph/ariadne/core"
)

// segment is one level of the backtracking stack: the node, a cursor into
// its adjacency list, and the weight of the branch that entered it.
type segment struct {
	node *core.Node
	next int
	cost float64
}

// search is the backtracking machine shared by the eager and lazy entry
// points. The stack, path, onPath set, and running weight always describe
// the same active prefix; push and pop keep them in lockstep.
type search struct {
	graph  *core.Graph
	target string
	opts   Options

	stack   []segment
	path    []string
	weight  float64
	onPath  map[string]struct{}
	emitted int

	trivial bool // source == target: yield the zero-length path once
	done    bool
	err     error
}

// newSearch validates inputs and seeds the stack with the source node.
func newSearch(g *core.Graph, sourceID, targetID string, o Options) (*search, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	source, err := g.Node(sourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, sourceID)
	}
	if !g.HasNode(targetID) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, targetID)
	}

	s := &search{
		graph:  g,
		target: targetID,
		opts:   o,
		onPath: map[string]struct{}{source.ID: {}},
	}
	if sourceID == targetID {
		s.trivial = true

		return s, nil
	}
	s.stack = []segment{{node: source}}
	s.path = []string{source.ID}

	return s, nil
}

// advance runs the machine until one admissible path is produced or the
// space is exhausted. A false return with a non-nil s.err means the
// context was cancelled rather than the search completing.
func (s *search) advance() (Path, bool) {
	if s.done {
		return Path{}, false
	}
	if s.trivial {
		s.done = true
		if s.capReached() {
			return Path{}, false
		}
		s.emitted++

		return Path{Nodes: []string{s.target}}, true
	}

	for len(s.stack) > 0 {
		if s.capReached() {
			s.done = true

			return Path{}, false
		}
		select {
		case <-s.opts.Ctx.Done():
			s.done = true
			s.err = s.opts.Ctx.Err()

			return Path{}, false
		default:
		}

		// A prefix that already meets a bound cannot descend further.
		if s.boundMet() {
			s.pop()
			continue
		}

		top := &s.stack[len(s.stack)-1]
		branches := top.node.Branches()
		if top.next >= len(branches) {
			s.pop()
			continue
		}
		b := branches[top.next]
		top.next++

		if _, on := s.onPath[b.To]; on {
			continue // simple paths only
		}
		if s.opts.branchFilter != nil && !s.opts.branchFilter(b) {
			continue
		}
		dst, err := s.graph.Node(b.To)
		if err != nil {
			// Dangling adjacency entry: concurrent mutation is undefined,
			// skip rather than fail the whole enumeration.
			continue
		}
		if s.opts.nodeFilter != nil && !s.opts.nodeFilter(dst) {
			continue
		}
		if s.opts.maxWeightSet && s.weight+b.Weight > s.opts.maxWeight {
			continue
		}

		s.push(dst, b.Weight)
		if dst.ID == s.target {
			p := s.snapshot()
			s.pop()
			s.emitted++

			return p, true
		}
	}
	s.done = true

	return Path{}, false
}

// capReached reports whether the result cap is exhausted.
func (s *search) capReached() bool {
	return s.opts.maxResultsSet && s.emitted >= s.opts.maxResults
}

// boundMet reports whether the active prefix has met the length or weight
// bound, making any extension inadmissible.
func (s *search) boundMet() bool {
	if s.opts.maxLengthSet && len(s.path)-1 >= s.opts.maxLength {
		return true
	}
	if s.opts.maxWeightSet && s.weight >= s.opts.maxWeight {
		return true
	}

	return false
}

// push extends the active prefix with n reached over a branch of the given
// cost.
func (s *search) push(n *core.Node, cost float64) {
	s.stack = append(s.stack, segment{node: n, cost: cost})
	s.path = append(s.path, n.ID)
	s.onPath[n.ID] = struct{}{}
	s.weight += cost
}

// pop retires the top of the active prefix, restoring the onPath set and
// running weight.
func (s *search) pop() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.path = s.path[:len(s.path)-1]
	delete(s.onPath, top.node.ID)
	s.weight -= top.cost
}

// snapshot copies the active prefix into an immutable Path.
func (s *search) snapshot() Path {
	nodes := make([]string, len(s.path))
	copy(nodes, s.path)

	return Path{Nodes: nodes, Weight: s.weight}
}
