package shortest

import (
	"fmt"
	"math"

	"github.com/ariadnegraph/ariadne/core"
)

// Path returns the shortest path from sourceID to targetID as a node ID
// sequence, source first. The algorithm is selected by the weighted
// classification probe: BFS hop count for unweighted graphs, label-setting
// relaxation for weighted ones.
//
// Path(v, v) == [v]. An unreachable target yields an empty path and a nil
// error. Invalid inputs yield ErrGraphNil, ErrSourceNotFound, or
// ErrTargetNotFound.
func Path(g *core.Graph, sourceID, targetID string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasNode(sourceID) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, sourceID)
	}
	if !g.HasNode(targetID) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, targetID)
	}
	if sourceID == targetID {
		return []string{sourceID}, nil
	}

	if sampleWeighted(g) {
		return weightedPath(g, sourceID, targetID, o)
	}

	return unweightedPath(g, sourceID, targetID, o)
}

// sampleWeighted probes the first weightSampleSize branches for an explicit
// weight. Branches beyond the prefix are not consulted.
func sampleWeighted(g *core.Graph) bool {
	branches := g.Branches()
	limit := len(branches)
	if limit > weightSampleSize {
		limit = weightSampleSize
	}
	for i := 0; i < limit; i++ {
		if branches[i].Weighted() {
			return true
		}
	}

	return false
}

// unweightedPath runs BFS with a parent-pointer map and reconstructs the
// path with a single reversal on arrival.
func unweightedPath(g *core.Graph, sourceID, targetID string, o Options) ([]string, error) {
	visited := map[string]struct{}{sourceID: {}}
	parent := make(map[string]string)
	queue := []string{sourceID}

	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		id := queue[head]
		if id == targetID {
			return reconstruct(parent, sourceID, targetID), nil
		}

		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("shortest: resolve %q: %w", id, err)
		}
		for _, b := range n.Branches() {
			if _, seen := visited[b.To]; seen {
				continue
			}
			visited[b.To] = struct{}{}
			parent[b.To] = id
			queue = append(queue, b.To)
		}
	}

	return []string{}, nil
}

// weightedPath runs label-setting relaxation: tentative distances start at
// +Inf (source at 0); each round settles the undecided node with the
// minimum tentative distance, found by a linear scan in node insertion
// order (first-encountered tie-break), relaxes its outgoing branches, and
// stops as soon as the target settles.
func weightedPath(g *core.Graph, sourceID, targetID string, o Options) ([]string, error) {
	nodes := g.Nodes()
	dist := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = math.Inf(1)
	}
	dist[sourceID] = 0

	settled := make(map[string]struct{}, len(nodes))
	parent := make(map[string]string)

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Extract the undecided frontier member with minimum tentative
		// distance. Strict < keeps the first-encountered node on ties.
		var u *core.Node
		best := math.Inf(1)
		for _, n := range nodes {
			if _, done := settled[n.ID]; done {
				continue
			}
			if dist[n.ID] < best {
				best = dist[n.ID]
				u = n
			}
		}
		if u == nil {
			// Every remaining node is unreachable.
			return []string{}, nil
		}

		settled[u.ID] = struct{}{}
		if u.ID == targetID {
			return reconstruct(parent, sourceID, targetID), nil
		}

		for _, b := range u.Branches() {
			if _, done := settled[b.To]; done {
				continue
			}
			if nd := best + b.Weight; nd < dist[b.To] {
				dist[b.To] = nd
				parent[b.To] = u.ID
			}
		}
	}
}

// reconstruct walks parent pointers backward from target to source and
// reverses once.
func reconstruct(parent map[string]string, sourceID, targetID string) []string {
	path := []string{targetID}
	for cur := targetID; cur != sourceID; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
