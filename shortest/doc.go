// Package shortest computes single-pair shortest paths over a core.Graph.
//
// Path is the single entry point. It classifies the graph by sampling a
// bounded prefix of the branch collection (the first ten branches) for an
// explicit weight: if one is found the weighted label-setting algorithm
// runs, otherwise plain BFS does. The sampling is a documented
// approximation — a graph whose only weighted branches sit beyond the
// sampled prefix is classified as unweighted.
//
// The weighted algorithm extracts the minimum-distance frontier member by
// linear scan rather than a priority heap. That is a performance
// limitation, not a correctness one, and it buys a stable first-encountered
// tie-break that a heap would not preserve.
//
// Path(v, v) returns [v]; an unreachable target yields an empty path and a
// nil error.
package shortest
