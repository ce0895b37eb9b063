package search

import (
	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// AStar runs A* from start to goal with frontier priority g + h, where h is
// looked up in the precomputed map (never recomputed during the search).
//
// The returned path is optimal when h is admissible and consistent; that is
// the caller's contract and is not verified. Every node the search pushes
// must have an entry in h, otherwise the search stops with
// ErrMissingHeuristic naming the label.
//
// Errors:
//   - ErrNilGraph, ErrNodeNotFound, ErrOptionViolation (see prepare).
//   - ErrNilHeuristic if h is nil.
//   - ErrNegativeCost if any edge cost is negative.
//   - ErrMissingHeuristic for an uncovered, reached node.
func AStar(g *core.Graph, start, goal string, h heuristic.Map, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if err = rejectNegativeCosts(g); err != nil {
		return nil, err
	}

	return newRunner(g, cfg, goal, h).run(start)
}
