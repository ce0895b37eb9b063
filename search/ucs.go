package search

import "github.com/Henok-et/navigation-algorithm-for-a-city/core"

// UCS runs uniform-cost search from start to goal and returns a minimum-cost
// path. Edge costs must be non-negative (ErrNegativeCost otherwise).
//
// Complexity:
//   - Time:  O((V + E) log E), every relaxation may push a heap entry.
//   - Space: O(V + E).
func UCS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if err = rejectNegativeCosts(g); err != nil {
		return nil, err
	}

	return newRunner(g, cfg, goal, nil).run(start)
}
