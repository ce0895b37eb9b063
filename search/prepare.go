package search

import (
	"fmt"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
)

// prepare applies opts and validates the inputs every strategy shares.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. start and goal must exist (ErrNodeNotFound).
func prepare(g *core.Graph, start, goal string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}
	if !g.HasNode(start) {
		return Options{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(goal) {
		return Options{}, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	return cfg, nil
}

// rejectNegativeCosts fails fast when any edge cost is negative.
// Complexity: O(E).
func rejectNegativeCosts(g *core.Graph) error {
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNegativeCost, e.From, e.To, e.Cost)
		}
	}

	return nil
}

// neighbors wraps core lookups so a concurrent delete surfaces as ErrNeighbors.
func neighbors(g *core.Graph, label string) ([]core.Neighbor, error) {
	nbs, err := g.Neighbors(label)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, label, err)
	}

	return nbs, nil
}

// expand runs the OnExpand hook and wraps its error.
func (o *Options) expand(label string, cost int64) error {
	if err := o.OnExpand(label, cost); err != nil {
		return fmt.Errorf("search: OnExpand error at %q: %w", label, err)
	}

	return nil
}

// cancelled reports the context error, if any, without blocking.
func (o *Options) cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
