package search

import (
	"container/heap"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// runner holds the mutable state of a single UCS or AStar execution.
type runner struct {
	g    *core.Graph
	opts Options
	goal string
	h    heuristic.Map // nil for UCS

	best map[string]int64  // label → best known accumulated cost
	prev map[string]string // label → predecessor on that best route
	pq   frontier
	seq  uint64
}

// newRunner allocates maps sized for g.
func newRunner(g *core.Graph, cfg Options, goal string, h heuristic.Map) *runner {
	n := g.NodeCount()
	return &runner{
		g:    g,
		opts: cfg,
		goal: goal,
		h:    h,
		best: make(map[string]int64, n),
		prev: make(map[string]string, n),
		pq:   make(frontier, 0, n),
	}
}

// estimate returns h(label), or 0 when running as UCS.
func (r *runner) estimate(label string) (float64, error) {
	if r.h == nil {
		return 0, nil
	}
	return r.h.Estimate(label)
}

// push records cost as the best known cost of label and enqueues it.
func (r *runner) push(label string, cost int64) error {
	h, err := r.estimate(label)
	if err != nil {
		return err
	}
	r.best[label] = cost
	r.seq++
	heap.Push(&r.pq, &entry{
		label:    label,
		cost:     cost,
		priority: float64(cost) + h,
		seq:      r.seq,
	})

	return nil
}

// run is the pop-relax-push loop.
//
// States:
//
//	frontier non-empty ∧ goal unseen → pop, validate, relax, push
//	goal popped                      → success
//	frontier empty                   → failure (nil path, +Inf)
func (r *runner) run(start string) (*Result, error) {
	if err := r.push(start, 0); err != nil {
		return nil, err
	}

	expanded := 0
	var (
		it      *entry
		nbs     []core.Neighbor
		nb      core.Neighbor
		newCost int64
		known   int64
		seen    bool
		err     error
	)
	for r.pq.Len() > 0 {
		if err = r.opts.cancelled(); err != nil {
			return nil, err
		}

		it = heap.Pop(&r.pq).(*entry)

		// Stale entry: a cheaper route was recorded after this push.
		if it.cost > r.best[it.label] {
			continue
		}

		if it.label == r.goal {
			return found(r.reconstruct(start), it.cost, expanded), nil
		}

		if err = r.opts.expand(it.label, it.cost); err != nil {
			return nil, err
		}
		expanded++

		if nbs, err = neighbors(r.g, it.label); err != nil {
			return nil, err
		}
		for _, nb = range nbs {
			newCost = it.cost + nb.Cost
			known, seen = r.best[nb.Label]
			// Strictly better only; equal costs keep the first route found.
			if seen && newCost >= known {
				continue
			}
			if err = r.push(nb.Label, newCost); err != nil {
				return nil, err
			}
			r.prev[nb.Label] = it.label
		}
	}

	return notFound(expanded), nil
}

// reconstruct walks predecessors back from goal to start and reverses.
func (r *runner) reconstruct(start string) []string {
	path := []string{r.goal}
	for cur := r.goal; cur != start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
