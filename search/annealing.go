package search

import (
	"math"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// SimulatedAnnealing walks a single random trajectory from start, hoping to
// hit goal before the iteration cap runs out.
//
// Each iteration:
//  1. Collect the unvisited neighbors of the current node. None left ⇒ dead
//     end ⇒ failure, even if another route exists elsewhere.
//  2. Pick one uniformly at random; delta is the cost of that edge.
//  3. Accept if delta < 0, else with probability exp(−delta / T).
//  4. On acceptance: move, append to the path, mark visited; goal ⇒ success.
//  5. T *= CoolingRate.
//
// For non-negative costs delta is never negative, so the "improving move"
// branch only fires on graphs that carry negative edges.
//
// The result is neither deterministic (see WithRand/WithSeed) nor optimal;
// callers wanting another outcome must call again with a different stream.
// h is not consulted by the acceptance rule. It is accepted so that both
// informed strategies share one call shape.
func SimulatedAnnealing(g *core.Graph, start, goal string, h heuristic.Map, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return found([]string{start}, 0, 0), nil
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	current := start
	path := []string{start}
	visited := map[string]bool{start: true}
	var cost int64
	temperature := cfg.Temperature
	accepted := 0

	var (
		nbs        []core.Neighbor
		candidates []core.Neighbor
		next       core.Neighbor
		delta      float64
		i          int
	)
	for i = 0; i < cfg.MaxIterations; i++ {
		if err = cfg.cancelled(); err != nil {
			return nil, err
		}

		if nbs, err = neighbors(g, current); err != nil {
			return nil, err
		}
		candidates = unvisited(candidates[:0], nbs, visited)
		if len(candidates) == 0 {
			return notFound(accepted), nil
		}

		next = candidates[rng.Intn(len(candidates))]
		delta = float64(next.Cost)

		if delta < 0 || rng.Float64() < math.Exp(-delta/temperature) {
			if err = cfg.expand(next.Label, cost+next.Cost); err != nil {
				return nil, err
			}
			current = next.Label
			cost += next.Cost
			path = append(path, current)
			visited[current] = true
			accepted++

			if current == goal {
				return found(path, cost, accepted), nil
			}
		}

		temperature *= cfg.CoolingRate
	}

	return notFound(accepted), nil
}

// unvisited appends to dst every entry of nbs whose label is not visited.
func unvisited(dst, nbs []core.Neighbor, visited map[string]bool) []core.Neighbor {
	var nb core.Neighbor
	for _, nb = range nbs {
		if !visited[nb.Label] {
			dst = append(dst, nb)
		}
	}

	return dst
}
