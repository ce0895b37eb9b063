package builder

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

const minScatterNodes = 2

// Scatter places n cities uniformly on an extent×extent square and joins
// each to its k nearest neighbors with a two-way road. A pair is linked at
// most once, so a city may end up with more than k roads but never fewer
// (when k < n).
//
// The result is not guaranteed to be connected.
//
// Complexity: O(n² log n).
func Scatter(n, k int, opts ...Option) (*Map, error) {
	if n < minScatterNodes {
		return nil, fmt.Errorf("%w: scatter n=%d (must be ≥ %d)", ErrTooFewNodes, n, minScatterNodes)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: scatter k=%d (must be ≥ 1)", ErrOptionViolation, k)
	}
	if k > n-1 {
		k = n - 1
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	coords := make(heuristic.Table, n)
	labels := make([]string, n)
	points := make([]r2.Vec, n)
	var i int
	for i = 0; i < n; i++ {
		labels[i] = cfg.idFn(i)
		if g.HasNode(labels[i]) {
			return nil, fmt.Errorf("%w: id scheme repeats label %q", ErrOptionViolation, labels[i])
		}
		if err = g.CreateNode(labels[i]); err != nil {
			return nil, err
		}
		points[i] = r2.Vec{X: cfg.rng.Float64() * cfg.extent, Y: cfg.rng.Float64() * cfg.extent}
		coords[labels[i]] = points[i]
	}

	linked := make(map[[2]int]bool, n*k)
	order := make([]int, 0, n-1)
	for i = 0; i < n; i++ {
		order = order[:0]
		for j := 0; j < n; j++ {
			if j != i {
				order = append(order, j)
			}
		}
		from := points[i]
		sort.SliceStable(order, func(a, b int) bool {
			return r2.Norm(r2.Sub(points[order[a]], from)) < r2.Norm(r2.Sub(points[order[b]], from))
		})
		for _, j := range order[:k] {
			pair := [2]int{min(i, j), max(i, j)}
			if linked[pair] {
				continue
			}
			linked[pair] = true
			if err = g.InsertRoad(labels[i], labels[j], cfg.roadCost(points[i], points[j])); err != nil {
				return nil, err
			}
		}
	}

	return &Map{Graph: g, Coords: coords}, nil
}

