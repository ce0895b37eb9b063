package search

import "github.com/Henok-et/navigation-algorithm-for-a-city/core"

// record is one frontier entry of BFS/DFS: a node, the cost accumulated on
// the way to it, and this branch's own copy of the path.
type record struct {
	label string
	cost  int64
	path  []string
}

// discipline selects which end of the frontier is popped.
type discipline int

const (
	fifo discipline = iota // queue: BFS
	lifo                   // stack: DFS
)

// BFS explores the graph breadth-first from start, accumulating edge costs,
// and returns the first path on which goal is popped.
//
// With uniform costs that tends toward the fewest edges; with non-uniform
// costs it gives no optimality guarantee. It is a comparison baseline.
func BFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return traverse(g, start, goal, fifo, opts)
}

// DFS explores the graph depth-first from start, accumulating edge costs,
// and returns the first path on which goal is popped. Neighbors are pushed
// in insertion order, so the LAST neighbor is explored first.
func DFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return traverse(g, start, goal, lifo, opts)
}

// traverse is the shared BFS/DFS loop.
//
// Steps per pop:
//  1. Check cancellation.
//  2. Pop per discipline.
//  3. Goal popped ⇒ done (checked before the visited test).
//  4. Already visited ⇒ drop.
//  5. Mark visited, run OnExpand, push every not-yet-visited neighbor with
//     cost + edge cost and a fresh path copy.
func traverse(g *core.Graph, start, goal string, d discipline, opts []Option) (*Result, error) {
	cfg, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	frontier := []record{{label: start, cost: 0, path: []string{start}}}
	visited := make(map[string]bool, g.NodeCount())
	expanded := 0

	var (
		cur record
		nbs []core.Neighbor
		nb  core.Neighbor
	)
	for len(frontier) > 0 {
		if err = cfg.cancelled(); err != nil {
			return nil, err
		}

		if d == lifo {
			cur = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			cur = frontier[0]
			frontier[0] = record{} // release the path for GC
			frontier = frontier[1:]
		}

		if cur.label == goal {
			return found(cur.path, cur.cost, expanded), nil
		}
		if visited[cur.label] {
			continue
		}
		visited[cur.label] = true

		if err = cfg.expand(cur.label, cur.cost); err != nil {
			return nil, err
		}
		expanded++

		if nbs, err = neighbors(g, cur.label); err != nil {
			return nil, err
		}
		for _, nb = range nbs {
			if visited[nb.Label] {
				continue
			}
			frontier = append(frontier, record{
				label: nb.Label,
				cost:  cur.cost + nb.Cost,
				path:  extend(cur.path, nb.Label),
			})
		}
	}

	return notFound(expanded), nil
}

// extend returns a new slice holding path followed by label.
func extend(path []string, label string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = label

	return out
}
