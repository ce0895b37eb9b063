// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/InsertRoad/SetNeighbors/DeleteEdge,
//       Neighbors/Edges/EdgeCount and PathCost.
//
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() walks nodes in creation order, then neighbors in insertion order.
package core

import "fmt"

// InsertEdge appends a single directed neighbor entry from → to.
//
// The graph is left unchanged when either endpoint is absent. No self-loop
// or duplicate prevention is applied.
//
// Errors:
//   - ErrNodeNotFound: if from or to does not exist.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(from, to string, cost int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok = g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	src.Neighbors = append(src.Neighbors, Neighbor{Label: to, Cost: cost})

	return nil
}

// InsertRoad links a and b in both directions with the same cost.
// Both entries are inserted under one lock, so a concurrent DeleteNode sees
// either the whole road or none of it.
func (g *Graph) InsertRoad(a, b string, cost int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	dst, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	src.Neighbors = append(src.Neighbors, Neighbor{Label: b, Cost: cost})
	dst.Neighbors = append(dst.Neighbors, Neighbor{Label: a, Cost: cost})

	return nil
}

// SetNeighbors appends one directed entry per element of nbs, in order.
// Neighbors whose label is not in the graph are skipped silently.
//
// Errors:
//   - ErrNodeNotFound: if label itself does not exist.
func (g *Graph) SetNeighbors(label string, nbs []Neighbor) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}
	var nb Neighbor
	for _, nb = range nbs {
		if _, ok = g.nodes[nb.Label]; !ok {
			continue
		}
		src.Neighbors = append(src.Neighbors, nb)
	}

	return nil
}

// DeleteEdge removes every from → to entry. Deleting a non-existent edge
// between existing nodes is a no-op.
//
// Errors:
//   - ErrNodeNotFound: if from or to does not exist.
//
// Complexity: O(deg(from)).
func (g *Graph) DeleteEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok = g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	src.Neighbors = withoutLabel(src.Neighbors, to)

	return nil
}

// Neighbors returns a copy of label's neighbor list in insertion order.
//
// Errors:
//   - ErrNodeNotFound: if label does not exist.
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	return copyNeighbors(n.Neighbors), nil
}

// Edges returns every directed entry as a flat Edge slice.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.order))
	var (
		label string
		nb    Neighbor
	)
	for _, label = range g.order {
		for _, nb = range g.nodes[label].Neighbors {
			out = append(out, Edge{From: label, To: nb.Label, Cost: nb.Cost})
		}
	}

	return out
}

// EdgeCount returns the number of directed neighbor entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int
	var n *Node
	for _, n = range g.nodes {
		total += len(n.Neighbors)
	}

	return total
}

// PathCost sums the edge costs along path. For each hop the first matching
// neighbor entry is used. A single-element path costs 0; an empty path is
// rejected with ErrEdgeNotFound.
//
// Parallel entries: a path alone does not say which of several A→B entries
// was followed, so when a node holds more than one entry toward the same
// neighbor, the sum may differ from the cost a search reported for that
// path. Graphs with at most one entry per ordered pair always agree.
//
// Errors:
//   - ErrNodeNotFound: a label in path does not exist.
//   - ErrEdgeNotFound: two consecutive labels are not linked, or path is empty.
func (g *Graph) PathCost(path []string) (int64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrEdgeNotFound)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[path[0]]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, path[0])
	}

	var total int64
	var i int
	for i = 1; i < len(path); i++ {
		src, ok := g.nodes[path[i-1]]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, path[i-1])
		}
		cost, linked := firstCost(src.Neighbors, path[i])
		if !linked {
			return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, path[i-1], path[i])
		}
		total += cost
	}

	return total, nil
}

// firstCost returns the cost of the first entry in nbs pointing at label.
func firstCost(nbs []Neighbor, label string) (int64, bool) {
	var nb Neighbor
	for _, nb = range nbs {
		if nb.Label == label {
			return nb.Cost, true
		}
	}

	return 0, false
}
