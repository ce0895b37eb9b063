// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Labels() returns labels in creation order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

// CreateNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrEmptyLabel: if label == "".
//
// Complexity: O(1) amortized.
func (g *Graph) CreateNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Existing node: no-op.
	if _, exists := g.nodes[label]; exists {
		return nil
	}
	g.nodes[label] = &Node{Label: label, Neighbors: make([]Neighbor, 0)}
	g.order = append(g.order, label)

	return nil
}

// HasNode reports whether the label exists (empty label ⇒ false).
func (g *Graph) HasNode(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[label]

	return ok
}

// Node looks up a node by label and returns a detached copy of it.
//
// Errors:
//   - ErrNodeNotFound: if no node carries that label.
//
// Complexity: O(deg(label)) for the neighbor copy.
func (g *Graph) Node(label string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return Node{Label: n.Label, Neighbors: copyNeighbors(n.Neighbors)}, nil
}

// DeleteNode removes the node and strips every reference to it from the
// remaining nodes' neighbor lists.
//
// Implementation:
//   - Stage 1: Validate label and presence.
//   - Stage 2: Drop the node from the table and from the creation order.
//   - Stage 3: Filter every remaining neighbor list in place.
//
// Errors:
//   - ErrEmptyLabel, ErrNodeNotFound.
//
// Complexity: O(V + E).
func (g *Graph) DeleteNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[label]; !exists {
		return ErrNodeNotFound
	}

	// Stage 2: catalog removal.
	delete(g.nodes, label)
	var i int
	for i = range g.order {
		if g.order[i] == label {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	// Stage 3: strip inbound entries so no list points at a missing node.
	var n *Node
	for _, n = range g.nodes {
		n.Neighbors = withoutLabel(n.Neighbors, label)
	}

	return nil
}

// Labels returns every node label in creation order.
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// copyNeighbors returns an independent copy of nbs (never nil).
func copyNeighbors(nbs []Neighbor) []Neighbor {
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out
}

// withoutLabel filters nbs in place, dropping every entry that points at label.
func withoutLabel(nbs []Neighbor, label string) []Neighbor {
	kept := nbs[:0]
	var nb Neighbor
	for _, nb = range nbs {
		if nb.Label != label {
			kept = append(kept, nb)
		}
	}

	return kept
}
