// File: methods_clone.go
// Role: Deep copy of a Graph.
package core

// Clone returns a deep copy: same labels in the same creation order, same
// neighbor lists in the same order. The copy shares no memory with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodes: make(map[string]*Node, len(g.nodes)),
		order: make([]string, len(g.order)),
	}
	copy(c.order, g.order)

	var (
		label string
		n     *Node
	)
	for label, n = range g.nodes {
		c.nodes[label] = &Node{Label: n.Label, Neighbors: copyNeighbors(n.Neighbors)}
	}

	return c
}
