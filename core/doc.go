// Package core provides the in-memory road graph that every search strategy
// in this module walks.
//
// A Graph is a table of Nodes keyed by a unique string label. Each Node owns
// an ordered list of Neighbor entries (label + integer cost). Relations are
// label keys into the same table, never pointers, so deleting a node can
// never leave a dangling reference behind.
//
// Semantics:
//
//   - CreateNode is idempotent.
//   - InsertEdge appends ONE directed neighbor entry. Undirected roads are
//     modeled by two calls (or InsertRoad, which does exactly that).
//   - No self-loop or duplicate-edge prevention: the graph stores what it is told.
//   - Neighbor order is insertion order. BFS/DFS tie-breaking depends on it.
//   - DeleteNode strips every inbound entry from the remaining nodes.
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode(label string) error              // O(1)
//	HasNode(label string) bool                  // O(1)
//	Node(label string) (Node, error)            // O(deg)
//	DeleteNode(label string) error              // O(V + E)
//
//	// Edge lifecycle
//	InsertEdge(from, to string, cost int64) error  // O(1) amortized
//	InsertRoad(a, b string, cost int64) error      // two InsertEdge calls
//	SetNeighbors(label string, nbs []Neighbor) error
//	DeleteEdge(from, to string) error              // O(deg(from))
//
//	// Queries
//	Neighbors(label string) ([]Neighbor, error)
//	Labels() []string        // insertion order
//	Edges() []Edge           // label order, then neighbor order
//	PathCost(path []string) (int64, error)
//
// Concurrency:
//
//	All methods take an internal sync.RWMutex, and every query returns a
//	detached copy. That makes individual calls race-free, but a search that
//	performs many reads is NOT isolated from a concurrent DeleteNode: callers
//	must serialize structural edits against running searches.
//
// Errors:
//
//	ErrEmptyLabel    - label is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - consecutive path labels are not linked.
package core
