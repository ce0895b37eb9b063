package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that the provided node label is empty.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that two labels expected to be linked are not.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Neighbor is one outgoing relation of a Node: the label of the node it
// leads to and the cost of travelling there.
type Neighbor struct {
	// Label of the destination node.
	Label string

	// Cost of the edge. Callers are expected to keep it non-negative.
	Cost int64
}

// Node is a uniquely labeled vertex with an ordered list of neighbors.
//
// Values returned by Graph are detached copies; mutating them does not
// affect the graph.
type Node struct {
	// Label uniquely identifies this Node within its Graph.
	Label string

	// Neighbors in insertion order.
	Neighbors []Neighbor
}

// Edge is a flat view of a single directed neighbor entry.
type Edge struct {
	From string
	To   string
	Cost int64
}

// Graph is a label-keyed table of nodes with weighted, ordered adjacency.
//
// mu guards both nodes and order; order keeps node creation order so that
// Labels() and Edges() are reproducible across runs.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node // label → node
	order []string         // creation order of labels
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		order: make([]string, 0),
	}
}
