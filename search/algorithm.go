package search

import (
	"fmt"
	"strings"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// Algorithm names a search strategy.
type Algorithm string

// Supported strategies.
const (
	AlgorithmBFS       Algorithm = "bfs"
	AlgorithmDFS       Algorithm = "dfs"
	AlgorithmUCS       Algorithm = "ucs"
	AlgorithmAStar     Algorithm = "astar"
	AlgorithmAnnealing Algorithm = "annealing"
)

// All returns every strategy in the canonical comparison order.
func All() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmUCS, AlgorithmAStar, AlgorithmAnnealing}
}

// Informed reports whether the strategy takes a heuristic map.
func (a Algorithm) Informed() bool {
	return a == AlgorithmAStar || a == AlgorithmAnnealing
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm resolves a case-insensitive name. "a*" and "sa" are
// accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dfs":
		return AlgorithmDFS, nil
	case "ucs":
		return AlgorithmUCS, nil
	case "astar", "a*":
		return AlgorithmAStar, nil
	case "annealing", "sa":
		return AlgorithmAnnealing, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Run dispatches to the named strategy. h is ignored by uninformed ones.
func Run(a Algorithm, g *core.Graph, start, goal string, h heuristic.Map, opts ...Option) (*Result, error) {
	switch a {
	case AlgorithmBFS:
		return BFS(g, start, goal, opts...)
	case AlgorithmDFS:
		return DFS(g, start, goal, opts...)
	case AlgorithmUCS:
		return UCS(g, start, goal, opts...)
	case AlgorithmAStar:
		return AStar(g, start, goal, h, opts...)
	case AlgorithmAnnealing:
		return SimulatedAnnealing(g, start, goal, h, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}
