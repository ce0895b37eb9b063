// Benchmarks for the five search strategies.
//
// Policy:
//   - Inputs (graph, heuristic) are built outside the timer.
//   - Fixed seeds for the random graph and for annealing.
package search_test

import (
	"testing"

	"github.com/Henok-et/navigation-algorithm-for-a-city/builder"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

func benchRomania(b *testing.B, alg search.Algorithm) {
	g := reference(b)
	h := romania.StraightLineToBucharest()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(alg, g, romania.Origin, romania.Destination, h, search.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRomania_BFS(b *testing.B)       { benchRomania(b, search.AlgorithmBFS) }
func BenchmarkRomania_DFS(b *testing.B)       { benchRomania(b, search.AlgorithmDFS) }
func BenchmarkRomania_UCS(b *testing.B)       { benchRomania(b, search.AlgorithmUCS) }
func BenchmarkRomania_AStar(b *testing.B)     { benchRomania(b, search.AlgorithmAStar) }
func BenchmarkRomania_Annealing(b *testing.B) { benchRomania(b, search.AlgorithmAnnealing) }

// BenchmarkRandom_UCS_n2000 runs UCS across a sparse random graph.
func BenchmarkRandom_UCS_n2000(b *testing.B) {
	const n = 2000
	g := randomGraph(b, 42, n, 3, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.UCS(g, "N0", "N1999"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRandom_AStarZero_n2000 is UCS in A* clothing; the gap to the
// benchmark above is the cost of heuristic lookups.
func BenchmarkRandom_AStarZero_n2000(b *testing.B) {
	const n = 2000
	g := randomGraph(b, 42, n, 3, 100)
	h, err := heuristic.Zero(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.AStar(g, "N0", "N1999", h); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkScatter_UCSvsAStar contrasts the two optimal strategies on a
// planar map where the Euclidean estimate is informative.
func BenchmarkScatter_UCSvsAStar(b *testing.B) {
	m, err := builder.Scatter(2000, 3, builder.WithSeed(5), builder.WithDetour(1.4))
	if err != nil {
		b.Fatal(err)
	}
	labels := m.Graph.Labels()
	start, goal := labels[0], labels[len(labels)-1]
	h, err := heuristic.Euclidean(m.Graph, m.Coords, goal)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("ucs", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.UCS(m.Graph, start, goal); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("astar", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.AStar(m.Graph, start, goal, h); err != nil {
				b.Fatal(err)
			}
		}
	})
}
