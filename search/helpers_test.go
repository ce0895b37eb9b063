package search_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

// reference returns a fresh copy of the Romania map.
func reference(t testing.TB) *core.Graph {
	t.Helper()
	g, err := romania.Graph()
	require.NoError(t, err)
	return g
}

// build creates a graph from labels and directed (from, to, cost) triples.
func build(t testing.TB, labels []string, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range labels {
		require.NoError(t, g.CreateNode(l))
	}
	for _, e := range edges {
		require.NoError(t, g.InsertEdge(e.From, e.To, e.Cost))
	}
	return g
}

// randomGraph builds n nodes and up to n*deg undirected roads with costs in
// [0, maxCost], reproducibly from seed. Each pair is linked at most once so
// PathCost agrees with whichever entry a search followed.
func randomGraph(t testing.TB, seed int64, n, deg int, maxCost int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.CreateNode("N"+strconv.Itoa(i)))
	}
	linked := make(map[[2]int]bool)
	for i := 0; i < n*deg; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b || linked[[2]int{a, b}] {
			continue
		}
		linked[[2]int{a, b}] = true
		linked[[2]int{b, a}] = true
		require.NoError(t, g.InsertRoad("N"+strconv.Itoa(a), "N"+strconv.Itoa(b), rng.Int63n(maxCost+1)))
	}
	return g
}

// requireConsistent asserts the round-trip property: a found path starts at
// start, ends at goal and its edge costs sum exactly to the reported cost.
func requireConsistent(t testing.TB, g *core.Graph, res *search.Result, start, goal string) {
	t.Helper()
	require.NotNil(t, res)
	if !res.Found() {
		require.Nil(t, res.Path)
		require.True(t, math.IsInf(res.Cost, 1))
		return
	}
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	sum, err := g.PathCost(res.Path)
	require.NoError(t, err)
	require.Equal(t, float64(sum), res.Cost, "path %v", res.Path)
}
