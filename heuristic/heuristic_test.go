package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range []string{"O", "E", "N"} {
		require.NoError(t, g.CreateNode(l))
	}
	return g
}

func TestTable_DistanceAndDefault(t *testing.T) {
	tab := heuristic.Table{
		"O": {X: 0, Y: 0},
		"E": {X: 3, Y: 4},
	}
	assert.InDelta(t, 5.0, tab.Distance("O", "E"), 1e-12)
	assert.InDelta(t, 5.0, tab.Distance("E", "O"), 1e-12)

	// Unknown label silently resolves to the origin.
	assert.False(t, tab.Has("Nowhere"))
	assert.Equal(t, r2.Vec{}, tab.Lookup("Nowhere"))
	assert.InDelta(t, 5.0, tab.Distance("Nowhere", "E"), 1e-12)
}

func TestEuclidean(t *testing.T) {
	g := triangle(t)
	tab := heuristic.Table{
		"O": {X: 0, Y: 0},
		"E": {X: 3, Y: 4},
		"N": {X: 0, Y: 10},
	}

	h, err := heuristic.Euclidean(g, tab, "E")
	require.NoError(t, err)
	require.Len(t, h, 3)
	assert.InDelta(t, 0.0, h["E"], 1e-12)
	assert.InDelta(t, 5.0, h["O"], 1e-12)

	scaled, err := heuristic.Euclidean(g, tab, "E", heuristic.WithScale(2))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, scaled["O"], 1e-12)
}

func TestEuclidean_Errors(t *testing.T) {
	g := triangle(t)

	_, err := heuristic.Euclidean(nil, nil, "E")
	assert.ErrorIs(t, err, heuristic.ErrNilGraph)

	_, err = heuristic.Euclidean(g, nil, "")
	assert.ErrorIs(t, err, heuristic.ErrEmptyGoal)

	_, err = heuristic.Euclidean(g, nil, "E", heuristic.WithScale(0))
	assert.ErrorIs(t, err, heuristic.ErrBadScale)
}

func TestMap_Estimate(t *testing.T) {
	g := triangle(t)
	h, err := heuristic.Zero(g)
	require.NoError(t, err)

	v, err := h.Estimate("N")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = h.Estimate("Nowhere")
	assert.ErrorIs(t, err, heuristic.ErrMissingHeuristic)

	_, err = heuristic.Zero(nil)
	assert.ErrorIs(t, err, heuristic.ErrNilGraph)
}
