package loader_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/loader"
)

const cityCSV = `city,x,y
Arad,46.1866,21.3123
Zerind,46.6225,21.5174
 Sibiu ,45.7983,24.1256
`

func TestReadCityRecords(t *testing.T) {
	recs, err := loader.ReadCityRecords(strings.NewReader(cityCSV))
	require.NoError(t, err)

	want := []loader.CityRecord{
		{Label: "Arad", X: 46.1866, Y: 21.3123},
		{Label: "Zerind", X: 46.6225, Y: 21.5174},
		{Label: "Sibiu", X: 45.7983, Y: 24.1256},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCityRecords_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"narrow":       "city,x\nArad,1\n",
		"not a number": "city,x,y\nArad,north,2\n",
		"ragged":       "city,x,y\nArad,1\n",
		"empty label":  "city,x,y\n,1,2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ReadCityRecords(strings.NewReader(in))
			assert.ErrorIs(t, err, loader.ErrMalformedInput)
		})
	}
}

func TestReadCityRecords_ExtraColumnsIgnored(t *testing.T) {
	in := "city,x,y,population,region\nArad,46.1866,21.3123,159074,Crisana\nSibiu,45.7983,24.1256,147245,Transylvania\n"
	recs, err := loader.ReadCityRecords(strings.NewReader(in))
	require.NoError(t, err)

	want := []loader.CityRecord{
		{Label: "Arad", X: 46.1866, Y: 21.3123},
		{Label: "Sibiu", X: 45.7983, Y: 24.1256},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	// Rows still have to match the header width.
	_, err = loader.ReadCityRecords(strings.NewReader("city,x,y,population\nArad,1,2\n"))
	assert.ErrorIs(t, err, loader.ErrMalformedInput)
}

func TestLoadCitiesAndCoordinates(t *testing.T) {
	g := core.NewGraph()
	labels, err := loader.LoadCities(g, strings.NewReader(cityCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad", "Zerind", "Sibiu"}, labels)
	assert.Equal(t, labels, g.Labels())

	tab, err := loader.LoadCoordinates(strings.NewReader(cityCSV))
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 46.6225, Y: 21.5174}, tab["Zerind"])
}

const roadYAML = `
roads:
  - {from: Arad, to: Zerind, cost: 75}
  - {from: Arad, to: Sibiu, cost: 140, bidirectional: true}
`

func TestReadAndApplyRoads(t *testing.T) {
	roads, err := loader.ReadRoads(strings.NewReader(roadYAML))
	require.NoError(t, err)
	require.Len(t, roads, 2)
	assert.Equal(t, loader.Road{From: "Arad", To: "Sibiu", Cost: 140, Bidirectional: true}, roads[1])

	g := core.NewGraph()
	_, err = loader.LoadCities(g, strings.NewReader(cityCSV))
	require.NoError(t, err)
	require.NoError(t, loader.ApplyRoads(g, roads))

	nbs, err := g.Neighbors("Arad")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{Label: "Zerind", Cost: 75}, {Label: "Sibiu", Cost: 140}}, nbs)

	back, err := g.Neighbors("Zerind")
	require.NoError(t, err)
	assert.Empty(t, back, "directed entry must not be mirrored")
	assert.Equal(t, 3, g.EdgeCount())
}

func TestReadRoads_Malformed(t *testing.T) {
	cases := map[string]string{
		"negative":      "roads:\n  - {from: A, to: B, cost: -1}\n",
		"empty from":    "roads:\n  - {from: '', to: B, cost: 1}\n",
		"unknown field": "roads:\n  - {from: A, to: B, cost: 1, toll: 3}\n",
		"bad yaml":      "roads: [\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ReadRoads(strings.NewReader(in))
			assert.ErrorIs(t, err, loader.ErrMalformedInput)
		})
	}

	roads, err := loader.ReadRoads(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, roads)
}

func TestApplyRoads_UnknownCity(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.CreateNode("A"))
	err := loader.ApplyRoads(g, []loader.Road{{From: "A", To: "B", Cost: 1}})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestLoad(t *testing.T) {
	g, tab, err := loader.Load(strings.NewReader(cityCSV), strings.NewReader(roadYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, tab.Has("Sibiu"))

	_, _, err = loader.LoadFiles("does-not-exist.csv", "roads.yaml")
	assert.Error(t, err)
}
