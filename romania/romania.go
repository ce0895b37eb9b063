// Package romania ships the reference road map used throughout the examples,
// tests and the navigator CLI: twenty Romanian cities with coordinates and
// the road segments between thirteen of them.
//
// The data lives in embedded files (data/cities.csv, data/roads.yaml) and is
// read through package loader, so the reference map goes through exactly
// the same boundary as user-supplied files.
//
// Eforie, Hirsova, Iasi, Neamt, Urziceni and Vaslui have no roads, and
// Giurgiu is only reachable (one-way) from Bucharest. Searches toward them
// are the canonical "no path" cases.
package romania

import (
	"bytes"
	_ "embed"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
	"github.com/Henok-et/navigation-algorithm-for-a-city/loader"
)

// Canonical query of the reference map.
const (
	Origin      = "Arad"
	Destination = "Bucharest"
)

//go:embed data/cities.csv
var citiesCSV []byte

//go:embed data/roads.yaml
var roadsYAML []byte

// Graph returns a fresh copy of the reference map.
func Graph() (*core.Graph, error) {
	g, _, err := loader.Load(bytes.NewReader(citiesCSV), bytes.NewReader(roadsYAML))
	return g, err
}

// Coordinates returns the latitude/longitude table of every city.
func Coordinates() (heuristic.Table, error) {
	return loader.LoadCoordinates(bytes.NewReader(citiesCSV))
}

// CitiesCSV returns the embedded city file.
func CitiesCSV() []byte { return bytes.Clone(citiesCSV) }

// RoadsYAML returns the embedded road file.
func RoadsYAML() []byte { return bytes.Clone(roadsYAML) }

// StraightLineToBucharest is the classic straight-line distance table (km)
// toward Bucharest. It is admissible and consistent on the reference map.
func StraightLineToBucharest() heuristic.Map {
	return heuristic.Map{
		"Arad":           366,
		"Bucharest":      0,
		"Craiova":        160,
		"Drobeta":        242,
		"Eforie":         161,
		"Fagaras":        176,
		"Giurgiu":        77,
		"Hirsova":        151,
		"Iasi":           226,
		"Lugoj":          244,
		"Mehadia":        241,
		"Neamt":          234,
		"Oradea":         380,
		"Pitesti":        100,
		"Rimnicu Vilcea": 193,
		"Sibiu":          253,
		"Timisoara":      329,
		"Urziceni":       80,
		"Vaslui":         199,
		"Zerind":         374,
	}
}
