package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// Load builds a graph from a city CSV and a road YAML and returns it with
// the coordinate table read from the same city rows.
func Load(cities, roads io.Reader) (*core.Graph, heuristic.Table, error) {
	records, err := ReadCityRecords(cities)
	if err != nil {
		return nil, nil, err
	}
	g := core.NewGraph()
	for _, rec := range records {
		if err = g.CreateNode(rec.Label); err != nil {
			return nil, nil, err
		}
	}

	rds, err := ReadRoads(roads)
	if err != nil {
		return nil, nil, err
	}
	if err = ApplyRoads(g, rds); err != nil {
		return nil, nil, err
	}

	return g, Table(records), nil
}

// LoadFiles is Load over two file paths.
func LoadFiles(citiesPath, roadsPath string) (*core.Graph, heuristic.Table, error) {
	cities, err := os.ReadFile(citiesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: read cities: %w", err)
	}
	roads, err := os.ReadFile(roadsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: read roads: %w", err)
	}

	return Load(bytes.NewReader(cities), bytes.NewReader(roads))
}
