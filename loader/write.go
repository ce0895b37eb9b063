package loader

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// WriteCities writes one row per node of g, in label order, in the format
// ReadCityRecords accepts. Nodes missing from t get the origin.
func WriteCities(w io.Writer, g *core.Graph, t heuristic.Table) error {
	labels := g.Labels()
	records := make([]CityRecord, 0, len(labels))
	for _, label := range labels {
		v := t.Lookup(label)
		records = append(records, CityRecord{Label: label, X: v.X, Y: v.Y})
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("loader: write cities: %w", err)
	}

	return nil
}

// WriteRoads writes every directed edge of g as a one-way road, in the
// order Graph.Edges reports them. Reading the file back with ApplyRoads
// reproduces the same neighbor lists.
func WriteRoads(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	doc := roadFile{Roads: make([]Road, 0, len(edges))}
	for _, e := range edges {
		doc.Roads = append(doc.Roads, Road{From: e.From, To: e.To, Cost: e.Cost})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: write roads: %w", err)
	}

	return enc.Close()
}
