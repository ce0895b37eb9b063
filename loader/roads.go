package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
)

// Road is one entry of the road file.
type Road struct {
	From          string `yaml:"from"`
	To            string `yaml:"to"`
	Cost          int64  `yaml:"cost"`
	Bidirectional bool   `yaml:"bidirectional,omitempty"`
}

// roadFile is the YAML document layout.
type roadFile struct {
	Roads []Road `yaml:"roads"`
}

// ReadRoads decodes a road file. Unknown keys are rejected. An empty
// document yields no roads.
//
// Errors:
//   - ErrMalformedInput: YAML errors, empty endpoints, negative costs.
func ReadRoads(r io.Reader) ([]Road, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc roadFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Road{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var i int
	for i = range doc.Roads {
		doc.Roads[i].From = strings.TrimSpace(doc.Roads[i].From)
		doc.Roads[i].To = strings.TrimSpace(doc.Roads[i].To)
		if err := validateRoad(i, doc.Roads[i]); err != nil {
			return nil, err
		}
	}
	if doc.Roads == nil {
		doc.Roads = []Road{}
	}

	return doc.Roads, nil
}

func validateRoad(i int, rd Road) error {
	if rd.From == "" || rd.To == "" {
		return fmt.Errorf("%w: road #%d has an empty endpoint", ErrMalformedInput, i)
	}
	if rd.Cost < 0 {
		return fmt.Errorf("%w: road #%d %s→%s has negative cost %d", ErrMalformedInput, i, rd.From, rd.To, rd.Cost)
	}
	return nil
}

// ApplyRoads inserts roads into g in order. Every endpoint must already be a
// node of g; the first road that references an unknown city aborts.
func ApplyRoads(g *core.Graph, roads []Road) error {
	var (
		rd  Road
		i   int
		err error
	)
	for i, rd = range roads {
		if rd.Bidirectional {
			err = g.InsertRoad(rd.From, rd.To, rd.Cost)
		} else {
			err = g.InsertEdge(rd.From, rd.To, rd.Cost)
		}
		if err != nil {
			return fmt.Errorf("loader: road #%d %s→%s: %w", i, rd.From, rd.To, err)
		}
	}

	return nil
}
