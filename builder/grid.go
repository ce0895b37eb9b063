package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

const (
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridLabel is the label Grid gives to the cell at row r, column c.
func GridLabel(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid builds a rows×cols street grid. Cell (r, c) sits at
// (c×spacing, r×spacing).
//
// Determinism: nodes in row-major order; for each cell the right road is
// inserted before the bottom one.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*Map, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%w: grid %dx%d (each side must be ≥ %d)", ErrTooFewNodes, rows, cols, minGridDim)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	coords := make(heuristic.Table, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			label := GridLabel(r, c)
			if err = g.CreateNode(label); err != nil {
				return nil, err
			}
			coords[label] = r2.Vec{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
		}
	}

	link := func(a, b string) error {
		return g.InsertRoad(a, b, cfg.roadCost(coords[a], coords[b]))
	}
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u := GridLabel(r, c)
			if c+1 < cols {
				if err = link(u, GridLabel(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = link(u, GridLabel(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Map{Graph: g, Coords: coords}, nil
}
