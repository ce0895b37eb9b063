package heuristic

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
)

// Sentinel errors for heuristic construction and lookup.
var (
	// ErrEmptyGoal indicates that no goal label was supplied.
	ErrEmptyGoal = errors.New("heuristic: goal label is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrMissingHeuristic indicates that a Map has no entry for a label.
	ErrMissingHeuristic = errors.New("heuristic: missing estimate")

	// ErrBadScale indicates a non-positive WithScale factor.
	ErrBadScale = errors.New("heuristic: scale must be positive")
)

// Map holds one remaining-cost estimate per node label.
type Map map[string]float64

// Estimate returns the estimate stored for label.
//
// Errors:
//   - ErrMissingHeuristic (wrapped with the label) when absent.
func (m Map) Estimate(label string) (float64, error) {
	h, ok := m[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingHeuristic, label)
	}

	return h, nil
}

// Table maps node labels to planar coordinates.
type Table map[string]r2.Vec

// Has reports whether label has recorded coordinates.
func (t Table) Has(label string) bool {
	_, ok := t[label]
	return ok
}

// Lookup returns the coordinates of label, or the origin when unknown.
func (t Table) Lookup(label string) r2.Vec {
	return t[label]
}

// Distance is the Euclidean distance between the coordinates of a and b.
func (t Table) Distance(a, b string) float64 {
	return r2.Norm(r2.Sub(t.Lookup(a), t.Lookup(b)))
}

// Option configures Euclidean.
type Option func(*options)

type options struct {
	scale float64
	err   error
}

// WithScale multiplies every distance by k, e.g. to turn degrees into the
// unit edge costs are expressed in. k must be > 0.
func WithScale(k float64) Option {
	return func(o *options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadScale, k)
			return
		}
		o.scale = k
	}
}

// Euclidean builds a Map with one entry per node of g: the straight-line
// distance between the node's coordinates and goal's.
//
// The goal does not have to be a node of g; its coordinates come from t.
//
// Complexity: O(V).
func Euclidean(g *core.Graph, t Table, goal string, opts ...Option) (Map, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	cfg := options{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	labels := g.Labels()
	m := make(Map, len(labels))
	var label string
	for _, label = range labels {
		m[label] = cfg.scale * t.Distance(label, goal)
	}

	return m, nil
}

// Zero returns a Map of zero estimates for every node of g. A* driven by it
// expands exactly like uniform-cost search.
func Zero(g *core.Graph) (Map, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels := g.Labels()
	m := make(Map, len(labels))
	for _, label := range labels {
		m[label] = 0
	}

	return m, nil
}
