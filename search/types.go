package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// Sentinel errors returned by the search strategies.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound is core.ErrNodeNotFound, re-exported so callers can
	// match start/goal lookups without importing core.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrMissingHeuristic is heuristic.ErrMissingHeuristic, re-exported.
	ErrMissingHeuristic = heuristic.ErrMissingHeuristic

	// ErrNilHeuristic indicates that an informed strategy got a nil Map.
	ErrNilHeuristic = errors.New("search: heuristic map is nil")

	// ErrNegativeCost indicates a negative edge cost where the strategy
	// requires non-negative costs (UCS, AStar).
	ErrNegativeCost = errors.New("search: negative edge cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNeighbors is returned when reading a node's neighbors fails mid-search,
	// which only happens if the graph was edited concurrently.
	ErrNeighbors = errors.New("search: neighbor iteration error")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Result is the outcome of a single search.
//
//   - Path: labels from start to goal, both inclusive; nil when not found.
//   - Cost: sum of edge costs along Path; +Inf when not found.
//   - Expanded: nodes whose neighbors were examined (for annealing: accepted moves).
//
// Cost is summed over the neighbor entries actually followed. When a node
// holds several entries toward the same neighbor, core.Graph.PathCost (which
// takes the first one) can disagree with Cost for the same Path.
type Result struct {
	Path     []string
	Cost     float64
	Expanded int
}

// Found reports whether the search reached its goal.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}

func found(path []string, cost int64, expanded int) *Result {
	return &Result{Path: path, Cost: float64(cost), Expanded: expanded}
}

func notFound(expanded int) *Result {
	return &Result{Path: nil, Cost: math.Inf(1), Expanded: expanded}
}

// Default annealing schedule.
const (
	DefaultTemperature   = 1000.0
	DefaultCoolingRate   = 0.95
	DefaultMaxIterations = 1000
)

// Option configures a search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every strategy.
// Fields that a strategy does not use are ignored by it.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per frontier pop
	// (or annealing iteration).
	Ctx context.Context

	// OnExpand is called when a node's neighbors are about to be examined,
	// with the accumulated cost that reached it. A non-nil error aborts.
	OnExpand func(label string, cost int64) error

	// Rand drives SimulatedAnnealing. Not safe to share across goroutines.
	Rand *rand.Rand

	// Temperature is the initial annealing temperature (> 0).
	Temperature float64

	// CoolingRate multiplies the temperature every iteration (0 < r < 1).
	CoolingRate float64

	// MaxIterations caps the annealing loop (> 0).
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op OnExpand
//   - nil Rand (resolved to a fixed default seed at run time)
//   - Temperature 1000, CoolingRate 0.95, MaxIterations 1000.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      func(string, int64) error { return nil },
		Temperature:   DefaultTemperature,
		CoolingRate:   DefaultCoolingRate,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(label string, cost int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithRand injects the random source used by SimulatedAnnealing.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = NewRand(seed)
	}
}

// WithTemperature sets the initial annealing temperature; t must be > 0.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: temperature must be positive and finite (%v)", ErrOptionViolation, t)
			return
		}
		o.Temperature = t
	}
}

// WithCoolingRate sets the geometric cooling factor; r must be in (0, 1).
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if !(r > 0 && r < 1) {
			o.err = fmt.Errorf("%w: cooling rate must be in (0,1) (%v)", ErrOptionViolation, r)
			return
		}
		o.CoolingRate = r
	}
}

// WithMaxIterations caps the annealing loop; n must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
