package builder

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// Sentinel errors.
var (
	// ErrTooFewNodes indicates a size parameter below its minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("builder: invalid option supplied")
)

// Defaults.
const (
	DefaultSpacing = 10.0
	DefaultExtent  = 100.0
	DefaultDetour  = 1.0
	defaultSeed    = 1
)

// Map is a generated graph with the coordinates of every node.
type Map struct {
	Graph  *core.Graph
	Coords heuristic.Table
}

// Option configures a constructor.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	idFn    IDFn
	spacing float64
	extent  float64
	detour  float64
	err     error
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		idFn:    ExcelColumnIDFn,
		spacing: DefaultSpacing,
		extent:  DefaultExtent,
		detour:  DefaultDetour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return config{}, cfg.err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg, nil
}

// WithSeed sets a deterministic random source; 0 means the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithIDFn sets the label scheme used by Scatter.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSpacing sets the distance between adjacent grid cells; s > 0.
func WithSpacing(s float64) Option {
	return func(c *config) {
		if !(s > 0) || math.IsInf(s, 0) {
			c.err = fmt.Errorf("%w: spacing must be positive (%v)", ErrOptionViolation, s)
			return
		}
		c.spacing = s
	}
}

// WithExtent sets the side of the square Scatter places cities on; e > 0.
func WithExtent(e float64) Option {
	return func(c *config) {
		if !(e > 0) || math.IsInf(e, 0) {
			c.err = fmt.Errorf("%w: extent must be positive (%v)", ErrOptionViolation, e)
			return
		}
		c.extent = e
	}
}

// WithDetour sets the upper bound of the per-road detour factor; d >= 1.
func WithDetour(d float64) Option {
	return func(c *config) {
		if !(d >= 1) || math.IsInf(d, 0) {
			c.err = fmt.Errorf("%w: detour must be >= 1 (%v)", ErrOptionViolation, d)
			return
		}
		c.detour = d
	}
}

// roadCost is ceil(distance × factor) with factor uniform in [1, detour],
// and never below 1.
func (c *config) roadCost(a, b r2.Vec) int64 {
	factor := 1.0
	if c.detour > 1 {
		factor += c.rng.Float64() * (c.detour - 1)
	}
	cost := int64(math.Ceil(r2.Norm(r2.Sub(a, b)) * factor))
	if cost < 1 {
		cost = 1
	}

	return cost
}
