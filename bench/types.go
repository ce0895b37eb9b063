package bench

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

// DefaultRuns is the number of repetitions when Runner.Runs is zero.
const DefaultRuns = 10

// ErrBadRuns is returned when Runner.Runs is negative.
var ErrBadRuns = errors.New("bench: runs must be positive")

// Runner configures a benchmark. The zero value is usable.
type Runner struct {
	// Runs per algorithm; 0 means DefaultRuns.
	Runs int

	// Seed is the first annealing seed; run i uses Seed+i. 0 behaves as 1.
	Seed int64

	// Logger receives one debug entry per run. Nil discards.
	Logger logrus.FieldLogger

	// Metrics, when set, records every run.
	Metrics *Metrics

	// Options are appended to every search call, after the per-run seed.
	Options []search.Option
}

// Measurement summarizes the runs of one algorithm.
type Measurement struct {
	Algorithm     string   `yaml:"algorithm"`
	Runs          int      `yaml:"runs"`
	Found         int      `yaml:"found"`
	SuccessRatio  float64  `yaml:"success_ratio"`
	MeanSeconds   float64  `yaml:"mean_seconds"`
	StdDevSeconds float64  `yaml:"stddev_seconds"`
	MeanCost      float64  `yaml:"mean_cost"`
	Cost          float64  `yaml:"cost"`
	Expanded      int      `yaml:"expanded"`
	Path          []string `yaml:"path"`
}

// Report is the outcome of Runner.Run.
type Report struct {
	Start        string        `yaml:"start"`
	Goal         string        `yaml:"goal"`
	Measurements []Measurement `yaml:"measurements"`
}

// Get returns the measurement for alg.
func (r Report) Get(alg search.Algorithm) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Algorithm == alg.String() {
			return m, true
		}
	}
	return Measurement{}, false
}
