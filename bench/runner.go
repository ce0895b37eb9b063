package bench

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

// Run measures each of algs (search.All() when empty) on the query
// start→goal. The first search error aborts the whole benchmark.
func (r *Runner) Run(ctx context.Context, g *core.Graph, start, goal string, h heuristic.Map, algs ...search.Algorithm) (Report, error) {
	runs := r.Runs
	if runs == 0 {
		runs = DefaultRuns
	}
	if runs < 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrBadRuns, runs)
	}
	if len(algs) == 0 {
		algs = search.All()
	}
	seed := r.Seed
	if seed == 0 {
		seed = 1
	}

	report := Report{Start: start, Goal: goal, Measurements: make([]Measurement, 0, len(algs))}
	var (
		alg search.Algorithm
		m   Measurement
		err error
	)
	for _, alg = range algs {
		if m, err = r.measure(ctx, alg, runs, seed, g, start, goal, h); err != nil {
			return Report{}, err
		}
		report.Measurements = append(report.Measurements, m)
	}

	return report, nil
}

func (r *Runner) measure(ctx context.Context, alg search.Algorithm, runs int, seed int64, g *core.Graph, start, goal string, h heuristic.Map) (Measurement, error) {
	log := r.logger().WithField("algorithm", alg.String())
	durations := make([]float64, 0, runs)
	costs := make([]float64, 0, runs)
	m := Measurement{Algorithm: alg.String(), Runs: runs}

	var (
		res     *search.Result
		err     error
		began   time.Time
		elapsed time.Duration
	)
	for i := 0; i < runs; i++ {
		opts := make([]search.Option, 0, len(r.Options)+2)
		opts = append(opts, search.WithContext(ctx), search.WithSeed(seed+int64(i)))
		opts = append(opts, r.Options...)

		began = time.Now()
		res, err = search.Run(alg, g, start, goal, h, opts...)
		elapsed = time.Since(began)
		if err != nil {
			return Measurement{}, fmt.Errorf("bench: %s run %d: %w", alg, i, err)
		}

		durations = append(durations, elapsed.Seconds())
		if res.Found() {
			m.Found++
			costs = append(costs, res.Cost)
		}
		if i == 0 {
			m.Path = res.Path
			m.Cost = res.Cost
			m.Expanded = res.Expanded
		}
		if r.Metrics != nil {
			r.Metrics.Observe(alg, elapsed, res)
		}
		log.WithFields(logrus.Fields{
			"run":      i,
			"found":    res.Found(),
			"cost":     res.Cost,
			"expanded": res.Expanded,
			"elapsed":  elapsed,
		}).Debug("search finished")
	}

	m.SuccessRatio = float64(m.Found) / float64(runs)
	if runs > 1 {
		m.MeanSeconds, m.StdDevSeconds = stat.MeanStdDev(durations, nil)
	} else {
		m.MeanSeconds = durations[0]
	}
	m.MeanCost = math.Inf(1)
	if len(costs) > 0 {
		m.MeanCost = stat.Mean(costs, nil)
	}

	return m, nil
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
