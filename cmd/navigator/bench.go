package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Henok-et/navigation-algorithm-for-a-city/bench"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

const (
	keyRuns       = "runs"
	keyFormat     = "format"
	keyMetrics    = "metrics"
	keyAlgorithms = "algorithms"
)

func (a *app) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every strategy on one query and compare them",
		Example: `  navigator bench
  navigator bench --runs 50 --format yaml --algorithms ucs,astar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd)
		},
	}
	fs := cmd.Flags()
	fs.String(keyFrom, romania.Origin, "start label")
	fs.String(keyTo, romania.Destination, "goal label")
	fs.Int(keyRuns, bench.DefaultRuns, "repetitions per strategy")
	fs.String(keyFormat, "table", "report format: table, chart, csv or yaml")
	fs.Bool(keyMetrics, false, "append Prometheus metrics in text format")
	fs.StringSlice(keyAlgorithms, nil, "strategies to compare (default all)")
	addAnnealingFlags(fs)

	return cmd
}

func (a *app) runBench(cmd *cobra.Command) error {
	format := a.v.GetString(keyFormat)
	switch format {
	case "table", "chart", "csv", "yaml":
	default:
		return fmt.Errorf("navigator: unknown format %q", format)
	}

	var algs []search.Algorithm
	for _, name := range a.v.GetStringSlice(keyAlgorithms) {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algs = append(algs, alg)
	}

	d, err := a.loadData()
	if err != nil {
		return err
	}
	to := a.v.GetString(keyTo)
	h, err := a.heuristicFor(d, to)
	if err != nil {
		return err
	}

	runner := &bench.Runner{
		Runs:    a.v.GetInt(keyRuns),
		Seed:    a.v.GetInt64(keySeed),
		Logger:  a.log,
		Options: a.annealingOptions(),
	}
	if a.v.GetBool(keyMetrics) {
		runner.Metrics = bench.NewMetrics()
	}

	report, err := runner.Run(cmd.Context(), d.graph, a.v.GetString(keyFrom), to, h, algs...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		err = report.WriteCSV(out)
	case "yaml":
		err = report.WriteYAML(out)
	case "chart":
		err = report.WriteChart(out)
	default:
		err = report.WriteTable(out)
	}
	if err != nil {
		return err
	}
	if runner.Metrics != nil {
		fmt.Fprintln(out)
		return runner.Metrics.WriteText(out)
	}

	return nil
}
