package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

func (a *app) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find one route with one strategy",
		Example: `  navigator search --from Arad --to Bucharest --algorithm ucs
  navigator search --algorithm annealing --seed 42 --temperature 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd)
		},
	}
	fs := cmd.Flags()
	fs.String(keyFrom, romania.Origin, "start label")
	fs.String(keyTo, romania.Destination, "goal label")
	fs.String(keyAlgorithm, search.AlgorithmAStar.String(), "bfs, dfs, ucs, astar or annealing")
	addAnnealingFlags(fs)

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command) error {
	alg, err := search.ParseAlgorithm(a.v.GetString(keyAlgorithm))
	if err != nil {
		return err
	}
	d, err := a.loadData()
	if err != nil {
		return err
	}
	from, to := a.v.GetString(keyFrom), a.v.GetString(keyTo)

	var h heuristic.Map
	if alg.Informed() {
		if h, err = a.heuristicFor(d, to); err != nil {
			return err
		}
	}

	log := a.log.WithField("algorithm", alg.String())
	opts := append(a.annealingOptions(),
		search.WithContext(cmd.Context()),
		search.WithSeed(a.v.GetInt64(keySeed)),
		search.WithOnExpand(func(label string, cost int64) error {
			log.WithFields(logrus.Fields{"node": label, "cost": cost}).Debug("expand")
			return nil
		}),
	)

	res, err := search.Run(alg, d.graph, from, to, h, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "algorithm: %s\n", alg)
	if !res.Found() {
		fmt.Fprintf(out, "no path from %s to %s\n", from, to)
	} else {
		fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " -> "))
	}
	fmt.Fprintf(out, "cost: %v\n", res.Cost)
	fmt.Fprintf(out, "expanded: %d\n", res.Expanded)

	return nil
}
