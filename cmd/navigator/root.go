package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
	"github.com/Henok-et/navigation-algorithm-for-a-city/loader"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

const envPrefix = "NAVIGATOR"

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig         = "config"
	keyCities         = "cities"
	keyRoads          = "roads"
	keyLogLevel       = "log-level"
	keyHeuristicScale = "heuristic-scale"

	keyFrom        = "from"
	keyTo          = "to"
	keyAlgorithm   = "algorithm"
	keySeed        = "seed"
	keyTemperature = "temperature"
	keyCoolingRate = "cooling-rate"
	keyIterations  = "iterations"
)

var errPartialData = errors.New("navigator: --cities and --roads must be given together")

// app carries the state every subcommand needs.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	out io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
		out: out,
	}
	a.log.SetOutput(errOut)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "navigator",
		Short:         "Find routes between cities with classic search strategies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, json or toml)")
	pf.String(keyCities, "", "city CSV: label,x,y with a header row")
	pf.String(keyRoads, "", "road YAML: roads: [{from, to, cost, bidirectional}]")
	pf.String(keyLogLevel, logrus.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	pf.Float64(keyHeuristicScale, 1, "factor applied to coordinate distances for A*")
	_ = a.v.BindPFlags(pf)

	root.AddCommand(a.searchCommand(), a.benchCommand(), a.dotCommand(), a.generateCommand())

	return root
}

// configure binds the running command's own flags, reads the config file
// and applies the log level.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("navigator: read config: %w", err)
		}
	}
	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("navigator: %w", err)
	}
	a.log.SetLevel(level)

	return nil
}

// dataset is the graph a command works on plus what A* needs.
type dataset struct {
	graph  *core.Graph
	coords heuristic.Table
	// builtin is true for the embedded Romania map.
	builtin bool
}

func (a *app) loadData() (*dataset, error) {
	cities, roads := a.v.GetString(keyCities), a.v.GetString(keyRoads)
	if cities == "" && roads == "" {
		g, err := romania.Graph()
		if err != nil {
			return nil, err
		}
		coords, err := romania.Coordinates()
		if err != nil {
			return nil, err
		}
		a.log.WithField("nodes", g.NodeCount()).Debug("using built-in map")
		return &dataset{graph: g, coords: coords, builtin: true}, nil
	}
	if cities == "" || roads == "" {
		return nil, errPartialData
	}

	g, coords, err := loader.LoadFiles(cities, roads)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"cities": cities,
		"roads":  roads,
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
	}).Debug("map loaded")

	return &dataset{graph: g, coords: coords}, nil
}

// heuristicFor picks the A* estimates toward goal: the textbook table when
// routing to Bucharest on the built-in map, scaled coordinate distance
// otherwise.
func (a *app) heuristicFor(d *dataset, goal string) (heuristic.Map, error) {
	if d.builtin && goal == romania.Destination {
		return romania.StraightLineToBucharest(), nil
	}

	return heuristic.Euclidean(d.graph, d.coords, goal, heuristic.WithScale(a.v.GetFloat64(keyHeuristicScale)))
}

// addAnnealingFlags declares the annealing schedule flags on fs.
func addAnnealingFlags(fs *pflag.FlagSet) {
	fs.Int64(keySeed, 1, "random seed for simulated annealing")
	fs.Float64(keyTemperature, search.DefaultTemperature, "initial annealing temperature")
	fs.Float64(keyCoolingRate, search.DefaultCoolingRate, "annealing cooling factor in (0,1)")
	fs.Int(keyIterations, search.DefaultMaxIterations, "annealing iteration cap")
}

// annealingOptions turns the bound annealing flags into search options.
func (a *app) annealingOptions() []search.Option {
	return []search.Option{
		search.WithTemperature(a.v.GetFloat64(keyTemperature)),
		search.WithCoolingRate(a.v.GetFloat64(keyCoolingRate)),
		search.WithMaxIterations(a.v.GetInt(keyIterations)),
	}
}
