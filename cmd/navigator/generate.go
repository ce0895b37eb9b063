package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Henok-et/navigation-algorithm-for-a-city/builder"
	"github.com/Henok-et/navigation-algorithm-for-a-city/loader"
)

const (
	keyShape     = "shape"
	keyRows      = "rows"
	keyCols      = "cols"
	keyCount     = "count"
	keyNearest   = "nearest"
	keyDetour    = "detour"
	keyCitiesOut = "cities-out"
	keyRoadsOut  = "roads-out"
)

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic map as city CSV and road YAML",
		Example: `  navigator generate --shape grid --rows 20 --cols 20 --cities-out c.csv --roads-out r.yaml
  navigator generate --shape scatter --count 500 --nearest 4 --detour 1.3 --cities-out c.csv --roads-out r.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate()
		},
	}
	fs := cmd.Flags()
	fs.String(keyShape, "scatter", "grid or scatter")
	fs.Int(keyRows, 10, "grid rows")
	fs.Int(keyCols, 10, "grid columns")
	fs.Int(keyCount, 100, "scatter city count")
	fs.Int(keyNearest, 3, "scatter roads per city toward its nearest neighbors")
	fs.Float64(keyDetour, builder.DefaultDetour, "max road length over straight-line distance (>= 1)")
	fs.Int64(keySeed, 1, "random seed")
	fs.String(keyCitiesOut, "", "city CSV output path")
	fs.String(keyRoadsOut, "", "road YAML output path")
	_ = cmd.MarkFlagRequired(keyCitiesOut)
	_ = cmd.MarkFlagRequired(keyRoadsOut)

	return cmd
}

func (a *app) runGenerate() error {
	opts := []builder.Option{
		builder.WithSeed(a.v.GetInt64(keySeed)),
		builder.WithDetour(a.v.GetFloat64(keyDetour)),
	}

	var (
		m   *builder.Map
		err error
	)
	switch shape := a.v.GetString(keyShape); shape {
	case "grid":
		m, err = builder.Grid(a.v.GetInt(keyRows), a.v.GetInt(keyCols), opts...)
	case "scatter":
		m, err = builder.Scatter(a.v.GetInt(keyCount), a.v.GetInt(keyNearest), opts...)
	default:
		return fmt.Errorf("navigator: unknown shape %q", shape)
	}
	if err != nil {
		return err
	}

	if err = writeFile(a.v.GetString(keyCitiesOut), func(f *os.File) error {
		return loader.WriteCities(f, m.Graph, m.Coords)
	}); err != nil {
		return err
	}
	if err = writeFile(a.v.GetString(keyRoadsOut), func(f *os.File) error {
		return loader.WriteRoads(f, m.Graph)
	}); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"nodes": m.Graph.NodeCount(),
		"edges": m.Graph.EdgeCount(),
	}).Info("map written")

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("navigator: %w", err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
