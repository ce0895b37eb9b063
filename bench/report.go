package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// row is the flat CSV shape of a Measurement.
type row struct {
	Algorithm     string  `csv:"algorithm"`
	Runs          int     `csv:"runs"`
	Found         int     `csv:"found"`
	SuccessRatio  float64 `csv:"success_ratio"`
	MeanSeconds   float64 `csv:"mean_seconds"`
	StdDevSeconds float64 `csv:"stddev_seconds"`
	MeanCost      float64 `csv:"mean_cost"`
	Cost          float64 `csv:"cost"`
	Expanded      int     `csv:"expanded"`
	Path          string  `csv:"path"`
}

const (
	pathSep    = " -> "
	chartWidth = 40
	chartMark  = "#"
)

// Route joins the representative path for display; "-" when none.
func (m Measurement) Route() string {
	if len(m.Path) == 0 {
		return "-"
	}
	return strings.Join(m.Path, pathSep)
}

// WriteTable renders an aligned, human-readable comparison.
func (r Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s -> %s\n", r.Start, r.Goal)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tMEAN\tSTDDEV\tCOST\tEXPANDED\tPATH")
	for _, m := range r.Measurements {
		fmt.Fprintf(tw, "%s\t%d/%d\t%.6fs\t%.6fs\t%v\t%d\t%s\n",
			m.Algorithm, m.Found, m.Runs, m.MeanSeconds, m.StdDevSeconds, m.Cost, m.Expanded, m.Route())
	}

	return tw.Flush()
}

// WriteCSV writes one header row and one row per measurement.
func (r Report) WriteCSV(w io.Writer) error {
	rows := make([]row, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		rows = append(rows, row{
			Algorithm:     m.Algorithm,
			Runs:          m.Runs,
			Found:         m.Found,
			SuccessRatio:  m.SuccessRatio,
			MeanSeconds:   m.MeanSeconds,
			StdDevSeconds: m.StdDevSeconds,
			MeanCost:      m.MeanCost,
			Cost:          m.Cost,
			Expanded:      m.Expanded,
			Path:          strings.Join(m.Path, pathSep),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("bench: write csv: %w", err)
	}

	return nil
}

// WriteYAML writes the whole report as one YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: write yaml: %w", err)
	}

	return enc.Close()
}

// WriteChart renders two horizontal bar charts, mean time and path cost,
// one bar per algorithm scaled to the largest finite value. Runs without a
// path show "no path" instead of a bar.
func (r Report) WriteChart(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	writeBars(tw, "mean time (s)", r.Measurements, func(m Measurement) float64 { return m.MeanSeconds })
	fmt.Fprintln(tw)
	writeBars(tw, "path cost", r.Measurements, func(m Measurement) float64 { return m.Cost })

	return tw.Flush()
}

func writeBars(w io.Writer, title string, ms []Measurement, value func(Measurement) float64) {
	fmt.Fprintln(w, title)
	peak := 0.0
	var v float64
	for _, m := range ms {
		if v = value(m); !math.IsInf(v, 0) && !math.IsNaN(v) && v > peak {
			peak = v
		}
	}
	for _, m := range ms {
		v = value(m)
		bar := ""
		switch {
		case math.IsInf(v, 1):
			bar = "no path"
		case peak > 0:
			bar = strings.Repeat(chartMark, int(math.Round(v/peak*chartWidth)))
		}
		fmt.Fprintf(w, "  %s\t%s\t%v\n", m.Algorithm, bar, v)
	}
}
