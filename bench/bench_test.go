package bench_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Henok-et/navigation-algorithm-for-a-city/bench"
	"github.com/Henok-et/navigation-algorithm-for-a-city/romania"
	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

func runRomania(t *testing.T, r *bench.Runner, goal string, algs ...search.Algorithm) bench.Report {
	t.Helper()
	g, err := romania.Graph()
	require.NoError(t, err)
	report, err := r.Run(context.Background(), g, romania.Origin, goal, romania.StraightLineToBucharest(), algs...)
	require.NoError(t, err)
	return report
}

func TestRunner_Romania(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 3}, romania.Destination)
	require.Len(t, report.Measurements, len(search.All()))

	optimal := []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}
	for _, alg := range []search.Algorithm{search.AlgorithmUCS, search.AlgorithmAStar} {
		m, ok := report.Get(alg)
		require.True(t, ok, alg)
		assert.Equal(t, 3, m.Runs)
		assert.Equal(t, 3, m.Found)
		assert.Equal(t, 1.0, m.SuccessRatio)
		assert.Equal(t, 418.0, m.Cost)
		assert.Equal(t, 418.0, m.MeanCost)
		if diff := cmp.Diff(optimal, m.Path); diff != "" {
			t.Errorf("%s path mismatch (-want +got):\n%s", alg, diff)
		}
		assert.GreaterOrEqual(t, m.MeanSeconds, 0.0)
		assert.GreaterOrEqual(t, m.StdDevSeconds, 0.0)
	}

	bfs, _ := report.Get(search.AlgorithmBFS)
	assert.Equal(t, 450.0, bfs.Cost)
	dfs, _ := report.Get(search.AlgorithmDFS)
	assert.Equal(t, 733.0, dfs.Cost)

	sa, ok := report.Get(search.AlgorithmAnnealing)
	require.True(t, ok)
	assert.InDelta(t, float64(sa.Found)/3, sa.SuccessRatio, 1e-12)
	if sa.Found > 0 {
		assert.GreaterOrEqual(t, sa.MeanCost, 418.0)
	} else {
		assert.True(t, math.IsInf(sa.MeanCost, 1))
	}
}

func TestRunner_Unreachable(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 2}, "Iasi", search.AlgorithmUCS)
	m, ok := report.Get(search.AlgorithmUCS)
	require.True(t, ok)
	assert.Zero(t, m.Found)
	assert.Zero(t, m.SuccessRatio)
	assert.Nil(t, m.Path)
	assert.True(t, math.IsInf(m.MeanCost, 1))
	assert.Equal(t, "-", m.Route())
}

func TestRunner_SingleRunHasNoSpread(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 1}, romania.Destination, search.AlgorithmBFS)
	m, _ := report.Get(search.AlgorithmBFS)
	assert.Zero(t, m.StdDevSeconds)
	assert.False(t, math.IsNaN(m.MeanSeconds))
}

func TestRunner_Errors(t *testing.T) {
	g, err := romania.Graph()
	require.NoError(t, err)
	h := romania.StraightLineToBucharest()

	_, err = (&bench.Runner{Runs: -1}).Run(context.Background(), g, "Arad", "Bucharest", h)
	assert.ErrorIs(t, err, bench.ErrBadRuns)

	_, err = (&bench.Runner{}).Run(context.Background(), g, "Arad", "Bucharest", h, search.Algorithm("greedy"))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = (&bench.Runner{}).Run(context.Background(), g, "Arad", "Atlantis", h)
	assert.ErrorIs(t, err, search.ErrNodeNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&bench.Runner{}).Run(ctx, g, "Arad", "Bucharest", h, search.AlgorithmUCS)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_LogsEveryRun(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	runRomania(t, &bench.Runner{Runs: 4, Logger: logger}, romania.Destination,
		search.AlgorithmBFS, search.AlgorithmUCS)

	entries := hook.AllEntries()
	require.Len(t, entries, 8)
	assert.Equal(t, "bfs", entries[0].Data["algorithm"])
	assert.Equal(t, "ucs", entries[7].Data["algorithm"])
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
}

func TestRunner_DefaultRuns(t *testing.T) {
	report := runRomania(t, &bench.Runner{}, romania.Destination, search.AlgorithmDFS)
	m, _ := report.Get(search.AlgorithmDFS)
	assert.Equal(t, bench.DefaultRuns, m.Runs)
}

func TestMetrics(t *testing.T) {
	metrics := bench.NewMetrics()
	runRomania(t, &bench.Runner{Runs: 2, Metrics: metrics}, romania.Destination, search.AlgorithmUCS)
	runRomania(t, &bench.Runner{Runs: 2, Metrics: metrics}, "Iasi", search.AlgorithmBFS)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, `navigator_search_duration_seconds_count{algorithm="ucs"} 2`)
	assert.Contains(t, out, `navigator_search_path_cost{algorithm="ucs"} 418`)
	assert.Contains(t, out, `navigator_search_failures_total{algorithm="ucs"} 0`)
	assert.Contains(t, out, `navigator_search_failures_total{algorithm="bfs"} 2`)
	assert.NotContains(t, out, `navigator_search_path_cost{algorithm="bfs"}`)
}

func TestReport_Formats(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 2}, romania.Destination,
		search.AlgorithmUCS, search.AlgorithmBFS)

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.WriteTable(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Arad -> Bucharest", strings.TrimSpace(lines[0]))
		assert.True(t, strings.HasPrefix(lines[1], "ALGORITHM"))
		assert.Contains(t, lines[2], "Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest")
		assert.Contains(t, lines[3], "2/2")
	})

	t.Run("chart", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.WriteChart(&buf))
		assert.Contains(t, buf.String(), "mean time (s)\n")
		assert.Contains(t, buf.String(), "path cost\n")
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.WriteCSV(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "algorithm,runs,found,success_ratio,mean_seconds,stddev_seconds,mean_cost,cost,expanded,path", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "ucs,2,2,1,"))
		assert.True(t, strings.HasSuffix(lines[1], ",Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest"))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.WriteYAML(&buf))

		var back bench.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, "Arad", back.Start)
		require.Len(t, back.Measurements, 2)
		assert.Equal(t, report.Measurements[0].Path, back.Measurements[0].Path)
		assert.Equal(t, 418.0, back.Measurements[0].Cost)
	})
}

func TestReport_ChartScalesToLargestCost(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 1}, romania.Destination,
		search.AlgorithmBFS, search.AlgorithmDFS, search.AlgorithmUCS)

	var buf bytes.Buffer
	require.NoError(t, report.WriteChart(&buf))
	lines := strings.Split(buf.String(), "\n")

	costAt := -1
	for i, l := range lines {
		if l == "path cost" {
			costAt = i
		}
	}
	require.GreaterOrEqual(t, costAt, 0, buf.String())
	require.Greater(t, len(lines), costAt+3)

	// 450, 733 and 418 against a 40-mark bar for the largest.
	want := map[string]int{"bfs": 25, "dfs": 40, "ucs": 23}
	for _, l := range lines[costAt+1 : costAt+4] {
		fields := strings.Fields(l)
		require.Len(t, fields, 3, l)
		assert.Equal(t, want[fields[0]], strings.Count(fields[1], "#"), l)
	}
}

func TestReport_ChartMarksMissingPaths(t *testing.T) {
	report := runRomania(t, &bench.Runner{Runs: 1}, "Iasi", search.AlgorithmUCS)

	var buf bytes.Buffer
	require.NoError(t, report.WriteChart(&buf))
	assert.Contains(t, buf.String(), "no path")
	assert.Contains(t, buf.String(), "+Inf")
}
