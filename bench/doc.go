// Package bench times the search strategies against one query and compares
// them side by side.
//
// A Runner executes every requested algorithm Runs times (default 10) and
// condenses the samples into one Measurement per algorithm:
//
//   - mean and sample standard deviation of the wall-clock time (gonum/stat);
//   - the path and expansion count of the first run;
//   - the mean cost over the runs that found a path and the success ratio.
//     Only SimulatedAnnealing varies between runs; each of its runs draws
//     from its own seed (Runner.Seed + run index).
//
// A Report renders as an aligned table, CSV (gocsv) or YAML (yaml.v3).
// Attach a Metrics to also record every run into a Prometheus registry,
// which can be dumped in the text exposition format.
//
// The package never prints on its own; progress goes to Runner.Logger at
// debug level.
package bench
