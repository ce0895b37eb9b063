// Package builder generates synthetic city maps for benchmarks, property
// tests and the navigator "generate" command.
//
// Two shapes are provided:
//
//   - Grid(rows, cols): a Manhattan street grid. Labels are "r,c" in
//     row-major order; every cell links to its right and bottom neighbors
//     in both directions.
//   - Scatter(n, k): n cities dropped uniformly on a square, each joined
//     by a two-way road to its k nearest neighbors.
//
// Every road costs at least the straight-line distance between its ends
// (ceil(distance × detour), detour drawn from [1, WithDetour]), so the
// Euclidean heuristic over the returned coordinates is admissible and
// consistent for any goal.
//
// Output is deterministic for a fixed seed. Invalid options are recorded
// and returned as ErrOptionViolation by the constructor.
package builder
