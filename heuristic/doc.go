// Package heuristic supplies remaining-cost estimates toward a fixed goal.
//
// A Map is computed once per goal, before any informed search runs, and is
// never recomputed on the fly. The usual source is a coordinate Table: the
// estimate for a node is the straight-line (Euclidean) distance between its
// coordinates and the goal's.
//
// Admissibility (never over-estimating the true remaining cost) is a caller
// contract. Nothing here verifies it.
//
// Unknown labels in a Table resolve to the origin (0, 0) instead of failing,
// matching how the city data has always been read. Correctness-sensitive
// callers should check Table.Has first.
package heuristic
