// Package search finds a path between two labeled nodes of a core.Graph
// using one of five interchangeable strategies:
//
//	BFS                 breadth-first, accumulating cost along each branch
//	DFS                 depth-first, accumulating cost along each branch
//	UCS                 uniform-cost (Dijkstra-style), cost-optimal
//	AStar               best-first on g + h, optimal for admissible, consistent h
//	SimulatedAnnealing  single random trajectory with temperature-based acceptance
//
// Every strategy shares one contract:
//
//	res, err := search.UCS(g, "Arad", "Bucharest")
//	if err != nil {
//	    // invalid input: nil graph, unknown label, missing heuristic, bad option…
//	}
//	if !res.Found() {
//	    // res.Path == nil, res.Cost == +Inf: frontier exhausted or dead end
//	}
//
// Not finding a path is NOT an error. Errors are reserved for inputs the
// search cannot run on.
//
// Frontier disciplines:
//
//   - BFS/DFS push (label, cost, path) records; every branch grows its own
//     copy of the path. A node is marked visited when it is popped, not when
//     it is pushed, so a node can sit in the frontier several times. That
//     redundancy decides which of several equal-cost paths comes back.
//   - UCS/AStar use a binary heap without decrease-key. Improved entries are
//     pushed again; a popped entry whose cost is above the best known cost is
//     stale and dropped. Ties on priority pop in insertion order.
//   - SimulatedAnnealing never revisits a node, so it can strand itself in a
//     dead end long before MaxIterations. That counts as "no path".
//
// Randomness is injected: pass WithRand or WithSeed. With neither, a fixed
// default seed is used, so runs are reproducible unless asked otherwise.
//
// Concurrency: strategies only read the graph. Independent calls may run in
// parallel as long as nothing edits the graph structure meanwhile.
//
// Complexity:
//
//   - BFS/DFS:   Time O(b^d · d) worst case (path copies), Space same order.
//   - UCS/AStar: Time O((V + E) log E), Space O(V + E).
//   - Annealing: Time O(MaxIterations · maxdeg), Space O(V).
package search
