// Package navigation finds routes between cities on a weighted road map.
//
// The module is organized as small packages:
//
//	core/      Graph and Node: label-keyed, directed, weighted neighbor lists
//	heuristic/ coordinate tables, Euclidean and zero estimate maps
//	search/    BFS, DFS, UCS, A* and simulated annealing behind one Result contract
//	loader/    city CSV and road YAML readers and writers
//	romania/   the classic Romania road map, embedded
//	builder/   synthetic grid and scatter maps
//	bench/     repeated timing runs, comparison reports, Prometheus metrics
//	interop/   gonum conversion, Dijkstra cross-check, Graphviz DOT
//	cmd/navigator/ CLI over all of the above
//
// Quick start:
//
//	g, _ := romania.Graph()
//	res, _ := search.AStar(g, "Arad", "Bucharest", romania.StraightLineToBucharest())
//	fmt.Println(res.Path, res.Cost) // [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
//
// Not finding a route is a normal outcome (nil Path, +Inf Cost); errors are
// reserved for input the search cannot run on.
package navigation
