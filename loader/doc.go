// Package loader is the data-loading boundary: it turns external city and
// road files into a core.Graph and a heuristic.Table, and fails fast on
// anything malformed so the search packages only ever see clean input.
//
// City file (CSV, header row required, at least three columns):
//
//	city,x,y
//	Arad,46.1866,21.3123
//	...
//
// The first column is the node label, the next two its coordinates; any
// further columns (population, region...) are ignored. The header's names
// are not interpreted; only its width is checked.
//
// Road file (YAML):
//
//	roads:
//	  - {from: Arad, to: Zerind, cost: 75}
//	  - {from: Zerind, to: Arad, cost: 75}
//	  - {from: Sibiu, to: Fagaras, cost: 99, bidirectional: true}
//
// Entries are directed unless bidirectional is set. They are inserted in
// file order, which fixes neighbor order and therefore BFS/DFS tie-breaking.
package loader
