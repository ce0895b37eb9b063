// Package interop converts a core.Graph into gonum graph types.
//
// ToGonum produces a *simple.WeightedDirectedGraph with one int64 ID per
// label (label creation order). Because gonum's simple graphs hold at most
// one edge per ordered pair and no self loops, parallel entries collapse to
// the cheapest one and loops are dropped; neither changes a shortest path.
//
// ShortestCost runs gonum's Dijkstra on the converted graph and is used as
// an independent oracle for the search package. MarshalDOT renders the
// graph in Graphviz DOT with labels as node IDs and costs as edge labels.
package interop
