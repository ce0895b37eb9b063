package interop

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("interop: graph is nil")

	// ErrNodeNotFound is core.ErrNodeNotFound, re-exported.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrNegativeCost is returned by ShortestCost; gonum's Dijkstra
	// refuses negative weights.
	ErrNegativeCost = errors.New("interop: negative edge cost")
)

// IDs maps labels to the gonum node IDs assigned by ToGonum.
type IDs map[string]int64

// city is a gonum node that renders as its label in DOT.
type city struct {
	id    int64
	label string
}

func (c city) ID() int64      { return c.id }
func (c city) DOTID() string  { return c.label }
func (c city) String() string { return c.label }

// road carries its cost as a DOT edge label.
type road struct {
	simple.WeightedEdge
}

func (r road) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatFloat(r.W, 'f', -1, 64)}}
}

// ToGonum copies g into a gonum weighted directed graph. Absent edges weigh
// +Inf, a node to itself weighs 0.
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, IDs, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	labels := g.Labels()
	ids := make(IDs, len(labels))
	nodes := make(map[string]city, len(labels))

	var (
		i     int
		label string
	)
	for i, label = range labels {
		c := city{id: int64(i), label: label}
		wg.AddNode(c)
		ids[label] = c.id
		nodes[label] = c
	}

	var e core.Edge
	for _, e = range g.Edges() {
		if e.From == e.To {
			continue
		}
		from, to := nodes[e.From], nodes[e.To]
		cost := float64(e.Cost)
		if w, ok := wg.Weight(from.id, to.id); ok && w <= cost {
			continue
		}
		wg.SetWeightedEdge(road{simple.WeightedEdge{F: from, T: to, W: cost}})
	}

	return wg, ids, nil
}

// ShortestCost returns the cheapest path start→goal and its cost as found
// by gonum. Unreachable goals give a nil path and +Inf.
func ShortestCost(g *core.Graph, start, goal string) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return nil, 0, fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, e.From, e.To, e.Cost)
		}
	}
	wg, ids, err := ToGonum(g)
	if err != nil {
		return nil, 0, err
	}
	from, ok := ids[start]
	if !ok {
		return nil, 0, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	to, ok := ids[goal]
	if !ok {
		return nil, 0, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	shortest := path.DijkstraFrom(wg.Node(from), wg)
	nodes, cost := shortest.To(to)
	if len(nodes) == 0 || math.IsInf(cost, 1) {
		return nil, math.Inf(1), nil
	}
	out := make([]string, len(nodes))
	var n graph.Node
	for i := range nodes {
		n = nodes[i]
		out[i] = n.(city).label
	}

	return out, cost, nil
}

// MarshalDOT renders g as a Graphviz digraph called name.
func MarshalDOT(g *core.Graph, name string) ([]byte, error) {
	wg, _, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(wg, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("interop: marshal dot: %w", err)
	}

	return b, nil
}
