package converters

import (
	"errors"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
)

// ErrNilInput indicates a nil graph or result was passed to a converter.
var ErrNilInput = errors.New("converters: nil input")

// vertexNode is a gonum node carrying the vertex name as its DOT label.
type vertexNode struct {
	id   int64
	name string
}

func (n vertexNode) ID() int64 { return n.id }

func (n vertexNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.name}}
}

func weightLabel(w int64) []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatInt(w, 10)}}
}

// weightedEdge is a gonum simple-graph edge that keeps the integer weight.
type weightedEdge struct {
	from, to vertexNode
	w        int64
}

func (e weightedEdge) From() graph.Node         { return e.from }
func (e weightedEdge) To() graph.Node           { return e.to }
func (e weightedEdge) ReversedEdge() graph.Edge { return weightedEdge{from: e.to, to: e.from, w: e.w} }
func (e weightedEdge) Weight() float64          { return float64(e.w) }

func (e weightedEdge) Attributes() []encoding.Attribute { return weightLabel(e.w) }

// weightedLine is a gonum multigraph line; id makes parallel lines distinct.
type weightedLine struct {
	from, to vertexNode
	id       int64
	w        int64
}

func (l weightedLine) From() graph.Node { return l.from }
func (l weightedLine) To() graph.Node   { return l.to }
func (l weightedLine) ReversedLine() graph.Line {
	return weightedLine{from: l.to, to: l.from, id: l.id, w: l.w}
}
func (l weightedLine) ID() int64       { return l.id }
func (l weightedLine) Weight() float64 { return float64(l.w) }

func (l weightedLine) Attributes() []encoding.Attribute { return weightLabel(l.w) }

func nodes(names []string) []vertexNode {
	out := make([]vertexNode, len(names))
	for i, name := range names {
		out[i] = vertexNode{id: int64(i), name: name}
	}

	return out
}

// buildSimple places every vertex and the given edges into a gonum simple graph.
// Loops are skipped; among parallel edges the lightest survives.
func buildSimple(names []string, edges []core.Edge) *simple.WeightedUndirectedGraph {
	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ns := nodes(names)
	for _, n := range ns {
		ug.AddNode(n)
	}
	for _, e := range edges {
		if e.IsLoop() || e.Src < 0 || e.Dst < 0 || e.Src >= len(ns) || e.Dst >= len(ns) {
			continue
		}
		if prev := ug.WeightedEdge(int64(e.Src), int64(e.Dst)); prev != nil && prev.Weight() <= float64(e.Weight) {
			continue
		}
		ug.SetWeightedEdge(weightedEdge{from: ns[e.Src], to: ns[e.Dst], w: e.Weight})
	}

	return ug
}

// ToGonum converts g into a gonum weighted undirected simple graph.
// Node IDs are vertex indices. Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilInput
	}

	return buildSimple(g.Snapshot()), nil
}

// ResultToGonum converts the selected forest into a gonum simple graph over all vertices.
func ResultToGonum(res *mst.Result) (*simple.WeightedUndirectedGraph, error) {
	if res == nil {
		return nil, ErrNilInput
	}

	return buildSimple(res.Vertices, res.Edges), nil
}

// buildMulti places every vertex and every given edge, loops included, into a
// gonum multigraph. Line IDs are positions in edges.
func buildMulti(names []string, edges []core.Edge) *multi.WeightedUndirectedGraph {
	mg := multi.NewWeightedUndirectedGraph()
	ns := nodes(names)
	for _, n := range ns {
		mg.AddNode(n)
	}
	for i, e := range edges {
		if e.Src < 0 || e.Dst < 0 || e.Src >= len(ns) || e.Dst >= len(ns) {
			continue
		}
		mg.SetWeightedLine(weightedLine{from: ns[e.Src], to: ns[e.Dst], id: int64(i), w: e.Weight})
	}

	return mg
}

// ToGonumMulti converts g into a gonum multigraph keeping every edge, loops included.
func ToGonumMulti(g *core.Graph) (*multi.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilInput
	}

	return buildMulti(g.Snapshot()), nil
}

// ResultToGonumMulti is ResultToGonum over a multigraph; no edge is collapsed.
func ResultToGonumMulti(res *mst.Result) (*multi.WeightedUndirectedGraph, error) {
	if res == nil {
		return nil, ErrNilInput
	}

	return buildMulti(res.Vertices, res.Edges), nil
}

// GonumKruskalWeight runs gonum's own Kruskal over g and returns the forest weight.
// It serves as an independent oracle for mst.Kruskal.
func GonumKruskalWeight(g *core.Graph) (int64, error) {
	ug, err := ToGonum(g)
	if err != nil {
		return 0, err
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return int64(path.Kruskal(dst, ug)), nil
}
