package converters

import (
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
)

// DOT graph names used for the two artefacts.
const (
	InputGraphName  = "InputGraph"
	ResultGraphName = "MinimumSpanningTree"
)

const dotIndent = "  "

// circleNodes supplies the graph-wide `node [shape=circle]` statement.
func circleNodes() (graph, node, edge encoding.Attributer) {
	return &encoding.Attributes{}, &encoding.Attributes{{Key: "shape", Value: "circle"}}, &encoding.Attributes{}
}

type multiDOT struct {
	*multi.WeightedUndirectedGraph
}

func (multiDOT) DOTAttributers() (graph, node, edge encoding.Attributer) { return circleNodes() }

// InputDOT renders every vertex and every edge of g (loops and parallels
// included) as an undirected DOT graph named InputGraph.
func InputDOT(g *core.Graph) ([]byte, error) {
	mg, err := ToGonumMulti(g)
	if err != nil {
		return nil, err
	}

	return dot.MarshalMulti(multiDOT{mg}, InputGraphName, "", dotIndent)
}

// ResultDOT renders every vertex and the selected edges of res as an
// undirected DOT graph named MinimumSpanningTree.
func ResultDOT(res *mst.Result) ([]byte, error) {
	mg, err := ResultToGonumMulti(res)
	if err != nil {
		return nil, err
	}

	return dot.MarshalMulti(multiDOT{mg}, ResultGraphName, "", dotIndent)
}
