package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/mst"
)

// ExampleBuildGraph builds K_4 with unit weights and spans it.
func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Complete(4))
	res, _ := mst.Kruskal(g)
	fmt.Println(g.EdgeCount(), res.Len(), res.Total)
	for _, e := range res.Edges {
		fmt.Printf("%s-%s ", e.From, e.To)
	}
	fmt.Println()
	// Output:
	// 6 3 3
	// A-B A-C A-D
}
