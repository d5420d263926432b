package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
)

// ExampleComponents splits two islands.
func ExampleComponents() {
	g, _ := core.FromEdgeList(
		[]string{"Home", "Office", "Cabin", "Lake"},
		[]core.EdgeSpec{
			{From: "Home", To: "Office", Weight: 3},
			{From: "Cabin", To: "Lake", Weight: 1},
		},
	)
	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output: [[Home Office] [Cabin Lake]]
}
