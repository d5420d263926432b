package report_test

import (
	"os"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
	"github.com/katalvlaran/spantree/report"
)

func ExampleTextReporter() {
	g, _ := core.FromEdgeList(
		[]string{"Home", "Office", "Gym"},
		[]core.EdgeSpec{
			{From: "Home", To: "Office", Weight: 7},
			{From: "Office", To: "Gym", Weight: 2},
			{From: "Home", To: "Gym", Weight: 4},
		},
	)
	res, _ := mst.Kruskal(g)

	_ = (&report.TextReporter{W: os.Stdout}).Report(res)
	// Output:
	// Minimum Spanning Tree Path:
	// Office -- Gym : 2
	// Home -- Gym : 4
	// Total distance of the minimum spanning tree: 6
}
