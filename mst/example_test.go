package mst_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g, _ := core.FromEdgeList(
		[]string{"A", "B", "C"},
		[]core.EdgeSpec{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 3},
		},
	)

	res, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", res.Total)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleKruskal_forest shows the result for a disconnected graph.
func ExampleKruskal_forest() {
	g, _ := core.FromEdgeList(
		[]string{"A", "B", "C", "D"},
		[]core.EdgeSpec{{From: "A", To: "B", Weight: 1}, {From: "C", To: "D", Weight: 2}},
	)

	res, _ := mst.Kruskal(g)
	fmt.Println("edges:", res.Len(), "total:", res.Total, "trees:", res.Components, "forest:", res.Forest())
	// Output: edges: 2 total: 3 trees: 2 forest: true
}

// ExamplePrim_largeGraph demonstrates Prim's algorithm on a 7-vertex graph.
// The MST has 6 edges with total weight 13.
func ExamplePrim_largeGraph() {
	g, _ := core.FromEdgeList(
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		[]core.EdgeSpec{
			{From: "A", To: "B", Weight: 2},
			{From: "B", To: "C", Weight: 1},
			{From: "D", To: "E", Weight: 1},
			{From: "E", To: "G", Weight: 2},
			{From: "F", To: "G", Weight: 3},
			{From: "A", To: "C", Weight: 3},
			{From: "B", To: "D", Weight: 4},
			{From: "C", To: "E", Weight: 5},
			{From: "E", To: "F", Weight: 6},
			{From: "D", To: "F", Weight: 7},
		},
	)

	res, _ := mst.Prim(g)
	fmt.Printf("Total: %d, Edges: ", res.Total)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 13, Edges: A-B B-C B-D D-E E-G F-G
}
