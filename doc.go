// Package spantree computes minimum spanning forests of weighted undirected
// graphs and turns them into reports and Graphviz pictures.
//
// Packages:
//
//	core/        - thread-safe input graph: named vertices, weighted edges, loops and parallels
//	dsu/         - disjoint-set forest (union by rank, no path compression)
//	mst/         - stable edge ordering, Kruskal builder state machine, Prim cross-check
//	bfs/         - breadth-first traversal and connected components
//	report/      - text, table, JSON and YAML consumers of a result
//	converters/  - gonum/graph interop and DOT export
//	render/      - DOT artefacts on disk, optional Graphviz rendering
//	input/       - YAML/JSON documents, hot reload, console dialogue
//	builder/     - deterministic fixtures (path, cycle, star, complete, random)
//	cmd/spantree - the command line tool
//
// Quick example:
//
//	    A──1──B
//	    │    ╱
//	    3   2
//	    │ ╱
//	    C
//
//	g, _ := core.FromEdgeList([]string{"A", "B", "C"}, []core.EdgeSpec{
//	        {From: "A", To: "B", Weight: 1},
//	        {From: "B", To: "C", Weight: 2},
//	        {From: "A", To: "C", Weight: 3},
//	})
//	res, _ := mst.Kruskal(g) // A-B, B-C; Total 3
//
//	go install github.com/katalvlaran/spantree/cmd/spantree@latest
package spantree
