// Package core provides the input model for spanning-tree computations: a
// thread-safe, in-memory weighted undirected Graph whose vertices carry a
// user-supplied name and a dense integer index.
//
// The Graph G = (V,E) keeps two catalogs:
//
//   - Vertex catalog: name ↔ index bijection. Indices are assigned 0..V-1 in the
//     order the names are first declared and never change for the lifetime of
//     the graph.
//   - Edge list: every AddEdge call appends one Edge; insertion order is the
//     order returned by Edges(). Parallel edges and self-loops are kept by
//     default ("keep all, let the algorithm pick").
//
// Configuration Options (GraphOption):
//
//	– WithAutoVertices()
//	    AddEdge declares unknown endpoints on the fly instead of returning
//	    ErrUnknownVertex.
//
//	– WithoutLoops()
//	    AddEdge(v,v,...) → ErrLoopNotAllowed.
//
//	– WithoutMultiEdges()
//	    A second edge between the same unordered pair → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(name string) (int, error)               // O(1)
//	AddEdge(from, to string, w int64) (Edge, error)   // O(1), O(deg) with WithoutMultiEdges
//	Index(name) / Name(idx) / HasVertex(name)         // O(1)
//	Vertices() []string                               // O(V), declaration order
//	Edges() []Edge                                    // O(E), insertion order
//	Clone() *Graph                                    // O(V+E)
//
// Construction in one step:
//
//	g, err := core.FromEdgeList(
//		[]string{"A", "B", "C"},
//		[]core.EdgeSpec{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}},
//	)
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdge guards the edge list. Lock order is
//	always muVert → muEdge.
//
// Errors:
//
//	ErrEmptyVertexID, ErrDuplicateVertex, ErrUnknownVertex, ErrIndexOutOfRange,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed. Branch with errors.Is.
package core
