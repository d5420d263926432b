// Package mst computes minimum spanning trees, and minimum spanning forests
// for disconnected inputs, over an undirected, weighted *core.Graph.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, weighted graph G = (V, E), a minimum spanning forest is a subset
//     T ⊆ E with no cycles that connects every pair of vertices that G connects, and whose
//     total weight is minimal. When G is connected the forest is a single tree with |V|−1 edges.
//
//   - Why a forest instead of an error?
//     A disconnected road map still has a cheapest way to link each island; the result
//     carries one tree per connected component and reports the component count.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: SortEdges (stable, ascending weight), then feed every edge to a Builder.
//     The Builder asks a dsu.DisjointSet for both endpoint roots; different roots accept
//     the edge and union the roots, equal roots reject it as a cycle.
//
//   - Complexity: O(E log E) for sorting plus O(E log V) for the rank-bounded Find walks.
//
//   - Determinism: the edge list keeps insertion order and the sort is stable, so among
//     equal weights the earlier edge wins. Re-running on the same input is bit-identical.
//
//   - Prim(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: grow a tree with a min-heap from the lowest-index unvisited vertex,
//     restarting for every component. Ties break by insertion order.
//
//   - Use-Case: an independent cross-check of Kruskal's total weight.
//
// Builder state machine
//
//	ACCEPTING ──Consider(e)──▶ ACCEPTING
//	ACCEPTING ──Finish()────▶ DONE
//	DONE      ──Consider(e)──▶ ErrBuilderDone
//
// Edge Cases
//
//   - |V| == 0: empty result, Total 0, no error.
//   - Self-loops: always rejected (Find(v) == Find(v)); never part of a result.
//   - Negative weights: valid; the minimality argument does not need non-negativity.
//   - Parallel edges: all kept; the lighter one wins and the rest are rejected as cycles.
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - dsu.ErrIndexOutOfRange: an edge endpoint index is outside [0, |V|). The computation
//     aborts and no partial result is returned.
//   - ErrBuilderDone: Consider called after Finish.
//   - ErrUnknownMethod: Compute with an unrecognised MSTOptions.Method.
//
// For examples of usage, see the example_test.go file in this package.
package mst
