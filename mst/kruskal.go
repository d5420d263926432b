// Package mst provides an implementation of Kruskal's minimum spanning forest algorithm.
package mst

import "github.com/katalvlaran/spantree/core"

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrNilGraph: if graph is nil.
//
// Steps:
//  1. Snapshot vertices (declaration order) and edges (insertion order).
//  2. SortEdges: stable ascending weight.
//  3. Feed every sorted edge to a Builder; self-loops and cycle edges are rejected.
//  4. Finish: edges in acceptance order, Total, Components.
//
// A disconnected graph yields one tree per component; an empty graph yields an
// empty result with Total 0.
//
// Complexity: O(E log E + E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	vertices, edges := graph.Snapshot()

	return KruskalEdges(vertices, edges, opts...)
}

// KruskalEdges runs Kruskal over raw slices: vertices[i] names index i and
// every edge's Src/Dst must lie in [0, len(vertices)). edges is not modified.
//
// The whole computation aborts on the first out-of-range endpoint
// (dsu.ErrIndexOutOfRange); no partial result is returned.
func KruskalEdges(vertices []string, edges []core.Edge, opts ...Option) (*Result, error) {
	b := NewBuilder(vertices, opts...)
	for _, e := range SortEdges(edges) {
		if _, err := b.Consider(e); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}
