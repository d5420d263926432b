// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: One-step constructor and read-only configuration getters.

package core

import "fmt"

// FromEdgeList builds a Graph from a complete vertex list and edge list.
//
// Vertices are declared in slice order (so vertices[i] gets index i), then the
// edges are appended in slice order. The first failure aborts construction and
// no graph is returned.
//
// Errors:
//   - ErrEmptyVertexID / ErrDuplicateVertex for bad vertex names.
//   - ErrUnknownVertex for an edge endpoint not in vertices (unless WithAutoVertices).
//   - ErrLoopNotAllowed / ErrMultiEdgeNotAllowed per options.
//
// Complexity: O(V + E) (O(V + E²) with WithoutMultiEdges).
func FromEdgeList(vertices []string, edges []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for i, name := range vertices {
		if _, err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("vertex #%d: %w", i, err)
		}
	}
	for i, es := range edges {
		if _, err := g.AddEdge(es.From, es.To, es.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d (%s, %s, %d): %w", i, es.From, es.To, es.Weight, err)
		}
	}

	return g, nil
}

// AutoVertices reports whether AddEdge declares unknown endpoints.
func (g *Graph) AutoVertices() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.autoVertices
}

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are accepted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
