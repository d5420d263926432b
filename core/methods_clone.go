// File: methods_clone.go
// Role: Clone / CloneEmpty.

package core

// CloneEmpty returns a new Graph with the same flags and vertex catalog but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := &Graph{
		autoVertices: g.autoVertices,
		allowLoops:   g.allowLoops,
		allowMulti:   g.allowMulti,
		names:        make([]string, len(g.names)),
		index:        make(map[string]int, len(g.index)),
	}
	copy(clone.names, g.names)
	for name, idx := range g.index {
		clone.index[name] = idx
	}

	return clone
}

// Clone returns a deep copy: flags, vertex catalog, edges and the edge-ID counter.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	clone.nextEdgeID = g.nextEdgeID

	return clone
}
