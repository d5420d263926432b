// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/Edges/EdgeCount/HasEdge, plus nextEdgeID().
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - AddEdge takes muVert (read, or write with WithAutoVertices) then muEdge write.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge appends an undirected edge from—to with the given weight.
//
// Steps:
//  1. Validate names (ErrEmptyVertexID) and the loop policy, so a refused
//     loop never declares its vertex.
//  2. Resolve both names to indices; unknown → ErrUnknownVertex unless
//     WithAutoVertices, in which case they are declared in from, to order.
//  3. Enforce the multi-edge policy.
//  4. Issue an edge ID and append.
//
// Complexity: O(1) amortized; O(E) when WithoutMultiEdges is set.
func (g *Graph) AddEdge(from, to string, weight int64) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return Edge{}, fmt.Errorf("%q: %w", from, ErrLoopNotAllowed)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	src, err := g.resolveLocked(from)
	if err != nil {
		return Edge{}, err
	}
	dst, err := g.resolveLocked(to)
	if err != nil {
		return Edge{}, err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if !g.allowMulti {
		for _, e := range g.edges {
			if (e.Src == src && e.Dst == dst) || (e.Src == dst && e.Dst == src) {
				return Edge{}, fmt.Errorf("%q—%q: %w", from, to, ErrMultiEdgeNotAllowed)
			}
		}
	}

	e := Edge{ID: nextEdgeID(g), From: from, To: to, Src: src, Dst: dst, Weight: weight}
	g.edges = append(g.edges, e)

	return e, nil
}

// resolveLocked maps name to its index, declaring it when autoVertices is on.
// Caller holds muVert write lock.
func (g *Graph) resolveLocked(name string) (int, error) {
	if idx, ok := g.index[name]; ok {
		return idx, nil
	}
	if !g.autoVertices {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownVertex)
	}

	return g.addVertexLocked(name), nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Snapshot returns the vertex names and edges as one consistent view: every
// edge index lies within the returned names. AddEdge holds the vertex lock
// across both phases, so taking it here excludes half-applied inserts.
// Complexity: O(V + E).
func (g *Graph) Snapshot() ([]string, []Edge) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	names := make([]string, len(g.names))
	copy(names, g.names)
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return names, edges
}

// EdgeCount returns |E| (parallel edges and loops included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge joins a and b, in either orientation.
// Complexity: O(E).
func (g *Graph) HasEdge(a, b string) bool {
	g.muVert.RLock()
	src, okA := g.index[a]
	dst, okB := g.index[b]
	g.muVert.RUnlock()
	if !okA || !okB {
		return false
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, e := range g.edges {
		if (e.Src == src && e.Dst == dst) || (e.Src == dst && e.Dst == src) {
			return true
		}
	}

	return false
}

// Neighbors returns the distinct vertices adjacent to name, in order of the
// first edge that reaches each. A self-loop lists name itself.
// Complexity: O(E).
func (g *Graph) Neighbors(name string) ([]string, error) {
	g.muVert.RLock()
	idx, ok := g.index[name]
	g.muVert.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVertex)
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, e := range g.edges {
		var other string
		switch idx {
		case e.Src:
			other = e.To
		case e.Dst:
			other = e.From
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}

	return out, nil
}

// nextEdgeID issues the next textual edge ID. Caller holds muEdge write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 12)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
