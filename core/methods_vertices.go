// File: methods_vertices.go
// Role: Vertex declaration & queries.
//
// Determinism:
//   - Vertices() returns names in declaration order (index ascending).
//
// Concurrency:
//   - Vertex catalog protected by muVert.

package core

import "fmt"

// AddVertex declares a new vertex and returns its dense index.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, reject repeats (ErrDuplicateVertex) and
//     assign index = current vertex count.
//
// Errors:
//   - ErrEmptyVertexID: if name == "".
//   - ErrDuplicateVertex: if name was already declared.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.index[name]; exists {
		return -1, fmt.Errorf("%q: %w", name, ErrDuplicateVertex)
	}

	return g.addVertexLocked(name), nil
}

// addVertexLocked appends name to the catalog. Caller holds muVert write lock
// and has checked that name is new.
func (g *Graph) addVertexLocked(name string) int {
	idx := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = idx

	return idx
}

// HasVertex reports whether the name is declared (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	if name == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[name]

	return ok
}

// Index returns the dense index of name.
//
// Errors:
//   - ErrEmptyVertexID: if name == "".
//   - ErrUnknownVertex: if name is not declared.
//
// Complexity: O(1).
func (g *Graph) Index(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	idx, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownVertex)
	}

	return idx, nil
}

// Name returns the vertex name at idx.
//
// Errors:
//   - ErrIndexOutOfRange: if idx ∉ [0, V).
//
// Complexity: O(1).
func (g *Graph) Name(idx int) (string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if idx < 0 || idx >= len(g.names) {
		return "", fmt.Errorf("index %d, size %d: %w", idx, len(g.names), ErrIndexOutOfRange)
	}

	return g.names[idx], nil
}

// Vertices returns a copy of all names in declaration order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// VertexList returns Vertex records (name + index) in declaration order.
// Complexity: O(V).
func (g *Graph) VertexList() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]Vertex, len(g.names))
	for i, name := range g.names {
		out[i] = Vertex{Name: name, Index: i}
	}

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.names)
}
