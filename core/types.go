// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex name is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex name was declared twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an edge references a name absent from the vertex catalog.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrIndexOutOfRange indicates a vertex index outside [0, V).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph built WithoutLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a graph built WithoutMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is one declared vertex: its unique name and its dense index.
type Vertex struct {
	// Name is the user-supplied identifier, unique within the graph.
	Name string

	// Index is the position of Name in declaration order (0..V-1).
	Index int
}

// Edge is an undirected weighted connection between two declared vertices.
//
// From/To carry the names, Src/Dst the matching indices. (a,b,w) and (b,a,w)
// describe the same connection; the graph never deduplicates them.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex name.
	From string

	// To is the destination vertex name.
	To string

	// Src is the index of From.
	Src int

	// Dst is the index of To.
	Dst int

	// Weight is the cost of the edge; any integer, negatives included.
	Weight int64
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.Src == e.Dst }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAutoVertices lets AddEdge declare missing endpoints instead of failing.
func WithAutoVertices() GraphOption {
	return func(g *Graph) { g.autoVertices = true }
}

// WithoutLoops rejects self-loops with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithoutMultiEdges rejects a second edge between the same unordered pair.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// EdgeSpec is a name-based edge description used by FromEdgeList.
type EdgeSpec struct {
	From   string
	To     string
	Weight int64
}

// Graph is the in-memory input graph.
//
// muVert protects names and index; muEdge protects edges and nextEdgeID.
type Graph struct {
	muVert sync.RWMutex // guards names, index
	muEdge sync.RWMutex // guards edges, nextEdgeID

	// Configuration flags
	autoVertices bool // AddEdge declares unknown endpoints
	allowLoops   bool // keep self-loops
	allowMulti   bool // keep parallel edges

	// Storage
	names      []string       // index → name
	index      map[string]int // name → index
	edges      []Edge         // insertion order
	nextEdgeID uint64         // last issued edge sequence number
}

// NewGraph creates an empty Graph with the given options.
// By default vertices must be declared before use, and self-loops and
// parallel edges are kept.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		allowMulti: true,
		index:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
