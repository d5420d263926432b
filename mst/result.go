package mst

import "github.com/katalvlaran/spantree/core"

// Result is the output contract of a spanning-forest computation.
//
// Edges are in acceptance order; for Kruskal that is non-decreasing weight.
// Total is the sum of their weights. A Result is never mutated after it is
// returned; use Clone before editing.
type Result struct {
	// Vertices lists every vertex name in declaration order.
	Vertices []string

	// Edges are the selected edges in acceptance order.
	Edges []core.Edge

	// Total is the sum of Edges[i].Weight.
	Total int64

	// Components is the number of trees in the forest (isolated vertices count).
	Components int

	// Considered is the number of input edges examined.
	Considered int

	// Rejected is the number of examined edges that would have closed a cycle.
	Rejected int
}

// Len returns the number of selected edges.
func (r *Result) Len() int { return len(r.Edges) }

// Forest reports whether the input was disconnected (more than one tree).
func (r *Result) Forest() bool { return r.Components > 1 }

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	c := *r
	c.Vertices = append([]string(nil), r.Vertices...)
	c.Edges = append([]core.Edge(nil), r.Edges...)

	return &c
}
