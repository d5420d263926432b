package mst

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
)

// State is the Builder lifecycle phase.
type State int

const (
	// StateAccepting means the Builder still takes edges.
	StateAccepting State = iota
	// StateDone means Finish was called; the result is final.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateAccepting:
		return "accepting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Builder is the Kruskal accumulator. Feed it edges in ascending weight order
// (see SortEdges) and call Finish once.
//
// A Builder owns its dsu.DisjointSet exclusively and is not safe for
// concurrent use.
type Builder struct {
	vertices   []string
	set        *dsu.DisjointSet
	opts       MSTOptions
	state      State
	edges      []core.Edge
	total      int64
	considered int
	rejected   int
	err        error   // first failure; poisons the run
	result     *Result // cached by Finish
}

// NewBuilder starts an ACCEPTING Builder over the given vertices (index i is
// vertices[i]) with an empty accumulator and a fresh disjoint-set.
// Complexity: O(V).
func NewBuilder(vertices []string, opts ...Option) *Builder {
	names := make([]string, len(vertices))
	copy(names, vertices)

	return &Builder{
		vertices: names,
		set:      dsu.New(len(names)),
		opts:     resolveOptions(opts),
		state:    StateAccepting,
	}
}

// State returns the current lifecycle phase.
func (b *Builder) State() State { return b.state }

// Consider examines one edge and reports whether it was accepted.
//
// Steps:
//  1. r1 = Find(Src), r2 = Find(Dst).
//  2. r1 ≠ r2: append the edge, add its weight, Union(r1, r2), fire OnAccept.
//  3. r1 == r2: reject (cycle or self-loop), fire OnReject.
//
// Errors:
//   - ErrBuilderDone after Finish.
//   - dsu.ErrIndexOutOfRange for endpoints outside [0, |V|); the Builder keeps
//     the error and Finish will return it.
//
// Complexity: O(log V).
func (b *Builder) Consider(e core.Edge) (bool, error) {
	if b.state == StateDone {
		return false, ErrBuilderDone
	}
	if b.err != nil {
		return false, b.err
	}

	r1, err := b.set.Find(e.Src)
	if err != nil {
		b.err = fmt.Errorf("edge %s source %q: %w", e.ID, e.From, err)
		return false, b.err
	}
	r2, err := b.set.Find(e.Dst)
	if err != nil {
		b.err = fmt.Errorf("edge %s destination %q: %w", e.ID, e.To, err)
		return false, b.err
	}
	b.considered++

	if r1 == r2 {
		b.rejected++
		b.opts.OnReject(e)
		return false, nil
	}

	b.edges = append(b.edges, e)
	b.total += e.Weight
	if err = b.set.Union(r1, r2); err != nil {
		b.err = err
		return false, err
	}
	b.opts.OnAccept(e)

	return true, nil
}

// Finish moves the Builder to DONE and returns the final result.
// Repeated calls return the same result (or the same error).
// Complexity: O(V + |result|) on the first call, O(1) afterwards.
func (b *Builder) Finish() (*Result, error) {
	b.state = StateDone
	if b.err != nil {
		return nil, b.err
	}
	if b.result == nil {
		edges := make([]core.Edge, len(b.edges))
		copy(edges, b.edges)
		b.result = &Result{
			Vertices:   b.vertices,
			Edges:      edges,
			Total:      b.total,
			Components: b.set.Sets(),
			Considered: b.considered,
			Rejected:   b.rejected,
		}
	}

	return b.result, nil
}
