package dsu

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an element index outside [0, n).
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// DisjointSet is a union-by-rank forest over element indices 0..n-1.
type DisjointSet struct {
	parent []int // parent[v] == v ⇔ v is a root
	rank   []int // upper bound on tree height, meaningful for roots only
	sets   int   // number of disjoint sets
}

// New creates a partition of n singleton sets. Negative n is treated as 0.
// Complexity: O(n) time and space.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

func (d *DisjointSet) check(v int) error {
	if v < 0 || v >= len(d.parent) {
		return fmt.Errorf("index %d, size %d: %w", v, len(d.parent), ErrIndexOutOfRange)
	}

	return nil
}

// Find returns the representative (root) of the set containing v.
//
// The walk follows parent pointers until a fixed point and never mutates the
// forest. Terminates because Union only ever attaches a root under another root.
// Complexity: O(height) = O(log n) under union-by-rank.
func (d *DisjointSet) Find(v int) (int, error) {
	if err := d.check(v); err != nil {
		return -1, err
	}
	for d.parent[v] != v {
		v = d.parent[v]
	}

	return v, nil
}

// Union merges the sets containing v1 and v2. Merging a set with itself is a no-op.
//
// Let r1 = Find(v1), r2 = Find(v2):
//
//	rank[r1] < rank[r2]  →  parent[r1] = r2
//	rank[r1] > rank[r2]  →  parent[r2] = r1
//	otherwise            →  parent[r2] = r1, rank[r1]++
//
// Complexity: O(log n).
func (d *DisjointSet) Union(v1, v2 int) error {
	r1, err := d.Find(v1)
	if err != nil {
		return err
	}
	r2, err := d.Find(v2)
	if err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}

	switch {
	case d.rank[r1] < d.rank[r2]:
		d.parent[r1] = r2
	case d.rank[r1] > d.rank[r2]:
		d.parent[r2] = r1
	default:
		d.parent[r2] = r1
		d.rank[r1]++
	}
	d.sets--

	return nil
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Parent returns the raw parent pointer of v (v itself for a root).
func (d *DisjointSet) Parent(v int) (int, error) {
	if err := d.check(v); err != nil {
		return -1, err
	}

	return d.parent[v], nil
}

// Rank returns the rank recorded for v.
func (d *DisjointSet) Rank(v int) (int, error) {
	if err := d.check(v); err != nil {
		return -1, err
	}

	return d.rank[v], nil
}
