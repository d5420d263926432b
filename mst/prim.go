// Package mst provides an implementation of Prim's minimum spanning forest algorithm.
package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
)

// Prim computes the minimum spanning forest by growing one tree per component
// with a min-heap.
//
// Steps:
//  1. Validate graph != nil; build index adjacency (self-loops skipped).
//  2. For each vertex in index order that is not yet visited: it becomes a root.
//     Mark it, push its incident edges.
//  3. While the heap is not empty: pop the lightest edge (ties by insertion order);
//     skip it if the far end is visited; otherwise accept it, mark the far end and
//     push its incident edges.
//  4. Components = number of roots.
//
// Only OnAccept is fired. Considered counts every input edge and Rejected the ones
// not selected, so the counters line up with Kruskal's.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	o := resolveOptions(opts)

	vertices, edges := graph.Snapshot()
	n := len(vertices)

	// adjacency[v] lists positions into edges.
	adjacency := make([][]int, n)
	for i, e := range edges {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return nil, fmt.Errorf("edge %s: %w", e.ID, dsu.ErrIndexOutOfRange)
		}
		if e.IsLoop() {
			continue
		}
		adjacency[e.Src] = append(adjacency[e.Src], i)
		adjacency[e.Dst] = append(adjacency[e.Dst], i)
	}

	visited := make([]bool, n)
	forest := make([]core.Edge, 0, n)
	var (
		total int64
		roots int
	)

	pq := &edgePQ{}
	push := func(v int) {
		for _, pos := range adjacency[v] {
			e := edges[pos]
			far := e.Dst
			if far == v {
				far = e.Src
			}
			if !visited[far] {
				heap.Push(pq, candidate{edge: e, seq: pos, to: far})
			}
		}
	}

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		roots++
		visited[root] = true
		push(root)

		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			forest = append(forest, c.edge)
			total += c.edge.Weight
			o.OnAccept(c.edge)
			push(c.to)
		}
	}

	return &Result{
		Vertices:   vertices,
		Edges:      forest,
		Total:      total,
		Components: roots,
		Considered: len(edges),
		Rejected:   len(edges) - len(forest),
	}, nil
}

// candidate is a heap entry: an edge leading to vertex to, ordered by
// (Weight, seq) where seq is the edge's insertion position.
type candidate struct {
	edge core.Edge
	seq  int
	to   int
}

// edgePQ implements heap.Interface for a min-heap of candidates.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by insertion position for determinism.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
