package bfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

type queueItem struct {
	name  string
	depth int
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error. The partial
// result is returned alongside a hook or context error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%q: %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	queue := []queueItem{{name: start}}
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.name)
		if err := o.OnVisit(item.name, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		neighbors, err := g.Neighbors(item.name)
		if err != nil {
			return res, err
		}
		for _, nbr := range neighbors {
			if _, seen := res.Depth[nbr]; seen || !o.FilterNeighbor(item.name, nbr) {
				continue
			}
			res.Depth[nbr] = next
			res.Parent[nbr] = item.name
			queue = append(queue, queueItem{name: nbr, depth: next})
		}
	}

	return res, nil
}
