package bfs

import "github.com/katalvlaran/spantree/core"

// Components partitions the vertices of g into connected components.
// Components are ordered by their lowest vertex index; members are in BFS
// order from that vertex. An isolated vertex forms its own component.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	names, edges := g.Snapshot()
	adj := make([][]int, len(names))
	for _, e := range edges {
		adj[e.Src] = append(adj[e.Src], e.Dst)
		if !e.IsLoop() {
			adj[e.Dst] = append(adj[e.Dst], e.Src)
		}
	}

	seen := make([]bool, len(names))
	var out [][]string
	for s := range names {
		if seen[s] {
			continue
		}
		seen[s] = true
		comp := []string{}
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, names[u])
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		out = append(out, comp)
	}

	return out, nil
}

// Connected reports whether g has at most one component.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
