package mst

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// SortEdges returns a copy of edges ordered by ascending weight.
//
// The sort is stable: edges with equal weight keep their relative input order,
// which fixes which of several equal-weight candidates Kruskal keeps.
// The input slice is not modified.
// Complexity: O(E log E) time, O(E) space.
func SortEdges(edges []core.Edge) []core.Edge {
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	return sorted
}
