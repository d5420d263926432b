// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n): K_n with pairs (i<j) emitted in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		vs := ids(cfg, n)
		if err := ensureVertices(g, methodComplete, vs); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
