// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle(n): C_n with edges i—(i+1)%n emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		vs := ids(cfg, n)
		if err := ensureVertices(g, methodCycle, vs); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, vs[i], vs[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
