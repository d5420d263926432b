// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n): P_n with edges i—(i+1) emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		vs := ids(cfg, n)
		if err := ensureVertices(g, methodPath, vs); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, vs[i], vs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
