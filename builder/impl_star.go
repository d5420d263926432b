// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n): hub CenterVertexID joined to n-1 leaves idFn(0..n-2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// CenterVertexID names the hub of a Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with n vertices in total (n ≥ 2).
// The hub is declared first. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		leaves := ids(cfg, n-1)
		if err := ensureVertices(g, methodStar, append([]string{CenterVertexID}, leaves...)); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
