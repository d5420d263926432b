// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p) over unordered pairs.
//
// Trial order is fixed (i ascending, then j > i ascending) so a given seed
// always yields the same edge list. An RNG is required unless p is 0 or 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that includes each pair {i,j} with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		vs := ids(cfg, n)
		if err := ensureVertices(g, methodRandomSparse, vs); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
