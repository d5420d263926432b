// SPDX-License-Identifier: MIT
//
// api.go - the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Implementations validate parameters first and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies cons
// in order. The first constructor error is returned as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost(cons).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ensureVertices declares ids in order, reusing those already present.
func ensureVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if g.HasVertex(id) {
			continue
		}
		if _, err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge draws a weight from cfg and appends u—v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// ids materialises idFn(0..n-1).
func ids(cfg builderConfig, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}
