// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// api.go - Constructor type and the BuildGraph orchestrator.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate their parameters, return sentinel errors (never
// panic) and draw randomness only from cfg.rng.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-node core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(n) plus the sum of the constructors' costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
