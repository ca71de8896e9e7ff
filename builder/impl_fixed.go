// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// impl_fixed.go - deterministic topologies: Cycle and Complete.
//
// Both constructors act on the whole node universe of the graph they are
// applied to and emit edges in ascending index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// Cycle returns a Constructor that links 0-1-…-(n-1)-0 over all n nodes.
// Requires n >= MinCycleNodes.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.NodeCount()
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return linkRing(g, methodCycle, order)
	}
}

// Complete returns a Constructor that adds every pair {u,v}, u<v.
// Complexity: O(n²).
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.NodeCount()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, u, v, err)
				}
			}
		}
		return nil
	}
}

// linkRing joins order[i] to order[(i+1)%len] for every i.
func linkRing(g *core.Graph, method string, order []int) error {
	for i, u := range order {
		v := order[(i+1)%len(order)]
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
		}
	}
	return nil
}
