// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cycles/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
)

// buildGraph creates an n-node graph and inserts every pair in edges.
func buildGraph(t *testing.T, n int, edges [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// requireSymmetric asserts v ∈ adj(u) ⇔ u ∈ adj(v) for every pair.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.Adjacency()
	for u, nbrs := range adj {
		for _, v := range nbrs {
			require.Contains(t, adj[v], u, "edge %d-%d is not mirrored", u, v)
		}
	}
}
