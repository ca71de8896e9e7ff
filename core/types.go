// SPDX-License-Identifier: MIT
// Package: cycles/core
//
// types.go - Graph, Edge, Cycle, GraphOption and sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrNodeOutOfRange indicates a node id outside the universe [0,n).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered pair {U,V} in canonical form U <= V.
// U == V only for self-loops on graphs created WithLoops().
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical form of {u,v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected simple graph over the nodes {0..n-1}.
//
// adj[u] lists the neighbors of u in insertion order. A self-loop on u is
// stored once in adj[u] and counted twice by Degree.
type Graph struct {
	allowLoops bool

	adj   [][]int
	loops []bool // loops[u] reports a self-loop on u
	edges int    // number of distinct undirected edges (loops included)
}

// NewGraph creates a graph with n isolated nodes.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("core: NewGraph(n=%d): %w", n, ErrNegativeNodeCount)
	}
	g := &Graph{
		adj:   make([][]int, n),
		loops: make([]bool, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// MustGraph is NewGraph for fixtures with a known-valid size; it panics on error.
func MustGraph(n int, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool { return g.allowLoops }

// NodeCount returns n, the size of the node universe.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct undirected edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// checkNode validates that u lies in [0,n).
func (g *Graph) checkNode(u int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("core: node %d not in [0,%d): %w", u, len(g.adj), ErrNodeOutOfRange)
	}
	return nil
}
