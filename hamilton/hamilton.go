// SPDX-License-Identifier: MIT
// Package: cycles/hamilton
//
// hamilton.go - deterministic backtracking search for a Hamiltonian cycle.

package hamilton

import (
	"context"

	"github.com/katalvlaran/cycles/core"
)

// checkInterval is the number of path extensions between two context polls.
const checkInterval = 1 << 10

// Result is the outcome of FindCycleContext.
type Result struct {
	// Cycle is the closed tour [start, ..., start], nil when not Found.
	Cycle core.Cycle

	// Found reports whether a Hamiltonian cycle exists.
	Found bool

	// Expansions counts path extensions attempted by the search.
	Expansions int
}

// searcher holds the mutable backtracking state for one call.
type searcher struct {
	ctx     context.Context
	adj     [][]int // ascending neighbor lists, owned copy
	closes  []bool  // closes[u]: u is adjacent to the start node
	visited []bool
	path    []int
	start   int

	expansions int
	err        error
}

// FindCycle returns a Hamiltonian cycle of g, or (nil, false) when none exists.
// g is read only.
func FindCycle(g *core.Graph) (core.Cycle, bool) {
	res, _ := FindCycleContext(context.Background(), g)
	return res.Cycle, res.Found
}

// HasCycle reports whether g has a Hamiltonian cycle.
func HasCycle(g *core.Graph) bool {
	_, ok := FindCycle(g)
	return ok
}

// FindCycleContext runs the same search as FindCycle and polls ctx every
// checkInterval extensions. When ctx ends first it returns ctx.Err() with
// Found == false; that outcome is inconclusive.
func FindCycleContext(ctx context.Context, g *core.Graph) (Result, error) {
	if g == nil || g.NodeCount() == 0 {
		return Result{}, nil
	}
	if g.NodeCount() == 1 {
		if g.HasLoop(0) {
			return Result{Cycle: core.Cycle{0, 0}, Found: true}, nil
		}
		return Result{}, nil
	}

	n := g.NodeCount()
	s := &searcher{
		adj:     g.Adjacency(),
		closes:  make([]bool, n),
		visited: make([]bool, n),
		path:    make([]int, 0, n+1),
		start:   0,
	}
	if ctx != nil && ctx.Done() != nil {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.ctx = ctx
	}
	for _, v := range s.adj[s.start] {
		s.closes[v] = true
	}

	found := s.extend(s.start)
	res := Result{Expansions: s.expansions}
	if s.err != nil {
		return res, s.err
	}
	if found {
		res.Cycle = append(core.Cycle(s.path), s.start)
		res.Found = true
	}

	return res, nil
}

// extend appends u to the path and tries to complete it. On failure the
// path and visited set are restored to their state before the call.
func (s *searcher) extend(u int) bool {
	s.path = append(s.path, u)
	s.visited[u] = true
	s.expansions++

	if s.ctx != nil && s.expansions%checkInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return false
		}
	}

	if len(s.path) == len(s.adj) {
		if s.closes[u] {
			return true
		}
	} else {
		for _, v := range s.adj[u] {
			if s.visited[v] {
				continue
			}
			if s.extend(v) {
				return true
			}
			if s.err != nil {
				return false
			}
		}
	}

	s.visited[u] = false
	s.path = s.path[:len(s.path)-1]
	return false
}
