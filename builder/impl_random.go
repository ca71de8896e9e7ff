// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// impl_random.go - stochastic constructors: RandomCycle, FillRandom, IsolateAndFill.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Edges are only ever added; existing edges (a seed cycle) are never removed.
//   - The fill reaches its target exactly, drawing from the remaining
//     non-edges in uniformly random order without duplicates.
//
// Determinism:
//   - Candidate pairs are enumerated in (u asc, v asc) order before shuffling,
//     so a fixed seed yields identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// noExclusion marks "no node is excluded" for fillTo.
const noExclusion = -1

// RandomCycle returns a Constructor that connects a uniformly random
// permutation of all nodes as a ring. On n == 2 this is a single edge; on
// n < 2 it adds nothing.
// Complexity: O(n).
func RandomCycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRand(methodRandomCycle, cfg); err != nil {
			return err
		}
		n := g.NodeCount()
		if n < 2 {
			return nil
		}
		return linkRing(g, methodRandomCycle, cfg.rng.Perm(n))
	}
}

// FillRandom returns a Constructor that adds random non-edges until the
// graph holds exactly target edges. A target at or below the current edge
// count is a no-op.
// Complexity: O(n² · Δ) to enumerate candidates, O(n²) to shuffle.
func FillRandom(target int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRand(methodFillRandom, cfg); err != nil {
			return err
		}
		return fillTo(g, cfg, methodFillRandom, target, noExclusion)
	}
}

// IsolateAndFill returns a Constructor that picks one node uniformly at
// random, keeps it at degree 0, and fills pairs among the remaining nodes
// up to target edges. The chosen node is reported through isolated when
// the pointer is non-nil.
func IsolateAndFill(target int, isolated *int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRand(methodIsolateAndFill, cfg); err != nil {
			return err
		}
		n := g.NodeCount()
		if n == 0 {
			return nil
		}
		iso := cfg.rng.Intn(n)
		if isolated != nil {
			*isolated = iso
		}
		return fillTo(g, cfg, methodIsolateAndFill, target, iso)
	}
}

// fillTo adds shuffled candidate pairs that avoid exclude until g has
// target edges.
func fillTo(g *core.Graph, cfg builderConfig, method string, target, exclude int) error {
	need := target - g.EdgeCount()
	if need <= 0 {
		return nil
	}

	n := g.NodeCount()
	candidates := make([]pair, 0, MaxEdges(n)-g.EdgeCount())
	for u := 0; u < n; u++ {
		if u == exclude {
			continue
		}
		for v := u + 1; v < n; v++ {
			if v == exclude || g.HasEdge(u, v) {
				continue
			}
			candidates = append(candidates, pair{u: u, v: v})
		}
	}
	if need > len(candidates) {
		return fmt.Errorf("%s: target=%d needs %d more edges, only %d non-edges: %w",
			method, target, need, len(candidates), ErrConstructFailed)
	}

	shufflePairs(candidates, cfg.rng)
	for _, p := range candidates[:need] {
		if err := g.AddEdge(p.u, p.v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, p.u, p.v, err)
		}
	}

	return nil
}
