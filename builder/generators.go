// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// generators.go - Hamiltonian and NonHamiltonian generators.

package builder

import (
	"math"

	"github.com/katalvlaran/cycles/core"
)

// MaxEdges returns C(n,2), the edge count of the complete graph K_n.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// TargetEdges returns floor(sat · C(n,2) / 100), the edge count that
// realizes saturation sat (in percent) on n nodes.
func TargetEdges(n int, sat float64) int {
	return int(math.Floor(sat * float64(MaxEdges(n)) / 100))
}

// HamiltonianTarget returns the exact edge count produced by Hamiltonian:
// TargetEdges raised to the n seed-cycle edges and capped at C(n,2).
func HamiltonianTarget(n int, sat float64) int {
	t := TargetEdges(n, sat)
	if t < n {
		t = n
	}
	if m := MaxEdges(n); t > m {
		t = m
	}
	return t
}

// NonHamiltonianTarget returns the exact edge count produced by
// NonHamiltonian: the saturation applied to the n-1 non-isolated nodes,
// or 0 when n <= 2.
func NonHamiltonianTarget(n int, sat float64) int {
	if n <= 2 {
		return 0
	}
	return TargetEdges(n-1, sat)
}

// Hamiltonian generates an n-node graph that is guaranteed to contain a
// Hamiltonian cycle and holds exactly HamiltonianTarget(n, sat) edges.
//
// A uniformly random permutation of the nodes is linked as a ring first;
// those edges are never removed. Further edges are drawn from the remaining
// non-edges in random order until the target is met. n == 1 yields a single
// isolated node, a Hamiltonian graph by convention.
//
// Errors: ErrInvalidNodeCount, ErrInvalidSaturation, ErrNeedRandSource,
// checked in that order before any work.
func Hamiltonian(n int, sat float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateNodeCount(methodHamiltonian, n); err != nil {
		return nil, err
	}
	if err := validateSaturation(methodHamiltonian, sat, cfg.allowed(HamiltonianSaturations)); err != nil {
		return nil, err
	}
	if err := validateRand(methodHamiltonian, cfg); err != nil {
		return nil, err
	}

	return BuildGraph(n, opts, RandomCycle(), FillRandom(HamiltonianTarget(n, sat)))
}

// NonHamiltonian generates an n-node graph that provably has no
// Hamiltonian cycle and holds exactly NonHamiltonianTarget(n, sat) edges.
//
// One node chosen uniformly at random stays isolated; a cycle through all n
// nodes would need two edges at it, so absence holds by construction. The
// other n-1 nodes receive a random fill. n <= 2 yields an edgeless graph.
//
// Errors: ErrInvalidNodeCount, ErrInvalidSaturation, ErrNeedRandSource,
// checked in that order before any work.
func NonHamiltonian(n int, sat float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateNodeCount(methodNonHamiltonian, n); err != nil {
		return nil, err
	}
	if err := validateSaturation(methodNonHamiltonian, sat, cfg.allowed(NonHamiltonianSaturations)); err != nil {
		return nil, err
	}
	if err := validateRand(methodNonHamiltonian, cfg); err != nil {
		return nil, err
	}
	if n <= 2 {
		return BuildGraph(n, opts)
	}

	return BuildGraph(n, opts, IsolateAndFill(NonHamiltonianTarget(n, sat), nil))
}
