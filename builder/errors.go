// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d: %w", methodHamiltonian, n, ErrInvalidNodeCount).
//   • Generators never panic; option constructors panic on meaningless input.

package builder

import "errors"

// ErrInvalidNodeCount indicates a generator was asked for n <= 0 nodes.
var ErrInvalidNodeCount = errors.New("builder: invalid node count")

// ErrInvalidSaturation indicates a saturation value outside the configured set.
var ErrInvalidSaturation = errors.New("builder: saturation not allowed")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooFewVertices indicates a fixed topology below its minimum size.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not reach its target
// without breaking graph invariants (e.g. not enough non-edges to fill).
var ErrConstructFailed = errors.New("builder: construction failed")
