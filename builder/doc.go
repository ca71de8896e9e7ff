// Package builder generates core.Graph instances with structural guarantees
// about Hamiltonian cycles at an exact edge density ("saturation").
//
// Generators:
//
//	Hamiltonian(n, sat, opts...)     // seeded random n-cycle, then random fill
//	NonHamiltonian(n, sat, opts...)  // one random isolated node, random fill of the rest
//
// Saturation is a percentage of the maximum edge count C(n,2). The edge
// target is floor(sat·C(n,2)/100); Hamiltonian graphs never drop below the n
// edges of their seed cycle, and non-Hamiltonian graphs fill only the
// C(n-1,2) pairs that avoid the isolated node. Saturation values must belong
// to an enumerated set: {30, 70} for Hamiltonian and {50} for
// NonHamiltonian by default, overridable WithSaturations.
//
// Both generators are composed from Constructor closures applied by
// BuildGraph; the same closures (Cycle, Complete, RandomCycle, FillRandom,
// IsolateAndFill) are exported for custom fixtures.
//
// Randomness is always explicit: pass WithSeed or WithRand. There is no
// package-level RNG, so concurrent or repeated runs with their own seeds are
// independently reproducible. A *rand.Rand must not be shared across
// goroutines; DeriveSeed splits one base seed into independent streams.
//
// Errors (checked before any graph is built, in this order):
//
//	ErrInvalidNodeCount  - n <= 0.
//	ErrInvalidSaturation - sat not in the allowed set.
//	ErrNeedRandSource    - no WithSeed/WithRand supplied.
//	ErrTooFewVertices    - a fixed-topology constructor below its minimum size.
//	ErrConstructFailed   - a fill target exceeds the available non-edges.
package builder
