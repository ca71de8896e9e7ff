// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand; no hidden globals.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSaturations replaces the enumerated set of accepted saturation
// percentages. Panics when the set is empty or a value lies outside [0,100].
func WithSaturations(values ...float64) BuilderOption {
	if len(values) == 0 {
		panic("builder: WithSaturations() needs at least one value")
	}
	for _, v := range values {
		if v < MinSaturation || v > MaxSaturation {
			panic(fmt.Sprintf("builder: WithSaturations(%g) outside [%g,%g]", v, MinSaturation, MaxSaturation))
		}
	}
	set := append([]float64(nil), values...)
	return func(c *builderConfig) {
		c.saturations = set
	}
}
