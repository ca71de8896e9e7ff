// SPDX-License-Identifier: MIT
// Package: cycles/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng         = nil  (stochastic constructors fail with ErrNeedRandSource)
//   • saturations = nil  (each generator falls back to its reference set)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Allowed saturation percentages; nil means generator default.
	saturations []float64
}

// newBuilderConfig applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// allowed returns the configured saturation set, or def when none was set.
func (c builderConfig) allowed(def []float64) []float64 {
	if c.saturations != nil {
		return c.saturations
	}
	return def
}
