package builder

import "fmt"

// validateNodeCount enforces n >= 1 for the generators.
func validateNodeCount(method string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidNodeCount)
	}
	return nil
}

// validateSaturation enforces sat ∈ allowed (exact match).
func validateSaturation(method string, sat float64, allowed []float64) error {
	for _, a := range allowed {
		if a == sat {
			return nil
		}
	}
	return fmt.Errorf("%s: saturation %g not in %v: %w", method, sat, allowed, ErrInvalidSaturation)
}

// validateRand enforces a configured RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}
