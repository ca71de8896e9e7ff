// RNG utilities shared by the stochastic constructors and by harnesses that
// need many independent, reproducible streams from one base seed.
//
// math/rand.Rand is NOT goroutine-safe. Derive one stream per worker or per
// generated graph instead of sharing a *rand.Rand.
package builder

import "math/rand"

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids yield
// uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// pair is an unordered candidate edge u < v.
type pair struct{ u, v int }

// shufflePairs performs an in-place Fisher–Yates shuffle driven by rng.
// Complexity: O(len(a)).
func shufflePairs(a []pair, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
