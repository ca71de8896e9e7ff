package hamilton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// Sentinel errors reported by Validate.
var (
	// ErrWrongLength indicates the cycle does not have n+1 entries.
	ErrWrongLength = errors.New("hamilton: cycle length must be n+1")

	// ErrNotClosed indicates the first and last node differ.
	ErrNotClosed = errors.New("hamilton: cycle is not closed")

	// ErrRepeatedNode indicates a node appears twice before closing.
	ErrRepeatedNode = errors.New("hamilton: node visited twice")

	// ErrNodeOutOfRange indicates a node id outside [0,n).
	ErrNodeOutOfRange = errors.New("hamilton: node out of range")

	// ErrUnknownEdge indicates two consecutive nodes are not adjacent.
	ErrUnknownEdge = errors.New("hamilton: step uses a non-edge")
)

// Validate checks that c is a Hamiltonian cycle of g: n+1 entries, closed,
// every node exactly once before closing, consecutive nodes adjacent.
// Complexity: O(n · Δ).
func Validate(g *core.Graph, c core.Cycle) error {
	n := g.NodeCount()
	if n == 0 || len(c) != n+1 {
		return fmt.Errorf("%w: n=%d, len=%d", ErrWrongLength, n, len(c))
	}
	if c[0] != c[n] {
		return fmt.Errorf("%w: %d != %d", ErrNotClosed, c[0], c[n])
	}

	seen := make([]bool, n)
	for i, v := range c[:n] {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %d at position %d", ErrNodeOutOfRange, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d at position %d", ErrRepeatedNode, v, i)
		}
		seen[v] = true
	}
	for i := 0; i < n; i++ {
		if !g.HasEdge(c[i], c[i+1]) {
			return fmt.Errorf("%w: %d-%d at position %d", ErrUnknownEdge, c[i], c[i+1], i)
		}
	}

	return nil
}
