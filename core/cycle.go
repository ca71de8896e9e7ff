package core

// Cycle is an ordered node sequence [v0, v1, ..., vk] whose consecutive
// pairs are edges of the graph it was computed on. A non-trivial cycle is
// closed: v0 == vk.
//
// Finders return a Cycle together with a found flag; a nil Cycle with
// found == false is the absence marker. Two degenerate shapes are valid
// positive answers of the Eulerian finder:
//
//   - empty Cycle on a graph with no nodes;
//   - single-node Cycle [v] on a graph with nodes but no edges.
type Cycle []int

// IsTrivial reports whether the cycle uses no edges (length 0 or 1).
func (c Cycle) IsTrivial() bool { return len(c) <= 1 }

// EdgeCount returns the number of edges traversed by the cycle.
func (c Cycle) EdgeCount() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

// Closed reports whether the first and last nodes coincide.
// Trivial cycles are closed by convention.
func (c Cycle) Closed() bool {
	return c.IsTrivial() || c[0] == c[len(c)-1]
}

// Clone returns an independent copy of the cycle.
func (c Cycle) Clone() Cycle {
	if c == nil {
		return nil
	}
	return append(Cycle(make([]int, 0, len(c))), c...)
}
