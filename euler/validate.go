package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// Sentinel errors reported by Validate.
var (
	// ErrNotClosed indicates the walk does not end where it started.
	ErrNotClosed = errors.New("euler: walk is not closed")

	// ErrUnknownEdge indicates two consecutive nodes are not adjacent in the graph.
	ErrUnknownEdge = errors.New("euler: step uses a non-edge")

	// ErrEdgeReused indicates an edge is traversed more than once.
	ErrEdgeReused = errors.New("euler: edge traversed twice")

	// ErrEdgesUnused indicates the walk misses some edges of the graph.
	ErrEdgesUnused = errors.New("euler: edges left untraversed")
)

// Validate checks that c is an Eulerian cycle of g: closed, made of graph
// edges, and traversing each edge exactly once. Trivial cycles are accepted
// only when g has no edges.
//
// Complexity: O(V + E).
func Validate(g *core.Graph, c core.Cycle) error {
	if c.IsTrivial() {
		if g.EdgeCount() != 0 {
			return fmt.Errorf("%w: %d edges, trivial walk", ErrEdgesUnused, g.EdgeCount())
		}
		return nil
	}
	if !c.Closed() {
		return fmt.Errorf("%w: %d != %d", ErrNotClosed, c[0], c[len(c)-1])
	}

	used := make(map[core.Edge]struct{}, len(c)-1)
	for i := 0; i+1 < len(c); i++ {
		e := core.NewEdge(c[i], c[i+1])
		if !g.HasEdge(e.U, e.V) {
			return fmt.Errorf("%w: %s at step %d", ErrUnknownEdge, e, i)
		}
		if _, dup := used[e]; dup {
			return fmt.Errorf("%w: %s at step %d", ErrEdgeReused, e, i)
		}
		used[e] = struct{}{}
	}
	if len(used) != g.EdgeCount() {
		return fmt.Errorf("%w: %d of %d traversed", ErrEdgesUnused, len(used), g.EdgeCount())
	}

	return nil
}
