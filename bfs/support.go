package bfs

import "github.com/katalvlaran/cycles/core"

// IsSupportConnected reports whether the support subgraph of g, the nodes
// with degree > 0, forms a single connected component.
//
// An empty support (no edges at all, or no nodes) is connected vacuously.
// The walk always starts at the lowest-id member of the support and only
// follows edges whose endpoints both belong to it, so equal graphs produce
// identical traversals. g is never mutated.
//
// Complexity: O(V + E).
func IsSupportConnected(g *core.Graph) bool {
	if g == nil {
		return true
	}
	deg := g.Degrees()
	start, size := -1, 0
	for u, d := range deg {
		if d > 0 {
			if start < 0 {
				start = u
			}
			size++
		}
	}
	if size == 0 {
		return true
	}

	inSupport := func(curr, nbr int) bool { return deg[curr] > 0 && deg[nbr] > 0 }
	res, err := BFS(g, start, WithFilterNeighbor(inSupport))
	if err != nil {
		return false
	}

	return len(res.Order) == size
}
