// File: methods_clone.go
// Role: Deep copies of a graph.

package core

// Clone returns a deep copy of the graph: flags, adjacency and loop markers.
// The clone shares no memory with the receiver.
//
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowLoops: g.allowLoops,
		adj:        make([][]int, len(g.adj)),
		loops:      append([]bool(nil), g.loops...),
		edges:      g.edges,
	}
	for u, nbrs := range g.adj {
		clone.adj[u] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return clone
}
