// File: methods_nodes.go
// Role: Node queries: Nodes, Degree, Degrees, Neighbors, Adjacency.
// Determinism:
//   - Nodes() and Neighbors() return ascending ids.

package core

import "sort"

// Nodes returns the node universe 0..n-1 in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.adj))
	for i := range out {
		out[i] = i
	}
	return out
}

// Degree returns the number of edge endpoints at u; a self-loop counts twice.
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkNode(u); err != nil {
		return 0, err
	}
	return g.degree(u), nil
}

func (g *Graph) degree(u int) int {
	d := len(g.adj[u])
	if g.loops[u] {
		d++
	}
	return d
}

// Degrees returns the degree of every node, indexed by node id.
func (g *Graph) Degrees() []int {
	out := make([]int, len(g.adj))
	for u := range g.adj {
		out[u] = g.degree(u)
	}
	return out
}

// Neighbors returns a sorted copy of adj(u). A self-loop lists u itself once.
// Complexity: O(d log d).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}
	out := append([]int(nil), g.adj[u]...)
	sort.Ints(out)

	return out, nil
}

// Adjacency returns sorted neighbor lists for every node, indexed by node id.
// The result is a fresh copy; callers may mutate it freely.
// Complexity: O(n + E log Δ).
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, len(g.adj))
	for u := range g.adj {
		out[u] = append(make([]int, 0, len(g.adj[u])), g.adj[u]...)
		sort.Ints(out[u])
	}
	return out
}

// ForEachNeighbor calls fn for every entry of adj(u) in storage order,
// without copying. It is a no-op for out-of-range u.
func (g *Graph) ForEachNeighbor(u int, fn func(v int)) {
	if g.checkNode(u) != nil {
		return
	}
	for _, v := range g.adj[u] {
		fn(v)
	}
}
