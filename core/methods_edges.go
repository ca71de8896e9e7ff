// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge, HasEdge, Edges.
// Determinism:
//   - Edges() returns canonical pairs sorted by (U,V) ascending.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v} into both adjacency lists if it
// is absent. Adding an existing edge is a no-op (idempotent, no error).
//
// Errors:
//   - ErrNodeOutOfRange: u or v outside [0,n).
//   - ErrLoopNotAllowed: u == v on a graph without WithLoops().
//
// Complexity: O(min(deg u, deg v)) for the duplicate check.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if u == v {
		if !g.allowLoops {
			return ErrLoopNotAllowed
		}
		if !g.loops[u] {
			g.loops[u] = true
			g.adj[u] = append(g.adj[u], u)
			g.edges++
		}
		return nil
	}
	if g.hasEdge(u, v) {
		return nil
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range ids report false.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return false
	}
	return g.hasEdge(u, v)
}

// hasEdge scans the shorter of the two adjacency lists.
func (g *Graph) hasEdge(u, v int) bool {
	if u == v {
		return g.loops[u]
	}
	if len(g.adj[v]) < len(g.adj[u]) {
		u, v = v, u
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// HasLoop reports whether u carries a self-loop.
func (g *Graph) HasLoop(u int) bool {
	if g.checkNode(u) != nil {
		return false
	}
	return g.loops[u]
}

// Edges returns every edge once, in canonical form, sorted by (U,V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u <= v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
