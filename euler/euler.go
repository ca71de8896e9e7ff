// SPDX-License-Identifier: MIT
// Package: cycles/euler
//
// euler.go - Hierholzer's algorithm on an owned arc copy of core.Graph.

package euler

import (
	"github.com/katalvlaran/cycles/bfs"
	"github.com/katalvlaran/cycles/core"
)

// arc is one direction of an undirected edge stored in adjacency list of its tail.
// twin is the index of the reverse arc inside arcs[to]; a self-loop is a
// single arc whose twin is its own index.
type arc struct {
	to   int
	twin int
}

// arcs is the finder-owned working copy of the adjacency structure.
type arcs [][]arc

// newArcs copies g into twin-linked arcs. The caller's graph is not touched.
// Complexity: O(V + E).
func newArcs(g *core.Graph) arcs {
	n := g.NodeCount()
	a := make(arcs, n)
	for _, e := range g.Edges() {
		if e.U == e.V {
			a[e.U] = append(a[e.U], arc{to: e.U, twin: len(a[e.U])})
			continue
		}
		iu, iv := len(a[e.U]), len(a[e.V])
		a[e.U] = append(a[e.U], arc{to: e.V, twin: iv})
		a[e.V] = append(a[e.V], arc{to: e.U, twin: iu})
	}
	return a
}

// take consumes the last remaining arc of u together with its twin and
// returns the node reached. Both removals are O(1).
func (a arcs) take(u int) int {
	last := len(a[u]) - 1
	x := a[u][last]
	a[u] = a[u][:last]
	if x.to != u {
		a.remove(x.to, x.twin)
	}
	return x.to
}

// remove swap-deletes arcs[v][i] and repairs the twin index of the arc
// that moved into slot i.
func (a arcs) remove(v, i int) {
	last := len(a[v]) - 1
	if i != last {
		moved := a[v][last]
		a[v][i] = moved
		if moved.to == v {
			a[v][i].twin = i
		} else {
			a[moved.to][moved.twin].twin = i
		}
	}
	a[v] = a[v][:last]
}

// exhausted reports whether every arc has been consumed.
func (a arcs) exhausted() bool {
	for _, list := range a {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// FindCycle returns an Eulerian cycle of g or reports absence.
//
// Returns:
//   - (Cycle{}, true) for a graph with no nodes (nil g included);
//   - ([0], true) for nodes without edges;
//   - (closed walk of length E+1, true) when every degree is even and the
//     support is connected;
//   - (nil, false) otherwise.
//
// g is read only; the search runs on a private copy.
// Complexity: O(V + E) time and space.
func FindCycle(g *core.Graph) (core.Cycle, bool) {
	if g == nil || g.NodeCount() == 0 {
		return core.Cycle{}, true
	}

	deg := g.Degrees()
	start := -1
	for u, d := range deg {
		if d%2 != 0 {
			return nil, false
		}
		if d > 0 && start < 0 {
			start = u
		}
	}
	if !bfs.IsSupportConnected(g) {
		return nil, false
	}
	if start < 0 {
		return core.Cycle{0}, true
	}

	work := newArcs(g)
	tour := make(core.Cycle, 0, g.EdgeCount()+1)
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(work[u]) > 0 {
			stack = append(stack, work.take(u))
			continue
		}
		stack = stack[:len(stack)-1]
		tour = append(tour, u)
	}
	for i, j := 0, len(tour)-1; i < j; i, j = i+1, j-1 {
		tour[i], tour[j] = tour[j], tour[i]
	}

	if !tour.Closed() || !work.exhausted() {
		return nil, false
	}

	return tour, true
}

// HasCycle reports whether g admits an Eulerian cycle.
func HasCycle(g *core.Graph) bool {
	_, ok := FindCycle(g)
	return ok
}
