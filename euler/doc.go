// Package euler constructs Eulerian cycles of undirected core.Graph values
// with Hierholzer's algorithm.
//
// What
//
//   - FindCycle(g) returns a closed walk that traverses every edge of g
//     exactly once, or reports absence.
//   - Validate(g, c) checks a candidate cycle against g.
//
// Preconditions (checked, never assumed)
//
//  1. Every node has even degree.
//  2. The support subgraph (nodes with degree > 0) is connected, evaluated
//     by bfs.IsSupportConnected on the caller's unmodified graph.
//
// Failing either is a valid negative answer: FindCycle returns (nil, false).
//
// Degenerate answers
//
//   - A graph with no nodes yields an empty Cycle, found == true.
//   - A graph with nodes but no edges yields [0], found == true: a vacuous
//     walk on the smallest node. Use Cycle.IsTrivial to tell it apart from a
//     walk that used edges.
//
// Algorithm
//
//	The finder copies g into arcs carrying the index of their twin in the
//	opposite endpoint's list. Walking u→v pops the last arc of u and
//	swap-removes its twin from v in O(1), so the whole run is O(V+E) even on
//	dense graphs. The start node is the smallest node with degree > 0.
//	Before returning it re-checks that the tour is closed and that no arc
//	was left behind; a violation folds into absence as well.
package euler
