// Package bfs provides breadth-first search over a core.Graph and the
// support-connectivity check used as the Eulerian precondition.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing distance from
//     start and returns a Result with the visit Order, Depth and Parent
//     arrays (indexed by node id, -1 where unreached).
//   - IsSupportConnected(g) answers whether all non-isolated nodes lie in a
//     single component. Isolated nodes are ignored; a graph without edges is
//     connected vacuously.
//
// Determinism
//
//	Neighbors are expanded in adjacency storage order and the support check
//	always starts from its lowest-id member, so repeated calls on equal
//	graphs produce identical visit orders.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if start is outside [0,n).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
