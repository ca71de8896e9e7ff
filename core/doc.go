// Package core provides the minimal undirected graph used by every other
// package of this module: a fixed universe of integer nodes {0..n-1} and a
// dense adjacency array indexed by node id.
//
// The Graph G = (V,E) keeps three structural invariants at all times:
//
//   - Symmetry: v ∈ adj(u) ⇔ u ∈ adj(v).
//   - No multi-edges: each unordered pair {u,v} is stored at most once.
//   - Fixed universe: nodes are created by NewGraph(n) and never resized;
//     isolated nodes (degree 0) stay present as empty adjacency entries.
//
// Self-loops are rejected unless the graph was created WithLoops(). Generators
// never produce loops; the option only exists so that algorithms can be
// exercised on the degenerate single-node cycle.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(u, v int) error                             // O(min(deg u, deg v)), idempotent
//	HasEdge(u, v int) bool                              // O(min(deg u, deg v))
//	Nodes() []int                                       // O(n), ascending
//	Edges() []Edge                                      // O(E log E), canonical U<=V, sorted
//	Degree(u int) (int, error)                          // O(1)
//	Degrees() []int                                     // O(n), indexed by node id
//	Neighbors(u int) ([]int, error)                     // O(d log d), ascending copy
//	Clone() *Graph                                      // O(n+E)
//
// Cycle is the value type returned by the finders (euler, hamilton): an
// ordered node sequence whose consecutive pairs are edges of the graph.
//
// Errors:
//
//	ErrNegativeNodeCount - NewGraph(n) with n < 0.
//	ErrNodeOutOfRange    - a node reference outside [0,n).
//	ErrLoopNotAllowed    - AddEdge(v,v) on a graph without WithLoops().
//
// The Graph performs no locking: it is built once, then handed read-only to
// the finders, which copy whatever they need to mutate.
package core
