// Package cycles finds Eulerian circuits and Hamiltonian cycles in finite
// undirected graphs and generates graphs with a planted or provably absent
// Hamiltonian cycle at an exact edge density.
//
// The module is organized into small packages:
//
//	core/      - dense adjacency Graph on nodes 0..n-1, Edge, Cycle
//	bfs/       - breadth-first walker and the support-connectivity check
//	euler/     - Hierholzer's algorithm and tour validation
//	hamilton/  - exhaustive backtracking search, context-aware variant, validation
//	builder/   - seeded generators and composable Constructors
//	bench/     - timing harness with Prometheus metrics and report rendering
//	cmd/cycles - command line front end (hamilton, non-hamilton, benchmark)
//
// Quick example (square 0-1-2-3-0):
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	_ = g.AddEdge(3, 0)
//	c, ok := hamilton.FindCycle(g) // [0 1 2 3 0], true
//	e, ok := euler.FindCycle(g)    // a closed walk over all 4 edges
//
// Absence is always reported as ok == false, never as an error. Errors are
// reserved for invalid input and are sentinel values checked with errors.Is.
//
// The library packages are single-threaded and do not log; logging, metrics
// and configuration live in bench and the command line.
package cycles
