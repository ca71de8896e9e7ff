// Package hamilton decides whether an undirected core.Graph has a
// Hamiltonian cycle by exhaustive depth-first backtracking, and returns one
// when it exists.
//
// Search
//
//	The start node is fixed to 0 (cycles are rotation invariant). The path
//	grows from its last node through neighbors in ascending id order,
//	skipping visited nodes. A path of length n is accepted iff its last node
//	is adjacent to the start; the returned cycle is the path with the start
//	appended, so len(cycle) == n+1. A dead end unmarks the last node and
//	backtracks to the next neighbor of its predecessor. No pruning beyond
//	"skip visited" is applied, so outcome and running time are reproducible
//	for a fixed graph.
//
// Degenerate answers
//
//   - n == 0: absence.
//   - n == 1: [0,0] if node 0 carries a self-loop, absence otherwise.
//
// Cost
//
//	Worst case O(n!) time; recursion depth is at most n. FindCycle has no
//	cancellation. Callers that need bounded latency use FindCycleContext and
//	treat a context error as inconclusive, not as "no cycle".
package hamilton
