package hamilton_test

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/hamilton"
)

// ExampleFindCycle finds the tour of K4 and shows that an isolated node
// rules out any Hamiltonian cycle.
func ExampleFindCycle() {
	g, _ := core.NewGraph(5)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	_, ok := hamilton.FindCycle(g) // node 4 isolated
	fmt.Println(ok)

	k4, _ := core.NewGraph(4)
	for _, e := range g.Edges() {
		_ = k4.AddEdge(e.U, e.V)
	}
	c, ok := hamilton.FindCycle(k4)
	fmt.Println(ok, c)
	// Output:
	// false
	// true [0 1 2 3 0]
}
