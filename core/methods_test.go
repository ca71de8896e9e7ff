package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
)

func TestAddEdge_Symmetric(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	requireSymmetric(t, g)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))
}

func TestAddEdge_Idempotent(t *testing.T) {
	once := buildGraph(t, 3, [][2]int{{0, 1}})
	twice := buildGraph(t, 3, [][2]int{{0, 1}, {0, 1}, {1, 0}})

	assert.Equal(t, once.Edges(), twice.Edges())
	assert.Equal(t, 1, twice.EdgeCount())
	assert.Equal(t, []int{1, 1, 0}, twice.Degrees())
}

func TestAddEdge_Errors(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"negative u", -1, 0, core.ErrNodeOutOfRange},
		{"v too large", 0, 3, core.ErrNodeOutOfRange},
		{"loop disabled", 1, 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
	assert.Equal(t, 0, g.EdgeCount(), "failed inserts must not mutate the graph")
}

func TestAddEdge_Loop(t *testing.T) {
	g := buildGraph(t, 1, [][2]int{{0, 0}, {0, 0}}, core.WithLoops())
	assert.True(t, g.Looped())
	assert.True(t, g.HasLoop(0))
	assert.True(t, g.HasEdge(0, 0))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 0}}, g.Edges())

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestEdges_CanonicalSorted(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{4, 2}, {3, 0}, {1, 0}, {2, 1}})
	assert.Equal(t, []core.Edge{{0, 1}, {0, 3}, {1, 2}, {2, 4}}, g.Edges())
}

func TestDegree_OutOfRange(t *testing.T) {
	g := buildGraph(t, 2, nil)
	_, err := g.Degree(2)
	assert.True(t, errors.Is(err, core.ErrNodeOutOfRange))
	_, err = g.Neighbors(-3)
	assert.True(t, errors.Is(err, core.ErrNodeOutOfRange))
	assert.False(t, g.HasEdge(0, 7))
	assert.False(t, g.HasLoop(9))
}

func TestNeighbors_Sorted(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{2, 4}, {2, 0}, {2, 3}, {2, 1}})
	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, nbrs)

	var seen []int
	g.ForEachNeighbor(2, func(v int) { seen = append(seen, v) })
	assert.ElementsMatch(t, nbrs, seen)
}

func TestDegrees_K4PlusIsolated(t *testing.T) {
	var edges [][2]int
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := buildGraph(t, 5, edges)
	assert.Equal(t, []int{3, 3, 3, 3, 0}, g.Degrees())
	assert.Equal(t, 6, g.EdgeCount())
	requireSymmetric(t, g)
}

func TestClone_Independent(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}})
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasEdge(1, 2))
}

func TestAdjacency_IsCopy(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 2}, {0, 1}})
	adj := g.Adjacency()
	assert.Equal(t, [][]int{{1, 2}, {0}, {0}}, adj)
	adj[0][0] = 99
	assert.True(t, g.HasEdge(0, 1))
}
