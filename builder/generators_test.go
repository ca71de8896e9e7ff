package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/builder"
	"github.com/katalvlaran/cycles/euler"
	"github.com/katalvlaran/cycles/hamilton"
)

func TestTargetEdges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, builder.MaxEdges(0))
	assert.Equal(t, 0, builder.MaxEdges(1))
	assert.Equal(t, 1, builder.MaxEdges(2))
	assert.Equal(t, 45, builder.MaxEdges(10))

	assert.Equal(t, 13, builder.TargetEdges(10, 30)) // 13.5
	assert.Equal(t, 31, builder.TargetEdges(10, 70)) // 31.5
	assert.Equal(t, 16, builder.TargetEdges(11, 30)) // 16.5
	assert.Equal(t, 0, builder.TargetEdges(2, 30))

	assert.Equal(t, 1, builder.HamiltonianTarget(2, 30))
	assert.Equal(t, 3, builder.HamiltonianTarget(3, 30))
	assert.Equal(t, 4, builder.HamiltonianTarget(4, 30))
	assert.Equal(t, 0, builder.HamiltonianTarget(1, 70))

	assert.Equal(t, 0, builder.NonHamiltonianTarget(2, 50))
	assert.Equal(t, 18, builder.NonHamiltonianTarget(10, 50)) // C(9,2)=36
}

func TestGenerators_Validation(t *testing.T) {
	t.Parallel()

	seed := builder.WithSeed(1)

	for _, n := range []int{0, -3} {
		_, err := builder.Hamiltonian(n, 30, seed)
		require.ErrorIs(t, err, builder.ErrInvalidNodeCount)
		_, err = builder.NonHamiltonian(n, 50, seed)
		require.ErrorIs(t, err, builder.ErrInvalidNodeCount)
	}

	_, err := builder.Hamiltonian(5, 50, seed)
	require.ErrorIs(t, err, builder.ErrInvalidSaturation)
	_, err = builder.NonHamiltonian(5, 30, seed)
	require.ErrorIs(t, err, builder.ErrInvalidSaturation)

	_, err = builder.Hamiltonian(5, 30)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.NonHamiltonian(5, 50)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// node count is reported before saturation and rng
	_, err = builder.Hamiltonian(0, 55)
	require.ErrorIs(t, err, builder.ErrInvalidNodeCount)
	// saturation before rng
	_, err = builder.Hamiltonian(4, 55)
	require.ErrorIs(t, err, builder.ErrInvalidSaturation)

	// custom allowed set
	g, err := builder.Hamiltonian(6, 50, seed, builder.WithSaturations(50))
	require.NoError(t, err)
	assert.Equal(t, builder.HamiltonianTarget(6, 50), g.EdgeCount())
}

func TestHamiltonian_Guarantee(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 10; n++ {
		for _, sat := range builder.HamiltonianSaturations {
			for seed := int64(0); seed < 5; seed++ {
				name := fmt.Sprintf("n=%d/sat=%g/seed=%d", n, sat, seed)
				g, err := builder.Hamiltonian(n, sat, builder.WithSeed(seed))
				require.NoError(t, err, name)
				require.Equal(t, n, g.NodeCount(), name)
				require.Equal(t, builder.HamiltonianTarget(n, sat), g.EdgeCount(), name)
				requireSimple(t, g)

				if n < 3 {
					continue
				}
				c, ok := hamilton.FindCycle(g)
				require.True(t, ok, name)
				require.NoError(t, hamilton.Validate(g, c), name)
			}
		}
	}
}

func TestHamiltonian_SmallCases(t *testing.T) {
	t.Parallel()

	g, err := builder.Hamiltonian(1, 30, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.Hamiltonian(2, 70, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
}

func TestNonHamiltonian_Absence(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 11; n++ {
		for seed := int64(0); seed < 5; seed++ {
			name := fmt.Sprintf("n=%d/seed=%d", n, seed)
			g, err := builder.NonHamiltonian(n, 50, builder.WithSeed(seed))
			require.NoError(t, err, name)
			require.Equal(t, n, g.NodeCount(), name)
			require.Equal(t, builder.NonHamiltonianTarget(n, 50), g.EdgeCount(), name)
			requireSimple(t, g)

			isolated := 0
			for _, d := range g.Degrees() {
				if d == 0 {
					isolated++
				}
			}
			assert.GreaterOrEqual(t, isolated, 1, name)

			_, ok := hamilton.FindCycle(g)
			assert.False(t, ok, name)
		}
	}
}

func TestGenerators_SeedDeterminism(t *testing.T) {
	t.Parallel()

	a, err := builder.Hamiltonian(15, 70, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Hamiltonian(15, 70, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	c, err := builder.NonHamiltonian(15, 50, builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	d, err := builder.NonHamiltonian(15, 50, builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, c.Edges(), d.Edges())

	e, err := builder.Hamiltonian(15, 70, builder.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), e.Edges())
}

func TestGenerators_EulerConsistency(t *testing.T) {
	t.Parallel()

	// Euler results on generated graphs must always validate.
	for seed := int64(0); seed < 30; seed++ {
		g, err := builder.Hamiltonian(9, 70, builder.WithSeed(seed))
		require.NoError(t, err)
		if c, ok := euler.FindCycle(g); ok {
			require.NoError(t, euler.Validate(g, c))
			assert.Equal(t, g.EdgeCount()+1, len(c))
		}
	}
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DeriveSeed(1, 2), builder.DeriveSeed(1, 2))
	assert.NotEqual(t, builder.DeriveSeed(1, 2), builder.DeriveSeed(1, 3))
	assert.NotEqual(t, builder.DeriveSeed(1, 2), builder.DeriveSeed(2, 2))
}
