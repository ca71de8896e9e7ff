package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/euler"
)

func TestValidate(t *testing.T) {
	square := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	tests := []struct {
		name string
		c    core.Cycle
		want error
	}{
		{"valid", core.Cycle{0, 1, 2, 3, 0}, nil},
		{"valid reversed", core.Cycle{0, 3, 2, 1, 0}, nil},
		{"open", core.Cycle{0, 1, 2, 3}, euler.ErrNotClosed},
		{"non edge", core.Cycle{0, 2, 3, 0}, euler.ErrUnknownEdge},
		{"reused", core.Cycle{0, 1, 0, 1, 2, 3, 0}, euler.ErrEdgeReused},
		{"short", core.Cycle{0, 1, 2, 1, 0}, euler.ErrEdgeReused},
		{"trivial on edges", core.Cycle{0}, euler.ErrEdgesUnused},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := euler.Validate(square, tc.c)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_Unused(t *testing.T) {
	g := graphOf(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4})
	assert.ErrorIs(t, euler.Validate(g, core.Cycle{0, 1, 2, 0}), euler.ErrEdgesUnused)
}

func TestValidate_TrivialOnEdgeless(t *testing.T) {
	assert.NoError(t, euler.Validate(graphOf(t, 3), core.Cycle{0}))
	assert.NoError(t, euler.Validate(graphOf(t, 0), core.Cycle{}))
}
