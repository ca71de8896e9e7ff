package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/hamilton"
)

func TestValidate(t *testing.T) {
	g := graphOf(t, 4, complete(4)...)
	sq := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	tests := []struct {
		name string
		g    *core.Graph
		c    core.Cycle
		want error
	}{
		{"valid", g, core.Cycle{0, 2, 1, 3, 0}, nil},
		{"rotation", sq, core.Cycle{2, 3, 0, 1, 2}, nil},
		{"too short", g, core.Cycle{0, 1, 2, 0}, hamilton.ErrWrongLength},
		{"open", g, core.Cycle{0, 1, 2, 3, 1}, hamilton.ErrNotClosed},
		{"repeat", g, core.Cycle{0, 1, 0, 3, 0}, hamilton.ErrRepeatedNode},
		{"out of range", g, core.Cycle{0, 1, 9, 3, 0}, hamilton.ErrNodeOutOfRange},
		{"non edge", sq, core.Cycle{0, 2, 1, 3, 0}, hamilton.ErrUnknownEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := hamilton.Validate(tc.g, tc.c)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
