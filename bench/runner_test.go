package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/bench"
)

func smallConfig() bench.Config {
	return bench.Config{
		HamiltonianNodes:         []int{5, 7},
		NonHamiltonianNodes:      []int{6},
		HamiltonianSaturations:   []float64{30, 70},
		NonHamiltonianSaturation: 50,
		Repeat:                   3,
		Timeout:                  10 * time.Second,
		Seed:                     17,
	}
}

func TestNewRunner_Validation(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Repeat = 0
	_, err := bench.NewRunner(cfg)
	require.ErrorIs(t, err, bench.ErrInvalidRepeat)

	cfg = smallConfig()
	cfg.Timeout = 0
	_, err = bench.NewRunner(cfg)
	require.ErrorIs(t, err, bench.ErrInvalidTimeout)

	cfg = smallConfig()
	cfg.HamiltonianNodes = nil
	cfg.NonHamiltonianNodes = nil
	_, err = bench.NewRunner(cfg)
	require.ErrorIs(t, err, bench.ErrEmptyGrid)

	assert.Panics(t, func() { bench.WithRegistry(nil) })
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)

	r, err := bench.NewRunner(smallConfig(), bench.WithLogger(logger))
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 5) // 2 nodes x 2 sats + 1

	for _, row := range rep.Rows {
		assert.Equal(t, 3, row.Runs, row.Graph)
		assert.Zero(t, row.HamiltonTimeouts)
		assert.Zero(t, row.Mismatches)
		assert.False(t, row.Inconclusive())
		switch row.Graph {
		case bench.KindHamiltonian:
			assert.Equal(t, 3, row.HamiltonFound)
		case bench.KindNonHamiltonian:
			assert.Equal(t, 3, row.HamiltonAbsent)
			assert.Equal(t, 5, row.Edges) // floor(0.5 * C(5,2))
		}
	}
	assert.Equal(t, bench.KindHamiltonian, rep.Rows[0].Graph)
	assert.Equal(t, 5, rep.Rows[0].Nodes)
	assert.Equal(t, 30.0, rep.Rows[0].Saturation)
	assert.Equal(t, 5, rep.Rows[0].Edges) // max(n, floor(0.3*10))
	assert.Equal(t, 7, rep.Rows[1].Edges) // floor(0.7*10)

	assert.Contains(t, logs.String(), "benchmark finished")
	assert.Contains(t, logs.String(), "module=bench")
}

func TestRunner_Deterministic(t *testing.T) {
	t.Parallel()

	run := func() *bench.Report {
		r, err := bench.NewRunner(smallConfig())
		require.NoError(t, err)
		rep, err := r.Run(context.Background())
		require.NoError(t, err)
		return rep
	}
	a, b := run(), run()
	require.Len(t, b.Rows, len(a.Rows))
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].Edges, b.Rows[i].Edges)
		assert.Equal(t, a.Rows[i].EulerFound, b.Rows[i].EulerFound)
		assert.Equal(t, a.Rows[i].MeanExpansions, b.Rows[i].MeanExpansions)
	}
}

func TestRunner_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r, err := bench.NewRunner(smallConfig(), bench.WithRegistry(reg))
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	// one duration series per (algorithm, graph, saturation): 2 x (2 + 1)
	assert.Equal(t, 6, testutil.CollectAndCount(reg, "cycles_bench_duration_seconds"))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "cycles_bench_duration_seconds")
	assert.Contains(t, names, "cycles_bench_outcomes_total")
	assert.Contains(t, names, "cycles_bench_graph_edges")

	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, r.WriteMetrics(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `cycles_bench_outcomes_total{algorithm="hamilton",graph="hamiltonian",outcome="found"} 12`)
	assert.Contains(t, string(raw), `cycles_bench_outcomes_total{algorithm="hamilton",graph="non-hamiltonian",outcome="absent"} 3`)
}

func TestRunner_CancelledContext(t *testing.T) {
	t.Parallel()

	r, err := bench.NewRunner(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Empty(t, rep.Rows)
}
