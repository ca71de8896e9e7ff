package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycles/builder"
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/euler"
	"github.com/katalvlaran/cycles/hamilton"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRegistry records metrics into reg instead of a fresh private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	if reg == nil {
		panic("bench: WithRegistry(nil)")
	}
	return func(r *Runner) {
		r.registry = reg
	}
}

// Runner executes a benchmark grid. It is not safe for concurrent use.
type Runner struct {
	cfg      Config
	log      logrus.FieldLogger
	registry *prometheus.Registry
	metrics  *metrics
}

// cell is one (kind, n, saturation) coordinate of the grid.
type cell struct {
	kind   string
	kindID uint64
	satID  uint64
	nodes  int
	sat    float64
}

// NewRunner validates cfg and prepares the metric collectors.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	discard := logrus.New()
	discard.Out = io.Discard
	r := &Runner{cfg: cfg, log: discard}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}
	r.log = r.log.WithField("module", "bench")
	r.metrics = newMetrics(r.registry)

	return r, nil
}

// Gatherer exposes the runner's registry.
func (r *Runner) Gatherer() prometheus.Gatherer { return r.registry }

// WriteMetrics writes the registry to path in the text exposition format.
func (r *Runner) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteMetrics: %w", err)
	}
	return nil
}

// Run benchmarks every cell in order: Hamiltonian cells (nodes × saturations)
// first, then non-Hamiltonian cells. When ctx ends the rows completed so far
// are returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	cells := r.cells()
	rep := &Report{Seed: r.cfg.Seed, Timeout: r.cfg.Timeout, Rows: make([]Row, 0, len(cells))}
	r.log.WithFields(logrus.Fields{
		"cells":   len(cells),
		"repeat":  r.cfg.Repeat,
		"timeout": r.cfg.Timeout,
		"seed":    r.cfg.Seed,
	}).Info("benchmark started")

	for _, c := range cells {
		row, err := r.runCell(ctx, c)
		if err != nil {
			return rep, err
		}
		rep.Rows = append(rep.Rows, row)
	}

	r.log.WithField("rows", len(rep.Rows)).Info("benchmark finished")
	return rep, nil
}

func (r *Runner) cells() []cell {
	out := make([]cell, 0, len(r.cfg.HamiltonianNodes)*len(r.cfg.HamiltonianSaturations)+len(r.cfg.NonHamiltonianNodes))
	for _, n := range r.cfg.HamiltonianNodes {
		for i, sat := range r.cfg.HamiltonianSaturations {
			out = append(out, cell{kind: KindHamiltonian, kindID: 0, satID: uint64(i), nodes: n, sat: sat})
		}
	}
	for _, n := range r.cfg.NonHamiltonianNodes {
		out = append(out, cell{kind: KindNonHamiltonian, kindID: 1, nodes: n, sat: r.cfg.NonHamiltonianSaturation})
	}
	return out
}

// stream packs a cell coordinate and repetition into a DeriveSeed stream id.
func (c cell) stream(rep int) uint64 {
	return c.kindID<<60 | c.satID<<52 | uint64(c.nodes)<<24 | uint64(rep)
}

// generate builds the graph of cell c for one repetition.
func (r *Runner) generate(c cell, rep int) (*core.Graph, error) {
	seed := builder.WithSeed(builder.DeriveSeed(r.cfg.Seed, c.stream(rep)))
	if c.kind == KindHamiltonian {
		return builder.Hamiltonian(c.nodes, c.sat, seed, builder.WithSaturations(c.sat))
	}
	return builder.NonHamiltonian(c.nodes, c.sat, seed, builder.WithSaturations(c.sat))
}

// expectation reports the Hamiltonian outcome guaranteed by the generator,
// and whether there is one. Below three nodes no cycle is reported by the
// finder regardless of kind.
func expectation(kind string, n int) (want bool, defined bool) {
	if kind == KindNonHamiltonian {
		return false, true
	}
	return true, n >= 3
}

func (r *Runner) runCell(ctx context.Context, c cell) (Row, error) {
	row := Row{Graph: c.kind, Nodes: c.nodes, Saturation: c.sat}
	log := r.log.WithFields(logrus.Fields{"graph": c.kind, "nodes": c.nodes, "saturation": c.sat})
	sat := satLabel(c.sat)

	var eulerTotal, hamTotal time.Duration
	var expansions, conclusive int
	for rep := 0; rep < r.cfg.Repeat; rep++ {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		g, err := r.generate(c, rep)
		if err != nil {
			return row, fmt.Errorf("Run: %s n=%d sat=%g: %w", c.kind, c.nodes, c.sat, err)
		}
		row.Edges = g.EdgeCount()
		row.Runs++
		r.metrics.edges.WithLabelValues(c.kind, strconv.Itoa(c.nodes), sat).Set(float64(g.EdgeCount()))

		start := time.Now()
		_, ok := euler.FindCycle(g)
		elapsed := time.Since(start)
		eulerTotal += elapsed
		r.observe(AlgorithmEuler, c.kind, sat, elapsed, outcomeOf(ok))
		if ok {
			row.EulerFound++
		}

		res, elapsed, err := r.searchHamilton(ctx, g)
		if err != nil {
			if ctx.Err() != nil {
				return row, ctx.Err()
			}
			if !errors.Is(err, context.DeadlineExceeded) {
				return row, fmt.Errorf("Run: %w", err)
			}
			row.HamiltonTimeouts++
			r.observe(AlgorithmHamilton, c.kind, sat, elapsed, OutcomeTimeout)
			log.WithField("run", rep).Warn("hamiltonian search timed out")
			continue
		}
		conclusive++
		hamTotal += elapsed
		expansions += res.Expansions
		r.observe(AlgorithmHamilton, c.kind, sat, elapsed, outcomeOf(res.Found))
		if res.Found {
			row.HamiltonFound++
		} else {
			row.HamiltonAbsent++
		}
		if want, defined := expectation(c.kind, c.nodes); defined && want != res.Found {
			row.Mismatches++
			log.WithFields(logrus.Fields{"run": rep, "found": res.Found}).Warn("outcome contradicts generator")
		}
	}

	row.EulerMean = eulerTotal / time.Duration(row.Runs)
	if conclusive > 0 {
		row.HamiltonMean = hamTotal / time.Duration(conclusive)
		row.MeanExpansions = int(math.Round(float64(expansions) / float64(conclusive)))
	}
	log.WithFields(logrus.Fields{
		"edges":         row.Edges,
		"euler_mean":    row.EulerMean,
		"hamilton_mean": row.HamiltonMean,
		"timeouts":      row.HamiltonTimeouts,
	}).Debug("cell done")

	return row, nil
}

func (r *Runner) searchHamilton(ctx context.Context, g *core.Graph) (hamilton.Result, time.Duration, error) {
	cctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	start := time.Now()
	res, err := hamilton.FindCycleContext(cctx, g)
	return res, time.Since(start), err
}

func (r *Runner) observe(algorithm, graph, sat string, d time.Duration, outcome string) {
	r.metrics.duration.WithLabelValues(algorithm, graph, sat).Observe(d.Seconds())
	r.metrics.outcomes.WithLabelValues(algorithm, graph, outcome).Inc()
}

func outcomeOf(found bool) string {
	if found {
		return OutcomeFound
	}
	return OutcomeAbsent
}
