package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycles/bench"
)

type benchmarkFlags struct {
	nodes       []int
	nonHamNodes []int
	repeat      int
	format      string
	metricsFile string
}

func newBenchmarkCommand(a *app) *cobra.Command {
	f := benchmarkFlags{format: string(bench.FormatTable)}
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time both cycle searches over a grid of generated graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := bench.ParseFormat(f.format)
			if err != nil {
				return err
			}
			a.cfg.BenchNodes = f.nodes
			a.cfg.BenchNonHamiltonianNodes = f.nonHamNodes
			a.cfg.BenchRepeat = f.repeat
			a.cfg.MetricsFile = f.metricsFile
			if err = a.cfg.Validate(); err != nil {
				return err
			}

			runner, err := bench.NewRunner(a.cfg.Bench(), bench.WithLogger(a.log))
			if err != nil {
				return err
			}
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err = report.Write(out(cmd), format); err != nil {
				return err
			}
			if a.cfg.MetricsFile != "" {
				if err = runner.WriteMetrics(a.cfg.MetricsFile); err != nil {
					return err
				}
				a.log.WithField("path", a.cfg.MetricsFile).Info("metrics written")
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&f.nodes, "nodes", a.cfg.BenchNodes, "node counts for Hamiltonian graphs")
	cmd.Flags().IntSliceVar(&f.nonHamNodes, "non-hamilton-nodes", a.cfg.BenchNonHamiltonianNodes, "node counts for non-Hamiltonian graphs")
	cmd.Flags().IntVarP(&f.repeat, "repeat", "r", a.cfg.BenchRepeat, "graphs generated per cell")
	cmd.Flags().DurationVar(&a.cfg.BenchTimeout, "timeout", a.cfg.BenchTimeout, "bound on every Hamiltonian search")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", a.cfg.MetricsFile, "write Prometheus metrics to this file")
	cmd.Flags().StringVarP(&f.format, "format", "o", f.format, "report format: table, yaml or json")
	return cmd
}
