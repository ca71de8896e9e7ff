// Package cli wires the cycles command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycles/internal/config"
)

// app carries shared state between the commands of one invocation.
type app struct {
	cfg *config.Config
	log *logrus.Logger

	seed      int64
	logLevel  string
	logFormat string
}

// Execute loads configuration, runs the command line and returns the
// process exit code.
func Execute(ctx context.Context, version string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	root := NewRootCommand(ctx, cfg, version)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree around cfg. Flags override cfg.
func NewRootCommand(ctx context.Context, cfg *config.Config, version string) *cobra.Command {
	a := &app{cfg: cfg}
	root := &cobra.Command{
		Use:           "cycles",
		Short:         "Generate graphs and search them for Eulerian and Hamiltonian cycles",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetContext(ctx)
	root.PersistentFlags().Int64Var(&a.seed, "seed", cfg.Seed, "random seed (0 = time based)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", cfg.LogFormat, "log format (text or json)")

	root.AddCommand(
		newHamiltonCommand(a),
		newNonHamiltonCommand(a),
		newBenchmarkCommand(a),
	)
	return root
}

// setup applies persistent flags to the config and builds the logger.
// Logs go to stderr so that reports on stdout stay machine readable.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg.Seed = a.seed
	a.cfg.LogLevel = a.logLevel
	a.cfg.LogFormat = a.logFormat
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = a.cfg.Logger()
	a.log.SetOutput(cmd.ErrOrStderr())
	return nil
}

// out is the command's stdout.
func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
