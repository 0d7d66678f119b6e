package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blas/blas1"
)

type globalFlags struct {
	backend string
	verbose bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "blasinfo",
		Short:         "Inspect the axpby/rot kernel dispatcher",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&gf.backend, "backend", "", "pin a kernel backend (default: best for this CPU)")
	cmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "log every dispatch decision to stderr")

	cmd.AddCommand(
		newBackendsCmd(),
		newPlanCmd(gf),
		newBenchCmd(gf),
	)
	return cmd
}

// engineOptions turns the global flags into engine options.
func (gf *globalFlags) engineOptions(cmd *cobra.Command, extra ...blas1.Option) []blas1.Option {
	opts := []blas1.Option{blas1.WithBackend(gf.backend)}
	if gf.verbose {
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, blas1.WithLogger(slog.New(handler)))
	}
	return append(opts, extra...)
}
