package main

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blas/blas1"
	"github.com/cwbudde/algo-blas/exec"
	"github.com/cwbudde/algo-blas/view"
)

type benchFlags struct {
	op       string
	sizes    []int
	workers  []int
	duration time.Duration
}

func newBenchCmd(gf *globalFlags) *cobra.Command {
	bf := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time axpby or rot over vector sizes and execution spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, gf, bf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&bf.op, "op", "axpby", "operation: axpby or rot")
	f.IntSliceVar(&bf.sizes, "sizes", []int{1 << 10, 1 << 14, 1 << 18}, "vector lengths")
	f.IntSliceVar(&bf.workers, "workers", []int{0}, "worker counts; 0 runs serially")
	f.DurationVar(&bf.duration, "duration", 200*time.Millisecond, "minimum time per measurement")
	return cmd
}

func runBench(cmd *cobra.Command, gf *globalFlags, bf *benchFlags) error {
	if bf.op != "axpby" && bf.op != "rot" {
		return fmt.Errorf("unknown op %q", bf.op)
	}
	sizes := lo.Filter(lo.Uniq(bf.sizes), func(n int, _ int) bool { return n > 0 })
	slices.Sort(sizes)
	if len(sizes) == 0 {
		return fmt.Errorf("no positive sizes")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "Op\tSize\tSpace\tBackend\tns/op\tGB/s\t"); err != nil {
		return err
	}

	for _, workers := range lo.Uniq(bf.workers) {
		space := lo.TernaryF[exec.Space](workers <= 0,
			func() exec.Space { return exec.Serial{} },
			func() exec.Space { return exec.NewThreads(exec.WithWorkers(workers), exec.WithMinChunk(1024)) },
		)
		eng, err := blas1.New[float64](gf.engineOptions(cmd, blas1.WithSpace(space))...)
		if err != nil {
			return err
		}

		for _, n := range sizes {
			nsPerOp, err := measure(ctx, eng, bf.op, n, bf.duration)
			if err != nil {
				return err
			}
			// axpby streams three vectors, rot four (two loads, two stores).
			bytes := float64(n*8) * lo.Ternary(bf.op == "rot", 4.0, 3.0)
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.1f\t%.2f\t\n",
				bf.op, n, spaceLabel(space), eng.Backend(),
				nsPerOp, bytes/nsPerOp,
			); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

func spaceLabel(space exec.Space) string {
	if space.Concurrency() == 1 {
		return space.Name()
	}
	return fmt.Sprintf("%s(%d)", space.Name(), space.Concurrency())
}

// measure runs the operation until minDur has elapsed and returns the mean
// nanoseconds per call.
func measure(ctx context.Context, eng *blas1.Engine[float64], op string, n int, minDur time.Duration) (float64, error) {
	x := view.VectorOf(lo.Times(n, func(i int) float64 { return float64(i%17) * 0.25 }))
	y := view.VectorOf(lo.Times(n, func(i int) float64 { return float64(i%13) * -0.5 }))
	c, s, _, _ := blas1.Rotg(3.0, 4.0)

	run := func() error {
		if op == "rot" {
			return eng.Rot(ctx, x, y, c, s)
		}
		return eng.Axpby(ctx, y, 1.5, x, -0.5, y)
	}

	if err := run(); err != nil {
		return 0, err
	}

	iters := 0
	start := time.Now()
	for time.Since(start) < minDur || iters == 0 {
		if err := run(); err != nil {
			return 0, err
		}
		iters++
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}
