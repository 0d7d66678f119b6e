package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blas/blas1"
	"github.com/cwbudde/algo-blas/view"
)

type planFlags struct {
	rows, cols  int
	layout      string
	alpha, beta float64
	coeffs      bool
	unrollLimit int
}

func newPlanCmd(gf *globalFlags) *cobra.Command {
	pf := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the dispatch plan for an axpby over a rows x cols multivector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := blas1.New[float64](gf.engineOptions(cmd, blas1.WithUnrollLimit(pf.unrollLimit))...)
			if err != nil {
				return err
			}
			p, err := pf.plan(eng)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&pf.rows, "rows", 1024, "number of rows")
	f.IntVar(&pf.cols, "cols", 1, "number of columns")
	f.StringVar(&pf.layout, "layout", "left", "memory layout: left, right or stride")
	f.Float64Var(&pf.alpha, "alpha", 1, "coefficient of x")
	f.Float64Var(&pf.beta, "beta", 1, "coefficient of y")
	f.BoolVar(&pf.coeffs, "coeffs", false, "use per-column coefficient vectors filled with alpha and beta")
	f.IntVar(&pf.unrollLimit, "unroll-limit", blas1.MaxUnroll, "widest column count for the fixed-width path")
	return cmd
}

func (pf *planFlags) plan(eng *blas1.Engine[float64]) (blas1.Plan, error) {
	layout, ok := view.ParseLayout(pf.layout)
	if !ok {
		return blas1.Plan{}, fmt.Errorf("unknown layout %q", pf.layout)
	}
	if pf.rows < 0 || pf.cols < 0 {
		return blas1.Plan{}, fmt.Errorf("negative shape %dx%d", pf.rows, pf.cols)
	}

	m, err := operand(pf.rows, pf.cols, layout)
	if err != nil {
		return blas1.Plan{}, err
	}
	if !pf.coeffs {
		return eng.PlanAxpbyMV(m, pf.alpha, m, pf.beta, m)
	}
	av := lo.Times(pf.cols, func(int) float64 { return pf.alpha })
	bv := lo.Times(pf.cols, func(int) float64 { return pf.beta })
	return eng.PlanAxpbyMVCoeffs(m, av, m, bv, m)
}

// operand allocates a zero matrix. LayoutStride uses every other row of a
// column-major block.
func operand(rows, cols int, layout view.Layout) (view.Matrix[float64], error) {
	if layout != view.LayoutStride {
		return view.NewMatrix[float64](rows, cols, layout), nil
	}
	return view.StridedMatrix(make([]float64, max(2*rows*cols, 1)), rows, cols, 2, 2*rows)
}
