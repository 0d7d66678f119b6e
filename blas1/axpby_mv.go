package blas1

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blas/internal/kernels"
	"github.com/cwbudde/algo-blas/view"
)

// unrollBlockRows is the row block the fixed-width path sweeps across all
// columns before moving on.
const unrollBlockRows = 512

// coefs is one coefficient operand: a per-column vector, or a scalar shared
// by every column when vec is nil.
type coefs[T view.Scalar] struct {
	scalar T
	vec    []T
}

func (c coefs[T]) at(j int) T {
	if c.vec != nil {
		return c.vec[j]
	}
	return c.scalar
}

// AxpbyMV computes r(i,j) = a*x(i,j) + b*y(i,j) over every column.
func (e *Engine[T]) AxpbyMV(ctx context.Context, r view.Matrix[T], a T, x view.Matrix[T], b T, y view.Matrix[T]) error {
	p, err := e.PlanAxpbyMV(r, a, x, b, y)
	if err != nil {
		return err
	}
	ctx = nonNil(ctx)
	return e.run(ctx, p, func() error {
		return e.axpbyMatrix(ctx, p, r, coefs[T]{scalar: a}, x, coefs[T]{scalar: b}, y)
	})
}

// AxpyMV computes y = a*x + y over every column.
func (e *Engine[T]) AxpyMV(ctx context.Context, a T, x, y view.Matrix[T]) error {
	return e.AxpbyMV(ctx, y, a, x, 1, y)
}

// AxpbyMVCoeffs computes r(i,j) = av[j]*x(i,j) + bv[j]*y(i,j). An empty av
// or bv means that coefficient is zero and its operand is not read. Zero
// entries inside a non-empty vector still multiply.
func (e *Engine[T]) AxpbyMVCoeffs(ctx context.Context, r view.Matrix[T], av []T, x view.Matrix[T], bv []T, y view.Matrix[T]) error {
	p, err := e.PlanAxpbyMVCoeffs(r, av, x, bv, y)
	if err != nil {
		return err
	}
	ctx = nonNil(ctx)
	return e.run(ctx, p, func() error {
		return e.axpbyMatrix(ctx, p, r, vectorCoefs(av), x, vectorCoefs(bv), y)
	})
}

// PlanAxpbyMV validates the operands and returns the plan AxpbyMV would run.
func (e *Engine[T]) PlanAxpbyMV(r view.Matrix[T], a T, x view.Matrix[T], b T, y view.Matrix[T]) (Plan, error) {
	if err := checkMatrices(r, x, y); err != nil {
		return Plan{}, fmt.Errorf("blas1: axpby: %w", err)
	}
	return e.planMatrix("axpby", Classify(a), Classify(b), r, x, y), nil
}

// PlanAxpbyMVCoeffs validates the operands and returns the plan
// AxpbyMVCoeffs would run.
func (e *Engine[T]) PlanAxpbyMVCoeffs(r view.Matrix[T], av []T, x view.Matrix[T], bv []T, y view.Matrix[T]) (Plan, error) {
	if err := checkMatrices(r, x, y); err != nil {
		return Plan{}, fmt.Errorf("blas1: axpby: %w", err)
	}
	for _, c := range [][]T{av, bv} {
		if len(c) != 0 && len(c) != r.Cols {
			return Plan{}, fmt.Errorf("blas1: axpby: %w: %d coefficients for %d columns",
				ErrCoefficients, len(c), r.Cols)
		}
	}
	return e.planMatrix("axpby", kernels.ClassifyVector(av), kernels.ClassifyVector(bv), r, x, y), nil
}

func vectorCoefs[T view.Scalar](v []T) coefs[T] {
	if len(v) == 0 {
		return coefs[T]{}
	}
	return coefs[T]{vec: v}
}

func (e *Engine[T]) axpbyMatrix(ctx context.Context, p Plan, r view.Matrix[T], ca coefs[T], x view.Matrix[T], cb coefs[T], y view.Matrix[T]) error {
	switch p.Path {
	case PathVector, PathVectorStrided:
		return e.axpbyVector(ctx, p, r.Col(0), ca.at(0), x.Col(0), cb.at(0), y.Col(0))
	case PathUnrolled:
		return e.axpbyUnrolled(ctx, p, r, ca, x, cb, y)
	case PathGenericLeft:
		return e.axpbyLeft(ctx, p, r, ca, x, cb, y)
	case PathGenericRight:
		return e.axpbyRight(ctx, p, r, ca, x, cb, y)
	default:
		return e.axpbyStrided(ctx, p, r, ca, x, cb, y)
	}
}

// axpbyUnrolled handles column-major operands with at most MaxUnroll
// columns. Coefficients and column offsets live in fixed-size arrays, and
// each row block is finished across all columns before the next one.
func (e *Engine[T]) axpbyUnrolled(ctx context.Context, p Plan, r view.Matrix[T], ca coefs[T], x view.Matrix[T], cb coefs[T], y view.Matrix[T]) error {
	contig, _ := e.set.Select(p.A, p.B)
	ncols := p.Unroll

	var (
		aw, bw     [MaxUnroll]T
		ro, xo, yo [MaxUnroll]int
	)
	for j := range ncols {
		aw[j], bw[j] = ca.at(j), cb.at(j)
		ro[j], xo[j], yo[j] = j*r.ColStride, j*x.ColStride, j*y.ColStride
	}

	return e.cfg.Space.ParallelFor(ctx, p.Rows, func(lo, hi int) {
		for blo := lo; blo < hi; blo += unrollBlockRows {
			bhi := min(blo+unrollBlockRows, hi)
			for j := range ncols {
				contig(
					r.Data[ro[j]+blo:ro[j]+bhi],
					x.Data[xo[j]+blo:xo[j]+bhi],
					y.Data[yo[j]+blo:yo[j]+bhi],
					aw[j], bw[j],
				)
			}
		}
	})
}

// axpbyLeft handles column-major operands too wide for the fixed-width
// path: each column of the row range is swept in one call.
func (e *Engine[T]) axpbyLeft(ctx context.Context, p Plan, r view.Matrix[T], ca coefs[T], x view.Matrix[T], cb coefs[T], y view.Matrix[T]) error {
	contig, _ := e.set.Select(p.A, p.B)

	return e.cfg.Space.ParallelFor(ctx, p.Rows, func(lo, hi int) {
		for j := range p.Cols {
			ro, xo, yo := j*r.ColStride, j*x.ColStride, j*y.ColStride
			contig(r.Data[ro+lo:ro+hi], x.Data[xo+lo:xo+hi], y.Data[yo+lo:yo+hi], ca.at(j), cb.at(j))
		}
	})
}

// axpbyRight handles row-major operands one contiguous row at a time.
func (e *Engine[T]) axpbyRight(ctx context.Context, p Plan, r view.Matrix[T], ca coefs[T], x view.Matrix[T], cb coefs[T], y view.Matrix[T]) error {
	contig, elem := e.set.Select(p.A, p.B)
	ncols := p.Cols
	perColumn := p.A == TagVector || p.B == TagVector

	return e.cfg.Space.ParallelFor(ctx, p.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			rr := r.Data[i*r.RowStride : i*r.RowStride+ncols]
			xr := x.Data[i*x.RowStride : i*x.RowStride+ncols]
			yr := y.Data[i*y.RowStride : i*y.RowStride+ncols]

			if !perColumn {
				contig(rr, xr, yr, ca.scalar, cb.scalar)
				continue
			}
			if scaleRow(p, rr, ca, xr, cb, yr) {
				continue
			}
			for j := range ncols {
				rr[j] = elem(xr[j], yr[j], ca.at(j), cb.at(j))
			}
		}
	})
}

// scaleRow covers the single-operand coefficient-vector cells of a
// float64 row with algo-vecmath: r = av*x when b is zero, r = bv*y when a
// is zero. It reports whether it handled the row.
func scaleRow[T view.Scalar](p Plan, rr []T, ca coefs[T], xr []T, cb coefs[T], yr []T) bool {
	r64, ok := any(rr).([]float64)
	if !ok {
		return false
	}
	switch {
	case p.A == TagVector && p.B == TagZero:
		vecmath.MulBlock(r64, any(ca.vec).([]float64), any(xr).([]float64))
	case p.A == TagZero && p.B == TagVector:
		vecmath.MulBlock(r64, any(cb.vec).([]float64), any(yr).([]float64))
	default:
		return false
	}
	return true
}

// axpbyStrided handles arbitrary strides element by element.
func (e *Engine[T]) axpbyStrided(ctx context.Context, p Plan, r view.Matrix[T], ca coefs[T], x view.Matrix[T], cb coefs[T], y view.Matrix[T]) error {
	_, elem := e.set.Select(p.A, p.B)

	return e.cfg.Space.ParallelFor(ctx, p.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := range p.Cols {
				r.Data[i*r.RowStride+j*r.ColStride] = elem(
					x.Data[i*x.RowStride+j*x.ColStride],
					y.Data[i*y.RowStride+j*y.ColStride],
					ca.at(j), cb.at(j),
				)
			}
		}
	})
}

func checkMatrices[T view.Scalar](ms ...view.Matrix[T]) error {
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if !ms[0].SameShape(ms[1:]...) {
		return fmt.Errorf("%w: shapes %dx%d, %dx%d, %dx%d", ErrDimension,
			ms[0].Rows, ms[0].Cols, ms[1].Rows, ms[1].Cols, ms[2].Rows, ms[2].Cols)
	}
	return nil
}
