package blas1

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-blas/view"
)

// Axpby computes r[i] = a*x[i] + b*y[i]. r may be x or y. A zero
// coefficient drops its operand entirely.
func (e *Engine[T]) Axpby(ctx context.Context, r view.Vector[T], a T, x view.Vector[T], b T, y view.Vector[T]) error {
	p, err := e.PlanAxpby(r, a, x, b, y)
	if err != nil {
		return err
	}
	ctx = nonNil(ctx)
	return e.run(ctx, p, func() error {
		return e.axpbyVector(ctx, p, r, a, x, b, y)
	})
}

// Axpy computes y = a*x + y.
func (e *Engine[T]) Axpy(ctx context.Context, a T, x, y view.Vector[T]) error {
	return e.Axpby(ctx, y, a, x, 1, y)
}

// PlanAxpby validates the operands and returns the plan Axpby would run.
func (e *Engine[T]) PlanAxpby(r view.Vector[T], a T, x view.Vector[T], b T, y view.Vector[T]) (Plan, error) {
	if err := checkVectors(r, x, y); err != nil {
		return Plan{}, fmt.Errorf("blas1: axpby: %w", err)
	}
	return e.planVector("axpby", Classify(a), Classify(b), r, x, y), nil
}

func (e *Engine[T]) axpbyVector(ctx context.Context, p Plan, r view.Vector[T], a T, x view.Vector[T], b T, y view.Vector[T]) error {
	contig, elem := e.set.Select(p.A, p.B)

	if p.Path == PathVector {
		rs, xs, ys := r.Slice(), x.Slice(), y.Slice()
		return e.cfg.Space.ParallelFor(ctx, len(rs), func(lo, hi int) {
			contig(rs[lo:hi], xs[lo:hi], ys[lo:hi], a, b)
		})
	}

	return e.cfg.Space.ParallelFor(ctx, r.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			r.Data[i*r.Inc] = elem(x.Data[i*x.Inc], y.Data[i*y.Inc], a, b)
		}
	})
}

func checkVectors[T view.Scalar](vs ...view.Vector[T]) error {
	for _, v := range vs {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	n := vs[0].Len()
	for _, v := range vs[1:] {
		if v.Len() != n {
			return fmt.Errorf("%w: lengths %d and %d", ErrDimension, n, v.Len())
		}
	}
	return nil
}
