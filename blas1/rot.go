package blas1

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-blas/view"
)

// Rot applies the plane rotation (c, s) in place:
// x[i], y[i] = c*x[i] + s*y[i], c*y[i] - s*x[i].
func (e *Engine[T]) Rot(ctx context.Context, x, y view.Vector[T], c, s T) error {
	p, err := e.PlanRot(x, y)
	if err != nil {
		return err
	}
	ctx = nonNil(ctx)
	return e.run(ctx, p, func() error {
		return e.rotVector(ctx, p, x, y, c, s)
	})
}

// PlanRot validates the operands and returns the plan Rot would run. The
// coefficients are not classified; every rotation uses the same kernel.
func (e *Engine[T]) PlanRot(x, y view.Vector[T]) (Plan, error) {
	if err := checkVectors(x, y); err != nil {
		return Plan{}, fmt.Errorf("blas1: rot: %w", err)
	}
	return e.planVector("rot", TagGeneral, TagGeneral, x, y), nil
}

func (e *Engine[T]) rotVector(ctx context.Context, p Plan, x, y view.Vector[T], c, s T) error {
	if p.Path == PathVector {
		xs, ys := x.Slice(), y.Slice()
		return e.cfg.Space.ParallelFor(ctx, len(xs), func(lo, hi int) {
			e.set.Rot(xs[lo:hi], ys[lo:hi], c, s)
		})
	}

	return e.cfg.Space.ParallelFor(ctx, x.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			xi, yi := &x.Data[i*x.Inc], &y.Data[i*y.Inc]
			*xi, *yi = e.set.RotElem(*xi, *yi, c, s)
		}
	})
}

// Rotg constructs the Givens rotation that zeroes b:
//
//	[ c  s] [a]   [r]
//	[-s  c] [b] = [0]
//
// z encodes the rotation for later reconstruction: s when |a| > |b|, 1/c
// when c != 0, 1 otherwise. The computation is scaled by |a|+|b| to avoid
// overflow.
func Rotg[T view.Scalar](a, b T) (c, s, r, z T) {
	absA, absB := abs(a), abs(b)
	roe := b
	if absA > absB {
		roe = a
	}

	scale := absA + absB
	if scale == 0 {
		return 1, 0, 0, 0
	}

	as, bs := float64(a/scale), float64(b/scale)
	r = scale * T(math.Sqrt(as*as+bs*bs))
	if roe < 0 {
		r = -r
	}
	c, s = a/r, b/r

	switch {
	case absA > absB:
		z = s
	case c != 0:
		z = 1 / c
	default:
		z = 1
	}
	return c, s, r, z
}

func abs[T view.Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
