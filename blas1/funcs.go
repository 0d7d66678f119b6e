package blas1

import (
	"context"

	"github.com/cwbudde/algo-blas/view"
)

// The functions below run on the shared serial engine for T. Build an
// Engine with New for a different space, backend or logger.

// Axpby computes r = a*x + b*y with the default engine.
func Axpby[T view.Scalar](ctx context.Context, r view.Vector[T], a T, x view.Vector[T], b T, y view.Vector[T]) error {
	e, err := Default[T]()
	if err != nil {
		return err
	}
	return e.Axpby(ctx, r, a, x, b, y)
}

// Axpy computes y = a*x + y with the default engine.
func Axpy[T view.Scalar](ctx context.Context, a T, x, y view.Vector[T]) error {
	e, err := Default[T]()
	if err != nil {
		return err
	}
	return e.Axpy(ctx, a, x, y)
}

// AxpbyMV computes r = a*x + b*y column by column with the default engine.
func AxpbyMV[T view.Scalar](ctx context.Context, r view.Matrix[T], a T, x view.Matrix[T], b T, y view.Matrix[T]) error {
	e, err := Default[T]()
	if err != nil {
		return err
	}
	return e.AxpbyMV(ctx, r, a, x, b, y)
}

// AxpbyMVCoeffs computes r(i,j) = av[j]*x(i,j) + bv[j]*y(i,j) with the
// default engine.
func AxpbyMVCoeffs[T view.Scalar](ctx context.Context, r view.Matrix[T], av []T, x view.Matrix[T], bv []T, y view.Matrix[T]) error {
	e, err := Default[T]()
	if err != nil {
		return err
	}
	return e.AxpbyMVCoeffs(ctx, r, av, x, bv, y)
}

// Rot applies a plane rotation in place with the default engine.
func Rot[T view.Scalar](ctx context.Context, x, y view.Vector[T], c, s T) error {
	e, err := Default[T]()
	if err != nil {
		return err
	}
	return e.Rot(ctx, x, y, c, s)
}
