package generic

import (
	"github.com/cwbudde/algo-blas/internal/kernels"
	"github.com/cwbudde/algo-blas/view"
)

// rot applies x' = c*x + s*y, y' = c*y - s*x in place.
func rot[T view.Scalar](x, y []T, c, s T) {
	kernels.CheckLen(x, y)
	for i := range x {
		xi, yi := x[i], y[i]
		x[i] = c*xi + s*yi
		y[i] = c*yi - s*xi
	}
}

func rotElem[T view.Scalar](x, y, c, s T) (T, T) {
	return c*x + s*y, c*y - s*x
}
