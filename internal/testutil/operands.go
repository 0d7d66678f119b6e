// Package testutil provides deterministic operands and tolerance checks for
// kernel tests.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-blas/view"
)

// DeterministicNoise returns n values in [-amplitude, amplitude) from a
// fixed seed.
func DeterministicNoise[T view.Scalar](seed int64, amplitude float64, n int) []T {
	out := make([]T, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Ramp returns start, start+step, ... with n elements.
func Ramp[T view.Scalar](start, step T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)*step
	}
	return out
}

// Fill returns n copies of v.
func Fill[T view.Scalar](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Coefficients is the coefficient set kernel tests sweep: every literal
// the classifier special-cases plus two general values.
func Coefficients[T view.Scalar]() []T {
	return []T{0, -1, 1, 2.5, -0.75}
}
