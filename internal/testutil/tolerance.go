package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-blas/view"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or any
// element pair differs by more than eps relative to the larger magnitude
// (absolute below 1). NaNs compare equal to NaNs.
func RequireSliceNearlyEqual[T view.Scalar](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateNaNs(),
		cmpopts.EquateApprox(eps, eps),
	}
	if diff := cmp.Diff(toFloat64(want), toFloat64(got), opts); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
}

// RequireSliceEqual fails t unless got and want are bit-for-bit equal
// (NaNs equal).
func RequireSliceEqual[T view.Scalar](t *testing.T, got, want []T) {
	t.Helper()
	if diff := cmp.Diff(toFloat64(want), toFloat64(got), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T view.Scalar](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff[T view.Scalar](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func toFloat64[T view.Scalar](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
