package blas1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-blas/blas1"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
	"github.com/cwbudde/algo-blas/view"
)

// backends lists every registered backend, highest priority first.
var backends = registeredBackends()

func registeredBackends() []string {
	var names []string
	for _, e := range registry.Global.ListEntries() {
		names = append(names, e.Name)
	}
	return names
}

func tolerance[T view.Scalar]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 1e-5
	}
	return 1e-12
}

func newEngine[T view.Scalar](t *testing.T, backend string, opts ...blas1.Option) *blas1.Engine[T] {
	t.Helper()
	eng, err := blas1.New[T](append([]blas1.Option{blas1.WithBackend(backend)}, opts...)...)
	require.NoError(t, err)
	require.Equal(t, backend, eng.Backend())
	return eng
}

// axpbyRef applies BLAS semantics: a zero coefficient drops its term.
func axpbyRef[T view.Scalar](a, x, b, y T) T {
	var v T
	if a != 0 {
		v += a * x
	}
	if b != 0 {
		v += b * y
	}
	return v
}

// strided spreads values over a backing slice with the given increment. The
// gaps hold sentinel values that no kernel may touch.
func strided[T view.Scalar](t *testing.T, values []T, inc int) view.Vector[T] {
	t.Helper()
	data := make([]T, max(len(values)*inc, 1))
	for i := range data {
		data[i] = -999
	}
	for i, v := range values {
		data[i*inc] = v
	}
	v, err := view.StridedVector(data, len(values), inc)
	require.NoError(t, err)
	return v
}

// Matrix storage kinds exercised by the multivector tests.
const (
	kindLeft       = "left"
	kindLeftPadded = "left-padded"
	kindRight      = "right"
	kindStrided    = "strided"
)

var matrixKinds = []string{kindLeft, kindLeftPadded, kindRight, kindStrided}

// matrixFrom stores the row-major values (rows x cols) in the given kind of
// storage.
func matrixFrom[T view.Scalar](t *testing.T, kind string, values []T, rows, cols int) view.Matrix[T] {
	t.Helper()
	require.Len(t, values, rows*cols)

	var (
		m   view.Matrix[T]
		err error
	)
	switch kind {
	case kindLeft:
		m, err = view.MatrixOf(make([]T, rows*cols), rows, cols, view.LayoutLeft)
	case kindRight:
		m, err = view.MatrixOf(make([]T, rows*cols), rows, cols, view.LayoutRight)
	case kindLeftPadded:
		ld := rows + 3
		m, err = view.StridedMatrix(make([]T, max(ld*cols, 1)), rows, cols, 1, ld)
	case kindStrided:
		m, err = view.StridedMatrix(make([]T, max(2*rows*cols, 1)), rows, cols, 2, 2*rows)
	default:
		t.Fatalf("unknown matrix kind %q", kind)
	}
	require.NoError(t, err)

	for i := range rows {
		for j := range cols {
			m.Set(i, j, values[i*cols+j])
		}
	}
	return m
}

// logical reads a matrix back in row-major order.
func logical[T view.Scalar](m view.Matrix[T]) []T {
	out := make([]T, 0, m.Rows*m.Cols)
	for i := range m.Rows {
		for j := range m.Cols {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
