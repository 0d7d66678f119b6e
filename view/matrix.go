package view

import "fmt"

// Matrix is a rank-2 view: element (i, j) lives at Data[i*RowStride+j*ColStride].
// Column j is the j-th vector of a multivector.
type Matrix[T Scalar] struct {
	Data      []T
	Rows      int
	Cols      int
	RowStride int
	ColStride int
}

// NewMatrix allocates a zeroed rows x cols matrix in the given layout.
// LayoutStride allocates column-major storage.
func NewMatrix[T Scalar](rows, cols int, layout Layout) Matrix[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	m, _ := MatrixOf(make([]T, rows*cols), rows, cols, layout)
	return m
}

// MatrixOf wraps data as a packed rows x cols matrix without copying.
func MatrixOf[T Scalar](data []T, rows, cols int, layout Layout) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if len(data) < rows*cols {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d needs %d elements, have %d",
			ErrShape, rows, cols, rows*cols, len(data))
	}

	m := Matrix[T]{Data: data, Rows: rows, Cols: cols}
	switch layout {
	case LayoutRight:
		m.RowStride, m.ColStride = max(cols, 1), 1
	default:
		m.RowStride, m.ColStride = 1, max(rows, 1)
	}
	return m, nil
}

// StridedMatrix wraps data with explicit strides, e.g. a column-major block
// with leading dimension ld is StridedMatrix(data, rows, cols, 1, ld).
func StridedMatrix[T Scalar](data []T, rows, cols, rowStride, colStride int) (Matrix[T], error) {
	m := Matrix[T]{Data: data, Rows: rows, Cols: cols, RowStride: rowStride, ColStride: colStride}
	if err := m.Validate(); err != nil {
		return Matrix[T]{}, err
	}
	return m, nil
}

// Validate checks dimensions, strides and that Data covers every element.
func (m Matrix[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: %dx%d", ErrShape, m.Rows, m.Cols)
	}
	if (m.Rows > 1 && m.RowStride < 1) || (m.Cols > 1 && m.ColStride < 1) {
		return fmt.Errorf("%w: strides (%d, %d)", ErrStride, m.RowStride, m.ColStride)
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}
	last := (m.Rows-1)*m.RowStride + (m.Cols-1)*m.ColStride
	if last >= len(m.Data) {
		return fmt.Errorf("%w: matrix spans %d elements, data has %d", ErrShape, last+1, len(m.Data))
	}
	return nil
}

// Layout classifies the memory order. A matrix with a single column is
// reported as LayoutLeft when that column is contiguous.
func (m Matrix[T]) Layout() Layout {
	switch {
	case m.RowStride == 1 && (m.Cols <= 1 || m.ColStride >= m.Rows):
		return LayoutLeft
	case m.ColStride == 1 && (m.Rows <= 1 || m.RowStride >= m.Cols):
		return LayoutRight
	default:
		return LayoutStride
	}
}

// At returns element (i, j).
func (m Matrix[T]) At(i, j int) T { return m.Data[i*m.RowStride+j*m.ColStride] }

// Set stores val at (i, j).
func (m Matrix[T]) Set(i, j int, val T) { m.Data[i*m.RowStride+j*m.ColStride] = val }

// Col returns column j as a vector sharing storage.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("view: column %d out of range [0, %d)", j, m.Cols))
	}
	return m.line(j*m.ColStride, m.Rows, m.RowStride)
}

// Row returns row i as a vector sharing storage.
func (m Matrix[T]) Row(i int) Vector[T] {
	if i < 0 || i >= m.Rows {
		panic(fmt.Sprintf("view: row %d out of range [0, %d)", i, m.Rows))
	}
	return m.line(i*m.RowStride, m.Cols, m.ColStride)
}

// RowBlock returns rows [lo, hi) as a matrix sharing storage.
func (m Matrix[T]) RowBlock(lo, hi int) Matrix[T] {
	if lo < 0 || hi < lo || hi > m.Rows {
		panic(fmt.Sprintf("view: RowBlock(%d, %d) out of range [0, %d]", lo, hi, m.Rows))
	}
	out := m
	out.Rows = hi - lo
	if out.Rows == 0 || m.Cols == 0 {
		out.Data = m.Data[:0]
		return out
	}
	out.Data = m.Data[lo*m.RowStride:]
	return out
}

func (m Matrix[T]) line(start, n, inc int) Vector[T] {
	if n == 0 {
		return Vector[T]{Data: m.Data[:0], Inc: max(inc, 1)}
	}
	if inc < 1 {
		inc = 1
	}
	return Vector[T]{Data: m.Data[start : start+(n-1)*inc+1], N: n, Inc: inc}
}

// SameShape reports whether all matrices have the dimensions of m.
func (m Matrix[T]) SameShape(others ...Matrix[T]) bool {
	for _, o := range others {
		if o.Rows != m.Rows || o.Cols != m.Cols {
			return false
		}
	}
	return true
}
