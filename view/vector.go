package view

import "fmt"

// Vector is a rank-1 view: element i lives at Data[i*Inc].
type Vector[T Scalar] struct {
	Data []T
	N    int
	Inc  int
}

// NewVector allocates a zeroed contiguous vector of length n.
func NewVector[T Scalar](n int) Vector[T] {
	if n < 0 {
		n = 0
	}
	return Vector[T]{Data: make([]T, n), N: n, Inc: 1}
}

// VectorOf wraps data as a contiguous vector without copying.
func VectorOf[T Scalar](data []T) Vector[T] {
	return Vector[T]{Data: data, N: len(data), Inc: 1}
}

// StridedVector wraps every inc-th element of data, starting at data[0].
func StridedVector[T Scalar](data []T, n, inc int) (Vector[T], error) {
	if inc < 1 {
		return Vector[T]{}, fmt.Errorf("%w: inc %d", ErrStride, inc)
	}
	if n < 0 {
		return Vector[T]{}, fmt.Errorf("%w: length %d", ErrShape, n)
	}
	if n > 0 && (n-1)*inc >= len(data) {
		return Vector[T]{}, fmt.Errorf("%w: %d elements with inc %d need %d, have %d",
			ErrShape, n, inc, (n-1)*inc+1, len(data))
	}
	return Vector[T]{Data: data, N: n, Inc: inc}, nil
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.N }

// Contiguous reports whether the elements are adjacent in memory.
func (v Vector[T]) Contiguous() bool { return v.Inc == 1 || v.N <= 1 }

// At returns element i.
func (v Vector[T]) At(i int) T { return v.Data[i*v.Inc] }

// Set stores val at element i.
func (v Vector[T]) Set(i int, val T) { v.Data[i*v.Inc] = val }

// Slice returns the contiguous window Data[:N]. It panics when the vector
// is strided.
func (v Vector[T]) Slice() []T {
	if !v.Contiguous() {
		panic("view: Slice on strided vector")
	}
	if v.N == 0 {
		return v.Data[:0]
	}
	return v.Data[:v.N:v.N]
}

// Copy returns a contiguous copy of the elements.
func (v Vector[T]) Copy() []T {
	out := make([]T, v.N)
	for i := range out {
		out[i] = v.Data[i*v.Inc]
	}
	return out
}

// span returns the extent of the backing slice touched by the view.
func (v Vector[T]) span() int {
	if v.N == 0 {
		return 0
	}
	return (v.N-1)*v.Inc + 1
}

// Validate checks that the increment is positive and that Data covers every
// element.
func (v Vector[T]) Validate() error {
	if v.N < 0 {
		return fmt.Errorf("%w: length %d", ErrShape, v.N)
	}
	if v.Inc < 1 && v.N > 1 {
		return fmt.Errorf("%w: inc %d", ErrStride, v.Inc)
	}
	if v.span() > len(v.Data) {
		return fmt.Errorf("%w: vector spans %d elements, data has %d", ErrShape, v.span(), len(v.Data))
	}
	return nil
}

// Sub returns elements [lo, hi) as a vector sharing storage.
func (v Vector[T]) Sub(lo, hi int) Vector[T] {
	if lo < 0 || hi < lo || hi > v.N {
		panic(fmt.Sprintf("view: Sub(%d, %d) out of range [0, %d]", lo, hi, v.N))
	}
	n := hi - lo
	if n == 0 {
		return Vector[T]{Data: v.Data[:0], N: 0, Inc: v.Inc}
	}
	start := lo * v.Inc
	return Vector[T]{Data: v.Data[start : start+(n-1)*v.Inc+1], N: n, Inc: v.Inc}
}
