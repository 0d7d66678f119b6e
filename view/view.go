// Package view describes dense real vectors and multivectors laid out in
// caller-owned slices.
//
// A Vector is a rank-1 view with an element increment (BLAS "inc"). A Matrix
// is a rank-2 view whose columns are the vectors of a multivector; its row and
// column strides decide the Layout, which the blas1 dispatcher uses to pick a
// kernel variant. Views never copy: subviews share the backing slice.
package view

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is the element type constraint for views and kernels.
type Scalar interface {
	constraints.Float
}

var (
	// ErrShape reports negative dimensions or a backing slice too short for
	// the requested shape.
	ErrShape = errors.New("view: invalid shape")

	// ErrStride reports a non-positive increment or stride.
	ErrStride = errors.New("view: invalid stride")
)

// Layout is the memory order of a Matrix.
type Layout int

const (
	// LayoutLeft is column-major: each column is contiguous.
	LayoutLeft Layout = iota

	// LayoutRight is row-major: each row is contiguous.
	LayoutRight

	// LayoutStride is any other arrangement.
	LayoutStride
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutLeft:
		return "left"
	case LayoutRight:
		return "right"
	case LayoutStride:
		return "stride"
	default:
		return "unknown"
	}
}

// ParseLayout maps "left", "right" and "stride" to a Layout.
func ParseLayout(s string) (Layout, bool) {
	switch s {
	case "left", "col", "column-major":
		return LayoutLeft, true
	case "right", "row", "row-major":
		return LayoutRight, true
	case "stride":
		return LayoutStride, true
	default:
		return 0, false
	}
}
