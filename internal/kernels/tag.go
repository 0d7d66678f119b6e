// Package kernels defines the coefficient tags and the kernel tables that
// blas1 selects from.
//
// An axpby call R = a*X + b*Y is reduced to a pair of tags, one per
// coefficient. Literal 0, -1 and +1 get their own tags so the selected cell
// can skip the multiplication, and in the case of 0 skip reading the operand
// altogether. Every other scalar, and every per-column coefficient vector,
// selects the "coefficient" row or column of the 4x4 table.
package kernels

import "github.com/cwbudde/algo-blas/view"

// Tag classifies one axpby coefficient.
type Tag int8

const (
	TagZero     Tag = 0
	TagMinusOne Tag = -1
	TagOne      Tag = 1
	TagGeneral  Tag = 2
	TagVector   Tag = 3
)

// Table indices. General and Vector share idxCoef.
const (
	idxZero = iota
	idxMinusOne
	idxOne
	idxCoef

	numTags
)

// Index returns the row/column of the kernel table for t.
func (t Tag) Index() int {
	switch t {
	case TagZero:
		return idxZero
	case TagMinusOne:
		return idxMinusOne
	case TagOne:
		return idxOne
	default:
		return idxCoef
	}
}

// UsesCoefficient reports whether the cell for t multiplies by a coefficient.
func (t Tag) UsesCoefficient() bool { return t == TagGeneral || t == TagVector }

// String returns a short name for logs and plans.
func (t Tag) String() string {
	switch t {
	case TagZero:
		return "0"
	case TagMinusOne:
		return "-1"
	case TagOne:
		return "1"
	case TagGeneral:
		return "scalar"
	case TagVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Classify maps a scalar coefficient to its tag.
func Classify[T view.Scalar](alpha T) Tag {
	switch alpha {
	case 0:
		return TagZero
	case -1:
		return TagMinusOne
	case 1:
		return TagOne
	default:
		return TagGeneral
	}
}

// ClassifyVector maps a per-column coefficient vector to its tag. An empty
// vector means the coefficient is zero.
func ClassifyVector[T view.Scalar](av []T) Tag {
	if len(av) == 0 {
		return TagZero
	}
	return TagVector
}
