package kernels

import "github.com/cwbudde/algo-blas/view"

// ContigKernel computes one axpby cell over contiguous slices of equal
// length. r may alias x or y element for element. a and b are read only by
// coefficient cells.
type ContigKernel[T view.Scalar] func(r, x, y []T, a, b T)

// ElemOp computes one axpby cell for a single element.
type ElemOp[T view.Scalar] func(x, y, a, b T) T

// RotKernel applies a plane rotation in place to contiguous x and y.
type RotKernel[T view.Scalar] func(x, y []T, c, s T)

// RotElem rotates one (x, y) pair.
type RotElem[T view.Scalar] func(x, y, c, s T) (T, T)

// Set is the kernel table of one backend for one element type.
type Set[T view.Scalar] struct {
	Contig  [numTags][numTags]ContigKernel[T]
	Elem    [numTags][numTags]ElemOp[T]
	Rot     RotKernel[T]
	RotElem RotElem[T]
}

// Select returns the contiguous kernel and element op for the tag pair.
func (s *Set[T]) Select(a, b Tag) (ContigKernel[T], ElemOp[T]) {
	i, j := a.Index(), b.Index()
	return s.Contig[i][j], s.Elem[i][j]
}

// Complete reports whether every cell and both rotation kernels are set.
func (s *Set[T]) Complete() bool {
	if s == nil || s.Rot == nil || s.RotElem == nil {
		return false
	}
	for i := range numTags {
		for j := range numTags {
			if s.Contig[i][j] == nil || s.Elem[i][j] == nil {
				return false
			}
		}
	}
	return true
}

// Override returns a copy of s with every non-nil entry of o replacing the
// corresponding entry of s. Backends use it to specialize a few cells on
// top of the generic table.
func (s *Set[T]) Override(o *Set[T]) *Set[T] {
	out := *s
	for i := range numTags {
		for j := range numTags {
			if o.Contig[i][j] != nil {
				out.Contig[i][j] = o.Contig[i][j]
			}
			if o.Elem[i][j] != nil {
				out.Elem[i][j] = o.Elem[i][j]
			}
		}
	}
	if o.Rot != nil {
		out.Rot = o.Rot
	}
	if o.RotElem != nil {
		out.RotElem = o.RotElem
	}
	return &out
}

// Cell returns the table coordinates for a tag pair. Backends index Contig
// and Elem with it when building a Set.
func Cell(a, b Tag) (int, int) { return a.Index(), b.Index() }

// CheckLen panics unless every slice has the length of r.
func CheckLen[T view.Scalar](r []T, others ...[]T) {
	for _, o := range others {
		if len(o) != len(r) {
			panic("kernels: slice length mismatch")
		}
	}
}
