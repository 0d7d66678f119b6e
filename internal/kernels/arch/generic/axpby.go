package generic

import (
	"github.com/cwbudde/algo-blas/internal/kernels"
	"github.com/cwbudde/algo-blas/view"
)

// The contiguous cells below are named after their (a, b) tags: z = 0,
// m = -1, p = +1, c = coefficient. Cells with a zero tag never read the
// corresponding operand.

func zz[T view.Scalar](r, _, _ []T, _, _ T) {
	clear(r)
}

func zm[T view.Scalar](r, _, y []T, _, _ T) {
	kernels.CheckLen(r, y)
	for i := range r {
		r[i] = -y[i]
	}
}

func zp[T view.Scalar](r, _, y []T, _, _ T) {
	kernels.CheckLen(r, y)
	copy(r, y)
}

func zc[T view.Scalar](r, _, y []T, _, b T) {
	kernels.CheckLen(r, y)
	for i := range r {
		r[i] = b * y[i]
	}
}

func mz[T view.Scalar](r, x, _ []T, _, _ T) {
	kernels.CheckLen(r, x)
	for i := range r {
		r[i] = -x[i]
	}
}

func mm[T view.Scalar](r, x, y []T, _, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = -x[i] - y[i]
	}
}

func mp[T view.Scalar](r, x, y []T, _, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = -x[i] + y[i]
	}
}

func mc[T view.Scalar](r, x, y []T, _, b T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = -x[i] + b*y[i]
	}
}

func pz[T view.Scalar](r, x, _ []T, _, _ T) {
	kernels.CheckLen(r, x)
	copy(r, x)
}

func pm[T view.Scalar](r, x, y []T, _, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = x[i] - y[i]
	}
}

func pp[T view.Scalar](r, x, y []T, _, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = x[i] + y[i]
	}
}

func pc[T view.Scalar](r, x, y []T, _, b T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = x[i] + b*y[i]
	}
}

func cz[T view.Scalar](r, x, _ []T, a, _ T) {
	kernels.CheckLen(r, x)
	for i := range r {
		r[i] = a * x[i]
	}
}

func cm[T view.Scalar](r, x, y []T, a, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = a*x[i] - y[i]
	}
}

func cp[T view.Scalar](r, x, y []T, a, _ T) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = a*x[i] + y[i]
	}
}

// cc is the general cell and the hot path for arbitrary coefficients, so it
// is unrolled by four.
func cc[T view.Scalar](r, x, y []T, a, b T) {
	kernels.CheckLen(r, x, y)
	n := len(r)
	i := 0
	for ; i+4 <= n; i += 4 {
		x0, x1, x2, x3 := x[i], x[i+1], x[i+2], x[i+3]
		y0, y1, y2, y3 := y[i], y[i+1], y[i+2], y[i+3]
		r[i] = a*x0 + b*y0
		r[i+1] = a*x1 + b*y1
		r[i+2] = a*x2 + b*y2
		r[i+3] = a*x3 + b*y3
	}
	for ; i < n; i++ {
		r[i] = a*x[i] + b*y[i]
	}
}

// Element ops, same naming.

func ezz[T view.Scalar](_, _, _, _ T) T { return 0 }
func ezm[T view.Scalar](_, y, _, _ T) T { return -y }
func ezp[T view.Scalar](_, y, _, _ T) T { return y }
func ezc[T view.Scalar](_, y, _, b T) T { return b * y }
func emz[T view.Scalar](x, _, _, _ T) T { return -x }
func emm[T view.Scalar](x, y, _, _ T) T { return -x - y }
func emp[T view.Scalar](x, y, _, _ T) T { return -x + y }
func emc[T view.Scalar](x, y, _, b T) T { return -x + b*y }
func epz[T view.Scalar](x, _, _, _ T) T { return x }
func epm[T view.Scalar](x, y, _, _ T) T { return x - y }
func epp[T view.Scalar](x, y, _, _ T) T { return x + y }
func epc[T view.Scalar](x, y, _, b T) T { return x + b*y }
func ecz[T view.Scalar](x, _, a, _ T) T { return a * x }
func ecm[T view.Scalar](x, y, a, _ T) T { return a*x - y }
func ecp[T view.Scalar](x, y, a, _ T) T { return a*x + y }
func ecc[T view.Scalar](x, y, a, b T) T { return a*x + b*y }

// NewSet builds the complete generic kernel table for T.
func NewSet[T view.Scalar]() *kernels.Set[T] {
	s := &kernels.Set[T]{
		Rot:     rot[T],
		RotElem: rotElem[T],
	}

	type cell struct {
		a, b   kernels.Tag
		contig kernels.ContigKernel[T]
		elem   kernels.ElemOp[T]
	}
	const (
		z = kernels.TagZero
		m = kernels.TagMinusOne
		p = kernels.TagOne
		c = kernels.TagGeneral
	)
	cells := []cell{
		{z, z, zz[T], ezz[T]}, {z, m, zm[T], ezm[T]}, {z, p, zp[T], ezp[T]}, {z, c, zc[T], ezc[T]},
		{m, z, mz[T], emz[T]}, {m, m, mm[T], emm[T]}, {m, p, mp[T], emp[T]}, {m, c, mc[T], emc[T]},
		{p, z, pz[T], epz[T]}, {p, m, pm[T], epm[T]}, {p, p, pp[T], epp[T]}, {p, c, pc[T], epc[T]},
		{c, z, cz[T], ecz[T]}, {c, m, cm[T], ecm[T]}, {c, p, cp[T], ecp[T]}, {c, c, cc[T], ecc[T]},
	}
	for _, cl := range cells {
		i, j := kernels.Cell(cl.a, cl.b)
		s.Contig[i][j] = cl.contig
		s.Elem[i][j] = cl.elem
	}
	return s
}
