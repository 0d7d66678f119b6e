package fma

import (
	"math"

	"github.com/cwbudde/algo-blas/internal/kernels"
)

// Only cells that multiply by a coefficient and then add change; the rest
// come from the generic table.

func mc(r, x, y []float64, _, b float64) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = math.FMA(b, y[i], -x[i])
	}
}

func pc(r, x, y []float64, _, b float64) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = math.FMA(b, y[i], x[i])
	}
}

func cm(r, x, y []float64, a, _ float64) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = math.FMA(a, x[i], -y[i])
	}
}

func cp(r, x, y []float64, a, _ float64) {
	kernels.CheckLen(r, x, y)
	for i := range r {
		r[i] = math.FMA(a, x[i], y[i])
	}
}

func cc(r, x, y []float64, a, b float64) {
	kernels.CheckLen(r, x, y)
	n := len(r)
	i := 0
	for ; i+4 <= n; i += 4 {
		r0 := math.FMA(a, x[i], b*y[i])
		r1 := math.FMA(a, x[i+1], b*y[i+1])
		r2 := math.FMA(a, x[i+2], b*y[i+2])
		r3 := math.FMA(a, x[i+3], b*y[i+3])
		r[i], r[i+1], r[i+2], r[i+3] = r0, r1, r2, r3
	}
	for ; i < n; i++ {
		r[i] = math.FMA(a, x[i], b*y[i])
	}
}

func emc(x, y, _, b float64) float64 { return math.FMA(b, y, -x) }
func epc(x, y, _, b float64) float64 { return math.FMA(b, y, x) }
func ecm(x, y, a, _ float64) float64 { return math.FMA(a, x, -y) }
func ecp(x, y, a, _ float64) float64 { return math.FMA(a, x, y) }
func ecc(x, y, a, b float64) float64 { return math.FMA(a, x, b*y) }

func rot(x, y []float64, c, s float64) {
	kernels.CheckLen(x, y)
	for i := range x {
		xi, yi := x[i], y[i]
		x[i] = math.FMA(c, xi, s*yi)
		y[i] = math.FMA(c, yi, -s*xi)
	}
}

func rotElem(x, y, c, s float64) (float64, float64) {
	return math.FMA(c, x, s*y), math.FMA(c, y, -s*x)
}

// overrides returns the FMA cells to lay over the generic float64 table.
func overrides() *kernels.Set[float64] {
	s := &kernels.Set[float64]{Rot: rot, RotElem: rotElem}
	set := func(a, b kernels.Tag, k kernels.ContigKernel[float64], e kernels.ElemOp[float64]) {
		i, j := kernels.Cell(a, b)
		s.Contig[i][j] = k
		s.Elem[i][j] = e
	}
	set(kernels.TagMinusOne, kernels.TagGeneral, mc, emc)
	set(kernels.TagOne, kernels.TagGeneral, pc, epc)
	set(kernels.TagGeneral, kernels.TagMinusOne, cm, ecm)
	set(kernels.TagGeneral, kernels.TagOne, cp, ecp)
	set(kernels.TagGeneral, kernels.TagGeneral, cc, ecc)
	return s
}
