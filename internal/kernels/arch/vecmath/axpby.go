package vecmath

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blas/internal/kernels"
	"github.com/cwbudde/algo-blas/internal/kernels/arch/generic"
)

// Cells that reduce to one or two algo-vecmath block calls. Names follow
// the generic backend: z = 0, m = -1, p = +1, c = coefficient. Block calls
// are element-wise, so r may alias x or y.

func zm(r, _, y []float64, _, _ float64) {
	vecmath.ScaleBlock(r, y, -1)
}

func zc(r, _, y []float64, _, b float64) {
	vecmath.ScaleBlock(r, y, b)
}

func mz(r, x, _ []float64, _, _ float64) {
	vecmath.ScaleBlock(r, x, -1)
}

// mm computes -(x + y), which rounds exactly like -x - y.
func mm(r, x, y []float64, _, _ float64) {
	vecmath.AddBlock(r, x, y)
	vecmath.ScaleBlock(r, r, -1)
}

func pp(r, x, y []float64, _, _ float64) {
	vecmath.AddBlock(r, x, y)
}

func cz(r, x, _ []float64, a, _ float64) {
	vecmath.ScaleBlock(r, x, a)
}

func overrides() *kernels.Set[float64] {
	s := &kernels.Set[float64]{}
	set := func(a, b kernels.Tag, k kernels.ContigKernel[float64]) {
		i, j := kernels.Cell(a, b)
		s.Contig[i][j] = k
	}
	set(kernels.TagZero, kernels.TagMinusOne, zm)
	set(kernels.TagZero, kernels.TagGeneral, zc)
	set(kernels.TagMinusOne, kernels.TagZero, mz)
	set(kernels.TagMinusOne, kernels.TagMinusOne, mm)
	set(kernels.TagOne, kernels.TagOne, pp)
	set(kernels.TagGeneral, kernels.TagZero, cz)
	return s
}

// NewSet64 returns the generic float64 table with the block-operation cells
// laid over it. Backends above this one build on it.
func NewSet64() *kernels.Set[float64] {
	return generic.NewSet[float64]().Override(overrides())
}
