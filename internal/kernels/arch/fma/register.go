// Package fma is the fused multiply-add axpby/rot backend.
//
// Coefficient cells compute a*x + b*y as FMA(a, x, b*y), one rounding
// fewer than the generic cells. math.FMA lowers to a single instruction only
// when the CPU has hardware FMA, so the backend requires cpu.SIMDFMA. The
// remaining float64 cells come from the vecmath backend; float32 tables are
// the generic ones.
package fma

import (
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels/arch/generic"
	"github.com/cwbudde/algo-blas/internal/kernels/arch/vecmath"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
)

// Name is the registry name of this backend.
const Name = "fma"

// Priority: 20 (preferred over generic when the CPU has FMA).
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for the fma backend.
func Entry() registry.Entry {
	return registry.Entry{
		Name:      Name,
		SIMDLevel: cpu.SIMDFMA,
		Priority:  20,
		Float64:   vecmath.NewSet64().Override(overrides()),
		Float32:   generic.NewSet[float32](),
	}
}
