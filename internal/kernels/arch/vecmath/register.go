// Package vecmath is the axpby backend built on the algo-vecmath block
// operations (ScaleBlock, AddBlock), which dispatch to SIMD code on amd64
// and arm64.
//
// Only float64 cells that are a single scale or add are replaced; their
// results are bit-identical to the generic backend. Element ops, rot and
// the float32 tables are the generic ones.
package vecmath

import (
	"runtime"

	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels/arch/generic"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
)

// Name is the registry name of this backend.
const Name = "vecmath"

// Priority: 10 (above generic, below fma). Not registered on architectures
// where algo-vecmath has no SIMD path.
func init() {
	if _, ok := level(runtime.GOARCH); ok {
		registry.Global.Register(Entry())
	}
}

// Entry returns the registry entry for the vecmath backend.
func Entry() registry.Entry {
	return registry.Entry{
		Name:      Name,
		SIMDLevel: simdLevel(),
		Priority:  10,
		Float64:   NewSet64(),
		Float32:   generic.NewSet[float32](),
	}
}

func simdLevel() cpu.SIMDLevel {
	l, _ := level(runtime.GOARCH)
	return l
}

// level is the SIMD baseline algo-vecmath accelerates on arch.
func level(arch string) (cpu.SIMDLevel, bool) {
	switch arch {
	case "amd64":
		return cpu.SIMDSSE2, true
	case "arm64":
		return cpu.SIMDNEON, true
	default:
		return cpu.SIMDNone, false
	}
}
