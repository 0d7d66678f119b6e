// Package generic is the pure Go axpby/rot backend.
//
// It is always eligible and serves as the baseline the accelerated
// backends are tested against.
package generic

import (
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
)

// Name is the registry name of this backend.
const Name = "generic"

// Priority: 0 (used only when nothing better is supported).
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for the generic backend.
func Entry() registry.Entry {
	return registry.Entry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Float64:   NewSet[float64](),
		Float32:   NewSet[float32](),
	}
}
