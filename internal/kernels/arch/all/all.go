// Package all links every kernel backend into the binary. Importing it for
// side effects fills registry.Global.
package all

import (
	_ "github.com/cwbudde/algo-blas/internal/kernels/arch/fma"
	_ "github.com/cwbudde/algo-blas/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-blas/internal/kernels/arch/vecmath"
)
