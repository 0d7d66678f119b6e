//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs detection on arm64. FMADD is part of the
// ARMv8 floating-point baseline, so FMA follows the FP feature bit.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       cpu.ARM64.HasFP,
		Architecture: runtime.GOARCH,
	}
}
