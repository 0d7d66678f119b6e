// Package cpu provides CPU feature detection for BLAS kernel backend selection.
//
// Detection runs lazily on the first call to DetectFeatures() and is cached.
// Tests can pin a feature set with SetForcedFeatures, and the
// ALGO_BLAS_FORCE_GENERIC environment variable disables every accelerated
// backend at detection time.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// ForceGenericEnv names the environment variable that, when true-ish,
// restricts kernel selection to the pure Go backend.
const ForceGenericEnv = "ALGO_BLAS_FORCE_GENERIC"

// SIMDLevel represents an instruction set extension a kernel backend requires.
// Levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no requirement (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDFMA indicates fused multiply-add in hardware, so math.FMA lowers
	// to a single instruction instead of the software emulation.
	SIMDFMA

	// SIMDAVX512 indicates x86-64 AVX-512 foundation.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDFMA:
		return "FMA"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel backend selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasFMA    bool // Fused multiply-add (FMA3 on amd64, baseline FP on arm64)
	HasAVX512 bool // Advanced Vector Extensions 512 (foundation)

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable every accelerated backend (ALGO_BLAS_FORCE_GENERIC)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.ForceGeneric = forceGenericFromEnv()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFMA reports whether hardware fused multiply-add is available and not
// disabled by ForceGeneric.
func HasFMA() bool {
	f := DetectFeatures()
	return f.HasFMA && !f.ForceGeneric
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDFMA:
		return features.HasFMA
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

func forceGenericFromEnv() bool {
	val := os.Getenv(ForceGenericEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
