package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasFMA: true, Architecture: "test"})
	defer ResetDetection()

	if !HasFMA() {
		t.Fatal("HasFMA() = false with forced FMA")
	}
	if got := DetectFeatures().Architecture; got != "test" {
		t.Fatalf("Architecture = %q, want test", got)
	}

	SetForcedFeatures(Features{HasFMA: true, ForceGeneric: true})
	if HasFMA() {
		t.Fatal("HasFMA() = true with ForceGeneric")
	}
}

func TestForceGenericEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("val="+tt.val, func(t *testing.T) {
			t.Setenv(ForceGenericEnv, tt.val)
			ResetDetection()
			defer ResetDetection()

			if got := DetectFeatures().ForceGeneric; got != tt.want {
				t.Errorf("ForceGeneric = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"fma present", Features{HasFMA: true}, SIMDFMA, true},
		{"fma absent", Features{HasAVX2: true}, SIMDFMA, false},
		{"neon", Features{HasNEON: true}, SIMDNEON, true},
		{"avx512", Features{HasAVX512: true}, SIMDAVX512, true},
		{"forced generic", Features{HasFMA: true, ForceGeneric: true}, SIMDFMA, false},
		{"forced generic none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasFMA: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDFMA.String() != "FMA" {
		t.Errorf("SIMDFMA.String() = %q", SIMDFMA.String())
	}
	if SIMDLevel(42).String() != "Unknown" {
		t.Errorf("unknown level String() = %q", SIMDLevel(42).String())
	}
}
