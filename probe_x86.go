// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build 386 || amd64

package bitops

import "golang.org/x/sys/cpu"

const (
	extendedLeaf     = 0x80000000 // highest extended CPUID leaf
	extendedFeatures = 0x80000001 // extended processor features
	abmLZCNT         = 1 << 5     // LZCNT in ECX of extendedFeatures
)

// detect POPCNT, LZCNT, and BMI1 (TZCNT).  x/sys/cpu does not report
// LZCNT, so the extended feature leaf is read directly.
func detect() Capabilities {
	c := Capabilities{
		PopCount:      cpu.X86.HasPOPCNT,
		TrailingZeros: cpu.X86.HasBMI1,
	}

	if maxLeaf, _, _, _ := cpuid(extendedLeaf, 0); maxLeaf >= extendedFeatures {
		_, _, ecx, _ := cpuid(extendedFeatures, 0)
		c.LeadingZeros = ecx&abmLZCNT != 0
	}

	return c
}
