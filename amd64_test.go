// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build amd64

package bitops

import "testing"

import "golang.org/x/sys/cpu"

// test popcnt32 and popcnt64
func TestPOPCNT(t *testing.T) {
	if !cpu.X86.HasPOPCNT {
		t.SkipNow()
	}

	testCountImpl(t, countImpl{popcnt32, popcnt64, "POPCNT", true}, popCountSafe)
}

// test lzcnt32 and lzcnt64
func TestLZCNT(t *testing.T) {
	if !detect().LeadingZeros {
		t.SkipNow()
	}

	testCountImpl(t, countImpl{lzcnt32, lzcnt64, "LZCNT", true}, leadingZerosSafe)
}

// test tzcnt32 and tzcnt64
func TestTZCNT(t *testing.T) {
	if !cpu.X86.HasBMI1 {
		t.SkipNow()
	}

	testCountImpl(t, countImpl{tzcnt32, tzcnt64, "TZCNT", true}, trailingZerosSafe)
}

// every x86-64 processor has the extended CPUID leaves
func TestCPUID(t *testing.T) {
	maxLeaf, _, _, _ := cpuid(extendedLeaf, 0)
	if maxLeaf < extendedFeatures {
		t.Errorf("highest extended leaf %#x, want at least %#x", maxLeaf, extendedFeatures)
	}
}
