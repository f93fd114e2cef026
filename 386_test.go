//go:build 386

package bitops

import "golang.org/x/sys/cpu"
import "testing"

func split(name string, f func(uint32) int, split64 func(uint64, func(uint32) int) int) countImpl {
	return countImpl{f, func(x uint64) int { return split64(x, f) }, name, true}
}

// test popcnt32, also as halves of a 64 bit count
func TestPOPCNT(t *testing.T) {
	if !cpu.X86.HasPOPCNT {
		t.SkipNow()
	}

	testCountImpl(t, split("POPCNT", popcnt32, popCount64Split), popCountSafe)
}

// test lzcnt32
func TestLZCNT(t *testing.T) {
	if !detect().LeadingZeros {
		t.SkipNow()
	}

	testCountImpl(t, split("LZCNT", lzcnt32, leadingZeros64Split), leadingZerosSafe)
}

// test tzcnt32
func TestTZCNT(t *testing.T) {
	if !cpu.X86.HasBMI1 {
		t.SkipNow()
	}

	testCountImpl(t, split("TZCNT", tzcnt32, trailingZeros64Split), trailingZerosSafe)
}
