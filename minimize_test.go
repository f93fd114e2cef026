// Copyright (c) 2021, 2022, 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "fmt"

// Take a 64 bit count function, a reference, and an operand and return
// true if the operand is counted correctly.
func testPasses64(count64 func(uint64) int, ref func(uint64, int) int, v uint64) bool {
	return count64(v) == ref(v, 64)
}

// Take a failing operand for count64 and try to find the smallest
// operand that still triggers the error.  This is done by repeatedly
// clearing bits that do not cause the test to pass when cleared.
// Returns v unchanged if it does not fail in the first place.
func minimizeOperand64(count64 func(uint64) int, ref func(uint64, int) int, v uint64) uint64 {
	// sanity check
	if testPasses64(count64, ref, v) {
		return v
	}

	for j := 63; j >= 0; j-- {
		if v&(1<<j) == 0 {
			continue
		}

		v &^= 1 << j
		if testPasses64(count64, ref, v) {
			v |= 1 << j
		}
	}

	return v
}

// describe a failing operand and its minimised form
func operandString64(count64 func(uint64) int, ref func(uint64, int) int, v uint64) string {
	m := minimizeOperand64(count64, ref, v)
	if m == v {
		return fmt.Sprintf("%#016x", v)
	}

	return fmt.Sprintf("%#016x (minimised: %#016x, got %d, want %d)", v, m, count64(m), ref(m, 64))
}
