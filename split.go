// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// On targets with 32 bit words, a 64 bit operation is carried out by
// applying a 32 bit instruction f to both halves.  The 32 bit leading
// and trailing zero counts must return 32 for a zero operand.

func popCount64Split(x uint64, f func(uint32) int) int {
	return f(uint32(x)) + f(uint32(x>>32))
}

func leadingZeros64Split(x uint64, f func(uint32) int) int {
	if n := f(uint32(x >> 32)); n != 32 {
		return n
	}

	return 32 + f(uint32(x))
}

func trailingZeros64Split(x uint64, f func(uint32) int) int {
	if lo := uint32(x); lo != 0 {
		return f(lo)
	}

	return 32 + f(uint32(x>>32))
}
