// Copyright (c) 2020, 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// The reference implementations look at one bit at a time.  They work
// on the low w bits of a uint64.

// PopCount reference implementation for tests.  Do not alter.
func popCountSafe(v uint64, w int) int {
	n := 0
	for i := 0; i < w; i++ {
		n += int(v >> i & 1)
	}

	return n
}

// LeadingZeros reference implementation for tests.  Do not alter.
func leadingZerosSafe(v uint64, w int) int {
	for i := w - 1; i >= 0; i-- {
		if v>>i&1 != 0 {
			return w - 1 - i
		}
	}

	return w
}

// TrailingZeros reference implementation for tests.  Do not alter.
func trailingZerosSafe(v uint64, w int) int {
	for i := 0; i < w; i++ {
		if v>>i&1 != 0 {
			return i
		}
	}

	return w
}

// RotateLeft reference implementation for tests.  Do not alter.
func rotateLeftSafe(v uint64, w int, shift int) uint64 {
	shift = (shift%w + w) % w
	mask := ^uint64(0) >> (64 - w)
	for ; shift > 0; shift-- {
		v = (v<<1 | v>>(w-1)) & mask
	}

	return v
}

// ByteSwap reference implementation for tests.  Do not alter.
func byteSwapSafe(v uint64, w int) uint64 {
	var r uint64
	for i := 0; i < w/8; i++ {
		r = r<<8 | v>>(8*i)&0xff
	}

	return r
}
