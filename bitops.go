// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "github.com/clausecker/bitops/internal/fallback"

// Width returns the number of bits in T.
func Width[T Unsigned]() int {
	return fallback.Width[T]()
}

// TrailingOnes returns the number of trailing one bits in v.
func TrailingOnes[T Unsigned](v T) int {
	return TrailingZeros(^v)
}

// LeadingOnes returns the number of leading one bits in v.
func LeadingOnes[T Unsigned](v T) int {
	return LeadingZeros(^v)
}

// BitWidth returns the number of bits needed to represent v.  The
// result is 0 for v == 0.
func BitWidth[T Unsigned](v T) int {
	return fallback.Width[T]() - LeadingZeros(v)
}

// BitFloor returns the largest power of two not greater than v, or 0
// if v is 0.
func BitFloor[T Unsigned](v T) T {
	if v == 0 {
		return 0
	}

	return T(1) << (BitWidth(v) - 1)
}

// BitCeil returns the smallest power of two not less than v.  It
// panics with a *CeilError if that power of two does not fit into T,
// i.e. if v is larger than the largest power of two of T.
func BitCeil[T Unsigned](v T) T {
	if v <= 1 {
		return 1
	}

	w := fallback.Width[T]()
	n := BitWidth(v - 1)
	if n >= w {
		panic(&CeilError{Value: uint64(v), Width: w})
	}

	return T(1) << n
}

// HasSingleBit reports whether v is a power of two, i.e. whether
// exactly one bit is set.
func HasSingleBit[T Unsigned](v T) bool {
	return PopCount(v) == 1
}

// CeilError is the panic value of BitCeil for an operand whose bit
// ceiling is not representable.  Package bitconst panics with the same
// type.
type CeilError = fallback.CeilError
