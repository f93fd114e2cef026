// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

// Package bitconst mirrors the primitives of package bitops without
// any dependency on the build target or the running CPU.  Every
// function is a pure computation on its arguments using the portable
// algorithms only, so its results are the same in every build and can
// be used for tables computed in package initialisers or, through
// "bitops gen", for constants generated at build time.
package bitconst

import "github.com/clausecker/bitops/internal/fallback"

// Unsigned is the set of operand types accepted by this package.
type Unsigned = fallback.Unsigned

// Width returns the number of bits in T.
func Width[T Unsigned]() int { return fallback.Width[T]() }

// PopCount returns the number of one bits in v.
func PopCount[T Unsigned](v T) int { return fallback.PopCount(v) }

// LeadingZeros returns the number of leading zero bits in v.
func LeadingZeros[T Unsigned](v T) int { return fallback.LeadingZeros(v) }

// TrailingZeros returns the number of trailing zero bits in v.
func TrailingZeros[T Unsigned](v T) int { return fallback.TrailingZeros(v) }

// LeadingOnes returns the number of leading one bits in v.
func LeadingOnes[T Unsigned](v T) int { return fallback.LeadingOnes(v) }

// TrailingOnes returns the number of trailing one bits in v.
func TrailingOnes[T Unsigned](v T) int { return fallback.TrailingOnes(v) }

// RotateLeft returns v rotated left by shift bits; see bitops.RotateLeft.
func RotateLeft[T Unsigned](v T, shift int) T { return fallback.RotateLeft(v, shift) }

// RotateRight returns v rotated right by shift bits.
func RotateRight[T Unsigned](v T, shift int) T { return fallback.RotateRight(v, shift) }

// ByteSwap returns v with its bytes in reverse order.
func ByteSwap[T Unsigned](v T) T { return fallback.ByteSwap(v) }

// BitWidth returns the number of bits needed to represent v.
func BitWidth[T Unsigned](v T) int { return fallback.BitWidth(v) }

// BitFloor returns the largest power of two not greater than v, or 0.
func BitFloor[T Unsigned](v T) T { return fallback.BitFloor(v) }

// HasSingleBit reports whether exactly one bit of v is set.
func HasSingleBit[T Unsigned](v T) bool { return fallback.HasSingleBit(v) }

// CeilError is the error of CheckedBitCeil and the panic value of
// BitCeil.  It is the same type as bitops.CeilError.
type CeilError = fallback.CeilError

// CheckedBitCeil returns the smallest power of two not less than v.
// It returns a *CeilError if that power of two does not fit into T.
func CheckedBitCeil[T Unsigned](v T) (T, error) {
	c, ok := fallback.BitCeil(v)
	if !ok {
		return 0, &CeilError{Value: uint64(v), Width: Width[T]()}
	}

	return c, nil
}

// BitCeil is like CheckedBitCeil, but panics with a *CeilError if the
// result does not fit into T.
func BitCeil[T Unsigned](v T) T {
	c, err := CheckedBitCeil(v)
	if err != nil {
		panic(err)
	}

	return c
}
