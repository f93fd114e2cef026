// Copyright (c) 2020, 2026 Robert Clausecker <fuz@fuz.su>

// Portable bit manipulation primitives.
//
// This package provides population counts, leading and trailing zero
// and one counts, rotations, byte swaps, bit width, bit floor, bit
// ceiling, and single-bit tests for unsigned integers of 8, 16, 32, and
// 64 bits.  For each primitive, the fastest correct implementation for
// the build target is chosen:  a hardware instruction guaranteed by the
// target, a hardware instruction used only if a one-time runtime probe
// finds it on the running CPU, or a portable fallback which produces
// the same results everywhere.  The choice between these is made when
// the package is compiled; the only cost at run time is one predictable
// branch for probed instructions.
//
// On amd64, build with GOAMD64=v2 or v3 to have POPCNT, LZCNT, and
// TZCNT used without a runtime check.  Setting the environment
// variable BITOPS_NOHW disables probed instructions, see Probe.
//
// The width of an operation is the width of the operand type.  Signed
// operands are not accepted.  Package bitconst provides the same
// operations without any hardware dependency.
package bitops

import "math/bits"

import "github.com/clausecker/bitops/internal/fallback"

// Unsigned is the set of operand types accepted by this package,
// including named types with such an underlying type.  The width of
// uint and uintptr is that of the target.
type Unsigned = fallback.Unsigned

// each count primitive has a table of implementations with the
// hardware implementation first and the generic implementation last.
// The dispatcher uses the first entry for which available is true.
// All entries with available set can be run by the unit tests.
type countImpl struct {
	count32   func(uint32) int
	count64   func(uint64) int
	name      string
	available bool
}

const genericName = "generic"

func popCountFuncs() []countImpl {
	return []countImpl{
		{hwPopCount32, hwPopCount64, insns.popCount, hasPopCount()},
		{fallback.PopCount[uint32], fallback.PopCount[uint64], genericName, true},
	}
}

func leadingZerosFuncs() []countImpl {
	return []countImpl{
		{hwLeadingZeros32, hwLeadingZeros64, insns.leadingZeros, hasLeadingZeros()},
		{fallback.LeadingZeros[uint32], fallback.LeadingZeros[uint64], genericName, true},
	}
}

func trailingZerosFuncs() []countImpl {
	return []countImpl{
		{hwTrailingZeros32, hwTrailingZeros64, insns.trailingZeros, hasTrailingZeros()},
		{fallback.TrailingZeros[uint32], fallback.TrailingZeros[uint64], genericName, true},
	}
}

// The has* functions decide whether the hardware implementation is
// used.  The support constants come from the select_*.go file of the
// target, so only the Maybe case remains after compilation.  For that
// case the choice is resolved once, on the first call rather than in
// init; later calls read the cached snapshot.

func hasPopCount() bool {
	return popCountSupport == Always || popCountSupport == Maybe && probe().PopCount
}

func hasLeadingZeros() bool {
	return leadingZerosSupport == Always || leadingZerosSupport == Maybe && probe().LeadingZeros
}

func hasTrailingZeros() bool {
	return trailingZerosSupport == Always || trailingZerosSupport == Maybe && probe().TrailingZeros
}

// PopCount returns the number of one bits in v.
func PopCount[T Unsigned](v T) int {
	if !hasPopCount() {
		return fallback.PopCount(v)
	}

	if fallback.Width[T]() == 64 {
		return hwPopCount64(uint64(v))
	}

	return hwPopCount32(uint32(v))
}

// LeadingZeros returns the number of leading zero bits in v.  The
// result is the width of T for v == 0.
func LeadingZeros[T Unsigned](v T) int {
	if !hasLeadingZeros() {
		return fallback.LeadingZeros(v)
	}

	switch w := fallback.Width[T](); w {
	case 64:
		return hwLeadingZeros64(uint64(v))
	case 32:
		return hwLeadingZeros32(uint32(v))
	default:
		// zero extended operand has 32-w extra leading zeros
		return hwLeadingZeros32(uint32(v)) - (32 - w)
	}
}

// TrailingZeros returns the number of trailing zero bits in v.  The
// result is the width of T for v == 0.
func TrailingZeros[T Unsigned](v T) int {
	if !hasTrailingZeros() {
		return fallback.TrailingZeros(v)
	}

	switch w := fallback.Width[T](); w {
	case 64:
		return hwTrailingZeros64(uint64(v))
	case 32:
		return hwTrailingZeros32(uint32(v))
	default:
		// a sentinel bit above the operand stops the count at w
		return hwTrailingZeros32(uint32(v) | 1<<w)
	}
}

// RotateLeft returns v rotated left by shift bits.  The shift may have
// any value; it is reduced modulo the width of T and a negative shift
// rotates to the right.
func RotateLeft[T Unsigned](v T, shift int) T {
	if rotateSupport != Always {
		return fallback.RotateLeft(v, shift)
	}

	switch fallback.Width[T]() {
	case 8:
		return T(bits.RotateLeft8(uint8(v), shift))
	case 16:
		return T(bits.RotateLeft16(uint16(v), shift))
	case 32:
		return T(bits.RotateLeft32(uint32(v), shift))
	default:
		return T(bits.RotateLeft64(uint64(v), shift))
	}
}

// RotateRight returns v rotated right by shift bits.  The shift may
// have any value; it is reduced modulo the width of T and a negative
// shift rotates to the left.
func RotateRight[T Unsigned](v T, shift int) T {
	if rotateSupport != Always {
		return fallback.RotateRight(v, shift)
	}

	// -shift overflows only for the smallest int, which is a
	// multiple of every width and thus rotates by 0 either way
	return RotateLeft(v, -shift)
}

// ByteSwap returns v with its bytes in reverse order.  An 8 bit value
// is returned unchanged.
func ByteSwap[T Unsigned](v T) T {
	if byteSwapSupport != Always {
		return fallback.ByteSwap(v)
	}

	switch fallback.Width[T]() {
	case 8:
		return v
	case 16:
		return T(bits.ReverseBytes16(uint16(v)))
	case 32:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}
