// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

// Package fallback implements every bit manipulation primitive using
// only shifts, masks, additions and multiplications.  The results are
// bit-identical on all architectures and serve both as the portable
// fallback of the dispatcher and as the reference for the hardware
// implementations.
//
// All masks and magic constants are derived from the width of the
// operand type, so a single generic function covers 8, 16, 32, and 64
// bit operands.
package fallback

import "fmt"
import "unsafe"

// Unsigned is the set of operand types understood by this package.
// Its width is that of the underlying type.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits in T.
func Width[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

// PopCount returns the number of set bits in v.  This is the SWAR
// algorithm: bit pairs are summed into 2 bit fields, then into nibbles,
// then all nibble sums are accumulated into the top byte through one
// multiplication.
func PopCount[T Unsigned](v T) int {
	ones := ^T(0)
	m1 := ones / 3        // 0x55...
	m2 := ones / 15 * 3   // 0x33...
	m4 := ones / 255 * 15 // 0x0f...
	h01 := ones / 255     // 0x01...
	shift := uint(Width[T]()/8-1) * 8

	v -= v >> 1 & m1
	v = v&m2 + v>>2&m2
	v = (v + v>>4) & m4

	return int(v * h01 >> shift)
}

// TrailingZeros returns the number of trailing zero bits in v.  The
// result is Width[T]() if v is zero.
func TrailingZeros[T Unsigned](v T) int {
	w := Width[T]()
	ones := ^T(0)

	// a zero operand is bumped to 1 so the search below always finds
	// a set bit; the missing w zero bits are added back at the end
	zero := b2i(v == 0)
	v += T(zero)

	lowest := v & -v
	n := w - 1
	for s := w / 2; s > 0; s >>= 1 {
		// ones/(2^s+1) selects the low s bits of every 2s bit group
		if lowest&(ones/(T(1)<<s+1)) != 0 {
			n -= s
		}
	}

	return n + w*zero
}

// LeadingZeros returns the number of leading zero bits in v.  The
// result is Width[T]() if v is zero.
func LeadingZeros[T Unsigned](v T) int {
	w := Width[T]()

	// smear the highest set bit into all positions below it
	for s := 1; s < w; s <<= 1 {
		v |= v >> s
	}

	return w - PopCount(v)
}

// TrailingOnes returns the number of trailing one bits in v.
func TrailingOnes[T Unsigned](v T) int {
	return TrailingZeros(^v)
}

// LeadingOnes returns the number of leading one bits in v.
func LeadingOnes[T Unsigned](v T) int {
	return LeadingZeros(^v)
}

// RotateLeft returns v rotated left by shift bits.  A negative shift
// rotates to the right.  The shift is reduced modulo the width first;
// a reduced shift of 0 leaves v unchanged as Go defines shifts by the
// full width to produce 0.
func RotateLeft[T Unsigned](v T, shift int) T {
	w := Width[T]()
	shift %= w

	// the two halves never overlap, so + is the same as |
	if shift < 0 {
		return v<<(w+shift) + v>>-shift
	}

	return v<<shift + v>>(w-shift)
}

// RotateRight returns v rotated right by shift bits.  A negative shift
// rotates to the left.
func RotateRight[T Unsigned](v T, shift int) T {
	w := Width[T]()
	shift %= w

	if shift < 0 {
		return v>>(w+shift) + v<<-shift
	}

	return v>>shift + v<<(w-shift)
}

// BitWidth returns the number of bits needed to represent v, 0 for 0.
func BitWidth[T Unsigned](v T) int {
	return Width[T]() - LeadingZeros(v)
}

// BitFloor returns the largest power of two not greater than v, or 0
// if v is 0.
func BitFloor[T Unsigned](v T) T {
	if v == 0 {
		return 0
	}

	return T(1) << (BitWidth(v) - 1)
}

// BitCeil returns the smallest power of two not less than v.  The
// second result is false if that power of two is not representable
// in T, in which case the first result is 0.
func BitCeil[T Unsigned](v T) (T, bool) {
	if v <= 1 {
		return 1, true
	}

	n := BitWidth(v - 1)
	if n >= Width[T]() {
		return 0, false
	}

	return T(1) << n, true
}

// HasSingleBit reports whether exactly one bit of v is set.
func HasSingleBit[T Unsigned](v T) bool {
	return PopCount(v) == 1
}

// ByteSwap returns v with the order of its bytes reversed.  The value
// is viewed as an array of bytes, reversed in place, and viewed as an
// integer again.
func ByteSwap[T Unsigned](v T) T {
	switch Width[T]() {
	case 16:
		b := Reinterpret[[2]byte](v)
		reverse(b[:])
		return Reinterpret[T](b)

	case 32:
		b := Reinterpret[[4]byte](v)
		reverse(b[:])
		return Reinterpret[T](b)

	case 64:
		b := Reinterpret[[8]byte](v)
		reverse(b[:])
		return Reinterpret[T](b)

	default:
		return v
	}
}

// reverse the bytes in b, swapping from both ends inward
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Reinterpret copies the bit pattern of src into a value of type To.
// The caller must ensure that both types have the same size and hold
// no pointers.
func Reinterpret[To, From any](src From) To {
	return *(*To)(unsafe.Pointer(&src))
}

// CeilError reports an operand whose bit ceiling does not fit into
// its type.  It implements runtime.Error.
type CeilError struct {
	Value uint64 // operand of BitCeil
	Width int    // width of the operand type
}

func (e *CeilError) Error() string {
	return fmt.Sprintf("bitops: bit ceiling of %d not representable in %d bits", e.Value, e.Width)
}

// RuntimeError marks CeilError as a runtime.Error.
func (e *CeilError) RuntimeError() {}
