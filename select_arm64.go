// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "math/bits"

// ARMv8 always has CLZ and RBIT, and CNT in the SIMD unit.  The
// compiler emits them for the math/bits intrinsics.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Always
	trailingZerosSupport = Always
	rotateSupport        = Always
	byteSwapSupport      = Always
)

var insns = insnNames{"CNT", "CLZ", "RBIT+CLZ", "ROR", "REV"}

func hwPopCount32(x uint32) int      { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int      { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int  { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int  { return bits.LeadingZeros64(x) }
func hwTrailingZeros32(x uint32) int { return bits.TrailingZeros32(x) }
func hwTrailingZeros64(x uint64) int { return bits.TrailingZeros64(x) }
