// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "math/bits"

// 32 bit ARM has CLZ since ARMv5, but no population count or byte
// reversal instruction available at GOARM=5.  64 bit leading zero
// counts are split into two 32 bit halves.

const (
	wordBits = 32

	popCountSupport      = Never
	leadingZerosSupport  = Always
	trailingZerosSupport = Never
	rotateSupport        = Always
	byteSwapSupport      = Never
)

var insns = insnNames{"", "CLZ", "", "ROR", ""}

var (
	hwPopCount32      func(uint32) int
	hwPopCount64      func(uint64) int
	hwTrailingZeros32 func(uint32) int
	hwTrailingZeros64 func(uint64) int
)

func hwLeadingZeros32(x uint32) int { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int { return leadingZeros64Split(x, bits.LeadingZeros32) }
