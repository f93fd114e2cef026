// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// i386 has 32 bit instructions only; 64 bit operations are split into
// two 32 bit halves.  POPCNT, LZCNT, and TZCNT are probed at runtime.

const (
	wordBits = 32

	popCountSupport      = Maybe
	leadingZerosSupport  = Maybe
	trailingZerosSupport = Maybe
	rotateSupport        = Always
	byteSwapSupport      = Always
)

var insns = insnNames{"POPCNT", "LZCNT", "TZCNT", "ROL", "BSWAP"}

func hwPopCount32(x uint32) int      { return popcnt32(x) }
func hwPopCount64(x uint64) int      { return popCount64Split(x, popcnt32) }
func hwLeadingZeros32(x uint32) int  { return lzcnt32(x) }
func hwLeadingZeros64(x uint64) int  { return leadingZeros64Split(x, lzcnt32) }
func hwTrailingZeros32(x uint32) int { return tzcnt32(x) }
func hwTrailingZeros64(x uint64) int { return trailingZeros64Split(x, tzcnt32) }
