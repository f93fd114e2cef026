// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "math/bits"

// WebAssembly has popcnt, clz, ctz, and rotl for i32 and i64, but no
// byte reversal.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Always
	trailingZerosSupport = Always
	rotateSupport        = Always
	byteSwapSupport      = Never
)

var insns = insnNames{"i64.popcnt", "i64.clz", "i64.ctz", "i64.rotl", ""}

func hwPopCount32(x uint32) int      { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int      { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int  { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int  { return bits.LeadingZeros64(x) }
func hwTrailingZeros32(x uint32) int { return bits.TrailingZeros32(x) }
func hwTrailingZeros64(x uint64) int { return bits.TrailingZeros64(x) }
