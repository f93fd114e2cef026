// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build amd64.v3

package bitops

import "math/bits"

// GOAMD64=v3 guarantees POPCNT, LZCNT, and BMI1.  The compiler emits
// these instructions for the math/bits intrinsics directly.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Always
	trailingZerosSupport = Always
	rotateSupport        = Always
	byteSwapSupport      = Always
)

var insns = insnNames{"POPCNT", "LZCNT", "TZCNT", "ROL", "BSWAP"}

func hwPopCount32(x uint32) int      { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int      { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int  { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int  { return bits.LeadingZeros64(x) }
func hwTrailingZeros32(x uint32) int { return bits.TrailingZeros32(x) }
func hwTrailingZeros64(x uint64) int { return bits.TrailingZeros64(x) }
