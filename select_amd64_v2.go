// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build amd64.v2 && !amd64.v3

package bitops

import "math/bits"

// GOAMD64=v2 guarantees POPCNT, so the compiler emits it for
// bits.OnesCount without a guard.  LZCNT and TZCNT are still probed.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Maybe
	trailingZerosSupport = Maybe
	rotateSupport        = Always
	byteSwapSupport      = Always
)

var insns = insnNames{"POPCNT", "LZCNT", "TZCNT", "ROL", "BSWAP"}

func hwPopCount32(x uint32) int      { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int      { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int  { return lzcnt32(x) }
func hwLeadingZeros64(x uint64) int  { return lzcnt64(x) }
func hwTrailingZeros32(x uint32) int { return tzcnt32(x) }
func hwTrailingZeros64(x uint64) int { return tzcnt64(x) }
