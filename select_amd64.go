// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build !amd64.v2

package bitops

// The x86-64 baseline guarantees neither POPCNT, nor LZCNT, nor TZCNT.
// All three are probed at runtime.  Rotation and byte swapping are
// part of the base instruction set.

const (
	wordBits = 64

	popCountSupport      = Maybe
	leadingZerosSupport  = Maybe
	trailingZerosSupport = Maybe
	rotateSupport        = Always
	byteSwapSupport      = Always
)

var insns = insnNames{"POPCNT", "LZCNT", "TZCNT", "ROL", "BSWAP"}

func hwPopCount32(x uint32) int      { return popcnt32(x) }
func hwPopCount64(x uint64) int      { return popcnt64(x) }
func hwLeadingZeros32(x uint32) int  { return lzcnt32(x) }
func hwLeadingZeros64(x uint64) int  { return lzcnt64(x) }
func hwTrailingZeros32(x uint32) int { return tzcnt32(x) }
func hwTrailingZeros64(x uint64) int { return tzcnt64(x) }
