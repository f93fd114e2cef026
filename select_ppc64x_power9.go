// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build ppc64.power9 || ppc64le.power9

package bitops

import "math/bits"

// GOPPC64=power9 and later guarantee CNTTZD in addition to the POWER8
// count instructions.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Always
	trailingZerosSupport = Always
	rotateSupport        = Always
	byteSwapSupport      = Never
)

var insns = insnNames{"POPCNTD", "CNTLZD", "CNTTZD", "ROTLD", ""}

func hwPopCount32(x uint32) int      { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int      { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int  { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int  { return bits.LeadingZeros64(x) }
func hwTrailingZeros32(x uint32) int { return bits.TrailingZeros32(x) }
func hwTrailingZeros64(x uint64) int { return bits.TrailingZeros64(x) }
