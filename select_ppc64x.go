// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build (ppc64 || ppc64le) && !ppc64.power9 && !ppc64le.power9

package bitops

import "math/bits"

// POWER8 has POPCNTD and CNTLZD.  CNTTZD only appeared with POWER9,
// see select_ppc64x_power9.go, and BRD with POWER10.

const (
	wordBits = 64

	popCountSupport      = Always
	leadingZerosSupport  = Always
	trailingZerosSupport = Never
	rotateSupport        = Always
	byteSwapSupport      = Never
)

var insns = insnNames{"POPCNTD", "CNTLZD", "", "ROTLD", ""}

var (
	hwTrailingZeros32 func(uint32) int
	hwTrailingZeros64 func(uint64) int
)

func hwPopCount32(x uint32) int     { return bits.OnesCount32(x) }
func hwPopCount64(x uint64) int     { return bits.OnesCount64(x) }
func hwLeadingZeros32(x uint32) int { return bits.LeadingZeros32(x) }
func hwLeadingZeros64(x uint64) int { return bits.LeadingZeros64(x) }
