// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build !amd64 && !386 && !arm64 && !arm && !ppc64 && !ppc64le && !wasm

package bitops

import "math/bits"

// portable fallbacks only

const (
	wordBits = bits.UintSize

	popCountSupport      = Never
	leadingZerosSupport  = Never
	trailingZerosSupport = Never
	rotateSupport        = Never
	byteSwapSupport      = Never
)

var insns insnNames

var (
	hwPopCount32      func(uint32) int
	hwPopCount64      func(uint64) int
	hwLeadingZeros32  func(uint32) int
	hwLeadingZeros64  func(uint64) int
	hwTrailingZeros32 func(uint32) int
	hwTrailingZeros64 func(uint64) int
)
