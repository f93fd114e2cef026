// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build mips || mips64 || ppc64 || s390x

package bitops

// NativeByteOrder is the byte order of the build target.  It is only
// defined for architectures with a known byte order.
const NativeByteOrder = BigEndian
