// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package bitops

// NativeByteOrder is the byte order of the build target.  It is only
// defined for architectures with a known byte order.
const NativeByteOrder = LittleEndian
