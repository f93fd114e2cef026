// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build !(386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm || mips || mips64 || ppc64 || s390x)

package bitops

func nativeOrderName() string {
	return "unknown"
}
