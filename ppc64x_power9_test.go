// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build ppc64.power9 || ppc64le.power9

package bitops

const power9 = true
