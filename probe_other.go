// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

//go:build !386 && !amd64

package bitops

// Support on other architectures is known at build time, so nothing
// is ever probed.
func detect() Capabilities {
	return Capabilities{}
}
