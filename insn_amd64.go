// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// instructions of the POPCNT, ABM, and BMI1 extensions.  These must
// only be called if the runtime probe found the extension.
func popcnt32(x uint32) int
func popcnt64(x uint64) int
func lzcnt32(x uint32) int
func lzcnt64(x uint64) int
func tzcnt32(x uint32) int
func tzcnt64(x uint64) int

// execute the CPUID instruction
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
