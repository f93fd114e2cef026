// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// instructions of the POPCNT, ABM, and BMI1 extensions.  These must
// only be called if the runtime probe found the extension.  There are
// no 64 bit forms on this architecture.
func popcnt32(x uint32) int
func lzcnt32(x uint32) int
func tzcnt32(x uint32) int

// execute the CPUID instruction
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
