// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "runtime"

// Support describes whether the hardware instruction for a primitive
// can be used by a build.  It is fixed by the build target.
type Support uint8

const (
	// Never means there is no usable instruction; the portable
	// fallback is always used.
	Never Support = iota

	// Maybe means the instruction exists on some CPUs of the target
	// architecture.  It is used if the runtime probe finds it.
	Maybe

	// Always means the build target guarantees the instruction.
	Always
)

// String returns "never", "maybe", or "always".
func (s Support) String() string {
	switch s {
	case Never:
		return "never"
	case Maybe:
		return "maybe"
	case Always:
		return "always"
	default:
		return "unknown"
	}
}

// MarshalText encodes s as its String form.
func (s Support) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Feature is the build time support of one primitive.
type Feature struct {
	Support Support
	Insn    string // instruction mnemonic, empty if Support is Never
}

// Facts describes the build target as seen by the dispatcher.  One set
// of facts exists per build; it never changes while the program runs.
type Facts struct {
	Arch     string // GOARCH of the build
	WordBits int    // width of a machine word, 32 or 64

	PopCount      Feature
	LeadingZeros  Feature
	TrailingZeros Feature
	Rotate        Feature
	ByteSwap      Feature
}

// instruction mnemonics of the build target.  Each select_*.go file
// provides a value named insns.
type insnNames struct {
	popCount, leadingZeros, trailingZeros, rotate, byteSwap string
}

func feature(s Support, insn string) Feature {
	if s == Never {
		insn = ""
	}

	return Feature{Support: s, Insn: insn}
}

// BuildFacts returns the capability facts this package was built with.
func BuildFacts() Facts {
	return Facts{
		Arch:     runtime.GOARCH,
		WordBits: wordBits,

		PopCount:      feature(popCountSupport, insns.popCount),
		LeadingZeros:  feature(leadingZerosSupport, insns.leadingZeros),
		TrailingZeros: feature(trailingZerosSupport, insns.trailingZeros),
		Rotate:        feature(rotateSupport, insns.rotate),
		ByteSwap:      feature(byteSwapSupport, insns.byteSwap),
	}
}
