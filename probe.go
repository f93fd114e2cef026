// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "os"
import "strconv"
import "strings"
import "sync"

// Capabilities records which hardware instructions the dispatcher uses
// for the primitives whose support depends on the running CPU.  For a
// primitive the build target always supports, the field is true; if the
// target never supports it, the field is false.
type Capabilities struct {
	PopCount      bool // population count (POPCNT)
	LeadingZeros  bool // leading zero count (LZCNT)
	TrailingZeros bool // trailing zero count (TZCNT, BMI1)
}

// EnvNoHW names the environment variable that disables probed
// instructions.  It holds either a boolean or a comma separated list
// of "popcnt", "lzcnt", and "tzcnt".  It is read once, together with
// the first probe, and does not affect instructions the build target
// guarantees.
const EnvNoHW = "BITOPS_NOHW"

// snapshot computed on first use
var probe = newProbe(detect)

// newProbe returns a function that computes the capability snapshot
// from the build time facts, the capabilities found by detect, and
// EnvNoHW.  detect runs at most once, on the first call, and only if
// some primitive is probed at runtime.  Concurrent first callers wait
// for it and all callers get the same snapshot.
func newProbe(detect func() Capabilities) func() Capabilities {
	return sync.OnceValue(func() Capabilities {
		var cpu Capabilities
		if popCountSupport == Maybe || leadingZerosSupport == Maybe || trailingZerosSupport == Maybe {
			cpu = detect().without(parseNoHW(os.Getenv(EnvNoHW)))
		}

		return Capabilities{
			PopCount:      resolve(popCountSupport, cpu.PopCount),
			LeadingZeros:  resolve(leadingZerosSupport, cpu.LeadingZeros),
			TrailingZeros: resolve(trailingZerosSupport, cpu.TrailingZeros),
		}
	})
}

// Probe returns the runtime capability snapshot.  The CPU is examined
// on the first call only; all callers, including concurrent first
// callers, observe the same result.
func Probe() Capabilities {
	return probe()
}

func resolve(s Support, detected bool) bool {
	switch s {
	case Always:
		return true
	case Maybe:
		return detected
	default:
		return false
	}
}

// clear all capabilities set in off
func (c Capabilities) without(off Capabilities) Capabilities {
	return Capabilities{
		PopCount:      c.PopCount && !off.PopCount,
		LeadingZeros:  c.LeadingZeros && !off.LeadingZeros,
		TrailingZeros: c.TrailingZeros && !off.TrailingZeros,
	}
}

// parse the value of EnvNoHW into the set of disabled capabilities.
// Unknown names are ignored.
func parseNoHW(val string) Capabilities {
	var off Capabilities

	val = strings.TrimSpace(val)
	if val == "" {
		return off
	}

	if b, err := strconv.ParseBool(val); err == nil {
		return Capabilities{b, b, b}
	}

	for _, name := range strings.Split(val, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all":
			off = Capabilities{true, true, true}
		case "popcnt":
			off.PopCount = true
		case "lzcnt", "abm":
			off.LeadingZeros = true
		case "tzcnt", "bmi", "bmi1":
			off.TrailingZeros = true
		}
	}

	return off
}
