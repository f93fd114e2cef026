// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "fmt"
import "os"
import "runtime"
import "testing"

// print the implementations under test so a CI log shows which
// instructions were exercised
func TestMain(m *testing.M) {
	f := BuildFacts()
	p := Probe()

	fmt.Printf("=== bitops dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s word=%d order=%s\n", runtime.GOOS, runtime.GOARCH, f.WordBits, nativeOrderName())
	fmt.Printf("%s=%q\n", EnvNoHW, os.Getenv(EnvNoHW))
	fmt.Printf("popcount      %-6s %-8s probed=%v\n", f.PopCount.Support, f.PopCount.Insn, p.PopCount)
	fmt.Printf("leadingzeros  %-6s %-8s probed=%v\n", f.LeadingZeros.Support, f.LeadingZeros.Insn, p.LeadingZeros)
	fmt.Printf("trailingzeros %-6s %-8s probed=%v\n", f.TrailingZeros.Support, f.TrailingZeros.Insn, p.TrailingZeros)
	fmt.Printf("rotate        %-6s %s\n", f.Rotate.Support, f.Rotate.Insn)
	fmt.Printf("byteswap      %-6s %s\n", f.ByteSwap.Support, f.ByteSwap.Insn)
	fmt.Printf("=======================\n\n")

	os.Exit(m.Run())
}
