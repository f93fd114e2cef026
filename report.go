// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

// Selection describes the implementation the dispatcher uses for one
// primitive at one operand width.
type Selection struct {
	Op      string  // name of the primitive
	Width   int     // operand width in bits
	Support Support // build time support of the instruction
	Impl    string  // instruction mnemonic, or "generic" for the fallback
	Split   bool    // carried out as two 32 bit operations
}

// operand widths in the order they are reported
var widths = [...]int{8, 16, 32, 64}

// pick the first available implementation
func selectImpl(op string, funcs []countImpl) countImpl {
	for _, f := range funcs {
		if f.available {
			return f
		}
	}

	panic("no implementation of " + op + " available")
}

// Selections returns the implementation chosen for each primitive and
// width.  Derived operations use the implementation of the primitive
// they are built on.  Calling Selections runs the runtime probe if it
// has not run yet.
func Selections() []Selection {
	counts := []struct {
		op      string
		support Support
		funcs   []countImpl
	}{
		{"popcount", popCountSupport, popCountFuncs()},
		{"leadingzeros", leadingZerosSupport, leadingZerosFuncs()},
		{"trailingzeros", trailingZerosSupport, trailingZerosFuncs()},
	}

	sel := make([]Selection, 0, 5*len(widths))
	for _, c := range counts {
		impl := selectImpl(c.op, c.funcs)
		for _, w := range widths {
			sel = append(sel, Selection{
				Op:      c.op,
				Width:   w,
				Support: c.support,
				Impl:    impl.name,
				Split:   w == 64 && wordBits == 32 && impl.name != genericName,
			})
		}
	}

	rotate, byteSwap := genericName, genericName
	if rotateSupport == Always {
		rotate = insns.rotate
	}

	if byteSwapSupport == Always {
		byteSwap = insns.byteSwap
	}

	for _, w := range widths {
		sel = append(sel, Selection{Op: "rotate", Width: w, Support: rotateSupport, Impl: rotate})
	}

	for _, w := range widths {
		impl := byteSwap
		if w == 8 {
			impl = "identity"
		}

		sel = append(sel, Selection{Op: "byteswap", Width: w, Support: byteSwapSupport, Impl: impl})
	}

	return sel
}
