// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/clausecker/bitops"
	"github.com/clausecker/bitops/bitconst"
)

// kind of value an operation yields
type resultKind int

const (
	valueResult resultKind = iota // a value of the operand type
	countResult                   // a bit count of type int
	boolResult                    // a predicate
)

// result of one operation.  For a boolResult, val is 0 or 1.
type result struct {
	kind resultKind
	val  uint64
}

func (r result) String() string {
	switch r.kind {
	case countResult:
		return strconv.FormatUint(r.val, 10)
	case boolResult:
		return strconv.FormatBool(r.val != 0)
	default:
		return fmt.Sprintf("%d (%#x)", r.val, r.val)
	}
}

// literal returns r as a Go constant expression.
func (r result) literal() string {
	switch r.kind {
	case boolResult:
		return strconv.FormatBool(r.val != 0)
	case valueResult:
		return fmt.Sprintf("%#x", r.val)
	default:
		return strconv.FormatUint(r.val, 10)
	}
}

// operation names, in the order they are listed in usage messages
var opNames = []string{
	"popcount", "leadingzeros", "trailingzeros", "leadingones", "trailingones",
	"rotl", "rotr", "byteswap", "bitwidth", "bitfloor", "bitceil", "hassinglebit",
}

// operations taking a shift operand
func takesShift(op string) bool {
	return op == "rotl" || op == "rotr"
}

var errUnknownOp = errors.New("unknown operation")

// one implementation of each primitive at type T
type opSet[T bitops.Unsigned] struct {
	popCount, leadingZeros, trailingZeros func(T) int
	leadingOnes, trailingOnes, bitWidth   func(T) int
	rotateLeft, rotateRight               func(T, int) T
	byteSwap, bitFloor                    func(T) T
	bitCeil                               func(T) (T, error)
	hasSingleBit                          func(T) bool
}

// the portable implementations of package bitconst
func constOps[T bitops.Unsigned]() opSet[T] {
	return opSet[T]{
		popCount:      bitconst.PopCount[T],
		leadingZeros:  bitconst.LeadingZeros[T],
		trailingZeros: bitconst.TrailingZeros[T],
		leadingOnes:   bitconst.LeadingOnes[T],
		trailingOnes:  bitconst.TrailingOnes[T],
		bitWidth:      bitconst.BitWidth[T],
		rotateLeft:    bitconst.RotateLeft[T],
		rotateRight:   bitconst.RotateRight[T],
		byteSwap:      bitconst.ByteSwap[T],
		bitFloor:      bitconst.BitFloor[T],
		bitCeil:       bitconst.CheckedBitCeil[T],
		hasSingleBit:  bitconst.HasSingleBit[T],
	}
}

// the dispatched implementations of package bitops
func dispatchOps[T bitops.Unsigned]() opSet[T] {
	return opSet[T]{
		popCount:      bitops.PopCount[T],
		leadingZeros:  bitops.LeadingZeros[T],
		trailingZeros: bitops.TrailingZeros[T],
		leadingOnes:   bitops.LeadingOnes[T],
		trailingOnes:  bitops.TrailingOnes[T],
		bitWidth:      bitops.BitWidth[T],
		rotateLeft:    bitops.RotateLeft[T],
		rotateRight:   bitops.RotateRight[T],
		byteSwap:      bitops.ByteSwap[T],
		bitFloor:      bitops.BitFloor[T],
		bitCeil:       recoverCeil[T],
		hasSingleBit:  bitops.HasSingleBit[T],
	}
}

// turn the panic of bitops.BitCeil into an error
func recoverCeil[T bitops.Unsigned](v T) (c T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*bitops.CeilError)
			if !ok {
				panic(r)
			}

			err = ce
		}
	}()

	return bitops.BitCeil(v), nil
}

func (s opSet[T]) eval(op string, v T, shift int) (result, error) {
	count := func(n int) (result, error) { return result{countResult, uint64(n)}, nil }
	value := func(x T) (result, error) { return result{valueResult, uint64(x)}, nil }

	switch op {
	case "popcount":
		return count(s.popCount(v))
	case "leadingzeros":
		return count(s.leadingZeros(v))
	case "trailingzeros":
		return count(s.trailingZeros(v))
	case "leadingones":
		return count(s.leadingOnes(v))
	case "trailingones":
		return count(s.trailingOnes(v))
	case "bitwidth":
		return count(s.bitWidth(v))
	case "rotl":
		return value(s.rotateLeft(v, shift))
	case "rotr":
		return value(s.rotateRight(v, shift))
	case "byteswap":
		return value(s.byteSwap(v))
	case "bitfloor":
		return value(s.bitFloor(v))
	case "bitceil":
		c, err := s.bitCeil(v)
		if err != nil {
			return result{}, err
		}

		return value(c)
	case "hassinglebit":
		if s.hasSingleBit(v) {
			return result{boolResult, 1}, nil
		}

		return result{boolResult, 0}, nil
	default:
		return result{}, fmt.Errorf("%w %q", errUnknownOp, op)
	}
}

// an operation with its operands, as given on the command line
type expr struct {
	op      string
	operand string
	shift   string // empty if not given
}

func (e expr) String() string {
	if e.shift == "" {
		return e.op + ":" + e.operand
	}

	return e.op + ":" + e.operand + "," + e.shift
}

// evaluate e at type T using the operations of s
func evalExpr[T bitops.Unsigned](s opSet[T], e expr) (result, error) {
	w := bitops.Width[T]()
	v, err := strconv.ParseUint(e.operand, 0, w)
	if err != nil {
		return result{}, fmt.Errorf("operand of %s: %w", e, err)
	}

	var shift int
	switch {
	case takesShift(e.op) && e.shift == "":
		return result{}, fmt.Errorf("%s: %s needs a shift", e, e.op)
	case !takesShift(e.op) && e.shift != "":
		return result{}, fmt.Errorf("%s: %s takes no shift", e, e.op)
	case e.shift != "":
		shift, err = strconv.Atoi(e.shift)
		if err != nil {
			return result{}, fmt.Errorf("shift of %s: %w", e, err)
		}
	}

	r, err := s.eval(e.op, T(v), shift)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", e, err)
	}

	return r, nil
}

// operand types understood by eval and gen
var typeNames = []string{"uint8", "uint16", "uint32", "uint64"}

var errUnknownType = errors.New("unknown operand type")

// evaluate e at the named type, through the dispatcher if dispatch is
// set, otherwise through the portable implementations
func evaluate(typ string, e expr, dispatch bool) (result, error) {
	switch typ {
	case "uint8":
		return evalAt[uint8](e, dispatch)
	case "uint16":
		return evalAt[uint16](e, dispatch)
	case "uint32":
		return evalAt[uint32](e, dispatch)
	case "uint64":
		return evalAt[uint64](e, dispatch)
	default:
		return result{}, fmt.Errorf("%w %q", errUnknownType, typ)
	}
}

func evalAt[T bitops.Unsigned](e expr, dispatch bool) (result, error) {
	if dispatch {
		return evalExpr(dispatchOps[T](), e)
	}

	return evalExpr(constOps[T](), e)
}
