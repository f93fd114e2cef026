package bitops

import "fmt"

// This example shows the counting primitives.  The number 0x28 has
// the bits 3 and 5 set, so two bits are set in total, three zero bits
// precede the lowest set bit, and two zero bits follow the highest set
// bit in an 8 bit value.
func ExamplePopCount() {
	v := uint8(0x28)
	fmt.Println(PopCount(v), TrailingZeros(v), LeadingZeros(v))
	// Output: 2 3 2
}

// Rotations wrap the bits shifted out of one end around to the other.
// Shifts are taken modulo the width and may be negative.
func ExampleRotateLeft() {
	fmt.Printf("%#02x\n", RotateLeft(uint8(0x81), 1))
	fmt.Printf("%#02x\n", RotateLeft(uint8(0x81), -1))
	fmt.Printf("%#02x\n", RotateLeft(uint8(0x81), 9))
	// Output:
	// 0x03
	// 0xc0
	// 0x03
}

// BitFloor and BitCeil round to a power of two.
func ExampleBitCeil() {
	fmt.Println(BitFloor(uint32(1000)), BitCeil(uint32(1000)), BitWidth(uint32(1000)))
	// Output: 512 1024 10
}

func ExampleByteSwap() {
	fmt.Printf("%#08x\n", ByteSwap(uint32(0x12345678)))
	// Output: 0x78563412
}

func ExampleBitCast() {
	fmt.Printf("%#08x\n", BitCast[uint32](float32(1.0)))
	// Output: 0x3f800000
}
