// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitops

import "encoding/binary"

// ByteOrder is the order in which the bytes of an integer are stored
// in memory.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota // least significant byte first
	BigEndian                     // most significant byte first
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// Binary returns the encoding/binary byte order for o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
