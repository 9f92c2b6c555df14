// Package testing provides test fixtures for binpack.
package testing

import (
	"github.com/zoobzio/binpack"
)

// SimpleHeader is a fixture with only native scalar fields.
type SimpleHeader struct {
	Version uint8
	Count   uint16
	Crc     uint32
}

// SimpleHeaderSize is the fixed encoded size of SimpleHeader.
const SimpleHeaderSize = 7

// FullFrame is a fixture exercising every field strategy the processor
// supports: nested structs, floats, capability types, sized slices, and
// skipped fields.
type FullFrame struct {
	Header   SimpleHeader
	Ratio    float64
	Offset   int32
	Flags    binpack.Flag
	Sequence binpack.U128
	Nonce    []byte `bin:"size=4"`
	Note     string `bin:"-"`
}

// FullFrameSize is the fixed encoded size of FullFrame.
const FullFrameSize = SimpleHeaderSize + 8 + 4 + 1 + 16 + 4

// SampleFrame returns a populated FullFrame for round-trip tests.
func SampleFrame() *FullFrame {
	frame := &FullFrame{
		Header:   SimpleHeader{Version: 3, Count: 1024, Crc: 0xDEADBEEF},
		Ratio:    42.74,
		Offset:   -42,
		Sequence: binpack.U128{Hi: 1, Lo: 2},
		Nonce:    []byte{0xCA, 0xFE, 0xBA, 0xBE},
		Note:     "never serialized",
	}
	frame.Flags.Set(0, true)
	frame.Flags.Set(3, true)
	return frame
}
