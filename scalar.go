package binpack

import (
	"encoding/binary"
	"math"
)

// Fixed byte widths of the scalar codecs.
const (
	width8   = 1
	width16  = 2
	width32  = 4
	width64  = 8
	width128 = 16
)

// integer covers every native fixed-width integer a scalar codec wraps.
type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wireOrder combines the read and append views of an encoding/binary order.
type wireOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// byteOrder maps the per-call flag onto an encoding/binary order.
func byteOrder(littleEndian bool) wireOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// appendUint appends the low width bytes of u under the requested order.
// Signed values arrive here already two's-complement extended into a uint64,
// so truncating to width bytes preserves their bit pattern.
func appendUint(dst []byte, u uint64, width int, littleEndian bool) []byte {
	order := byteOrder(littleEndian)
	switch width {
	case width8:
		return append(dst, byte(u))
	case width16:
		return order.AppendUint16(dst, uint16(u))
	case width32:
		return order.AppendUint32(dst, uint32(u))
	default:
		return order.AppendUint64(dst, u)
	}
}

// readUint reads exactly width bytes from the front of data under the
// requested order. Callers guarantee len(data) >= width.
func readUint(data []byte, width int, littleEndian bool) uint64 {
	order := byteOrder(littleEndian)
	switch width {
	case width8:
		return uint64(data[0])
	case width16:
		return uint64(order.Uint16(data))
	case width32:
		return uint64(order.Uint32(data))
	default:
		return order.Uint64(data)
	}
}

// signExtend widens the low width bytes of u into a signed 64-bit value,
// preserving the two's-complement sign bit of the narrow width.
func signExtend(u uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(u<<shift) >> shift
}

// packInteger is the single encode implementation shared by every integer
// codec, so all widths get identical byte-order semantics.
func packInteger[T integer](v T, width int, littleEndian bool) []byte {
	return appendUint(make([]byte, 0, width), uint64(v), width, littleEndian)
}

// unpackInteger is the single decode implementation shared by every integer
// codec. It reinterprets exactly width bytes from the front of data and
// fails with ErrTruncated when fewer are available.
func unpackInteger[T integer](v *T, data []byte, width int, littleEndian bool) error {
	if len(data) < width {
		return newUnpackError(ErrTruncated, width, len(data))
	}
	*v = T(readUint(data, width, littleEndian))
	return nil
}

// U8 is an unsigned 8-bit integer.
type U8 uint8

func (v U8) Pack(littleEndian bool) []byte { return packInteger(v, width8, littleEndian) }
func (v U8) Size() int                     { return width8 }
func (v *U8) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width8, littleEndian)
}

// U16 is an unsigned 16-bit integer.
type U16 uint16

func (v U16) Pack(littleEndian bool) []byte { return packInteger(v, width16, littleEndian) }
func (v U16) Size() int                     { return width16 }
func (v *U16) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width16, littleEndian)
}

// U32 is an unsigned 32-bit integer.
type U32 uint32

func (v U32) Pack(littleEndian bool) []byte { return packInteger(v, width32, littleEndian) }
func (v U32) Size() int                     { return width32 }
func (v *U32) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width32, littleEndian)
}

// U64 is an unsigned 64-bit integer.
type U64 uint64

func (v U64) Pack(littleEndian bool) []byte { return packInteger(v, width64, littleEndian) }
func (v U64) Size() int                     { return width64 }
func (v *U64) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width64, littleEndian)
}

// I8 is a signed 8-bit integer.
type I8 int8

func (v I8) Pack(littleEndian bool) []byte { return packInteger(v, width8, littleEndian) }
func (v I8) Size() int                     { return width8 }
func (v *I8) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width8, littleEndian)
}

// I16 is a signed 16-bit integer.
type I16 int16

func (v I16) Pack(littleEndian bool) []byte { return packInteger(v, width16, littleEndian) }
func (v I16) Size() int                     { return width16 }
func (v *I16) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width16, littleEndian)
}

// I32 is a signed 32-bit integer.
type I32 int32

func (v I32) Pack(littleEndian bool) []byte { return packInteger(v, width32, littleEndian) }
func (v I32) Size() int                     { return width32 }
func (v *I32) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width32, littleEndian)
}

// I64 is a signed 64-bit integer.
type I64 int64

func (v I64) Pack(littleEndian bool) []byte { return packInteger(v, width64, littleEndian) }
func (v I64) Size() int                     { return width64 }
func (v *I64) Unpack(data []byte, littleEndian bool) error {
	return unpackInteger(v, data, width64, littleEndian)
}

// F32 is an IEEE 754 32-bit float. It packs its raw bit pattern through the
// shared integer core; no rounding or reinterpretation happens.
type F32 float32

func (v F32) Pack(littleEndian bool) []byte {
	return packInteger(math.Float32bits(float32(v)), width32, littleEndian)
}

func (v F32) Size() int { return width32 }

func (v *F32) Unpack(data []byte, littleEndian bool) error {
	var bits uint32
	if err := unpackInteger(&bits, data, width32, littleEndian); err != nil {
		return err
	}
	*v = F32(math.Float32frombits(bits))
	return nil
}

// F64 is an IEEE 754 64-bit float.
type F64 float64

func (v F64) Pack(littleEndian bool) []byte {
	return packInteger(math.Float64bits(float64(v)), width64, littleEndian)
}

func (v F64) Size() int { return width64 }

func (v *F64) Unpack(data []byte, littleEndian bool) error {
	var bits uint64
	if err := unpackInteger(&bits, data, width64, littleEndian); err != nil {
		return err
	}
	*v = F64(math.Float64frombits(bits))
	return nil
}
