// Package binpack provides byte-order-aware binary packing for fixed-width
// values and flat records.
//
// The package converts fixed-width scalars, fixed-size byte blocks, and
// bit-flag fields into deterministic byte sequences and back. Byte order is
// chosen per call, so the same value set can target little-endian and
// big-endian wire formats without separate code paths.
//
// # Wire Format
//
// A packed record is the concatenation of each field's fixed-size encoding,
// in argument order, under one byte order applied uniformly to the whole
// call. There is no padding, no alignment, and no length prefixing; the
// layout is fully determined by the field list.
//
// # Basic Usage
//
// Pack and unpack an ordered field list:
//
//	version := binpack.U8(1)
//	sequence := binpack.U16(42)
//	var flags binpack.Flag
//	flags.Set(3, true)
//
//	wire := binpack.Pack(true, &version, &sequence, &flags)
//
//	var v binpack.U8
//	var s binpack.U16
//	var f binpack.Flag
//	rest, err := binpack.Unpack(wire, true, &v, &s, &f)
//
// Unpack consumes exactly the bytes the targets declare and returns the
// undecoded tail. If the remaining input is shorter than the next field's
// size, it fails with ErrShortBuffer before touching that field; fields
// decoded earlier in the same call keep their new values.
//
// # Records
//
// The Processor packs annotated structs without hand-written field lists:
//
//	type Header struct {
//	    Version  uint8
//	    Length   uint16
//	    Checksum [4]byte
//	    Internal string `bin:"-"`
//	}
//
//	proc, _ := binpack.NewProcessor[Header](true)
//	data, _ := proc.Marshal(ctx, &hdr)
//	hdr2, _ := proc.Unmarshal(ctx, data)
//
// Field layout follows declaration order. The bin tag controls
// participation: "-" skips a field, "size=N" gives a []byte field a fixed
// N-byte layout. Types whose pointer implements Packable are packed through
// their own codec, bypassing reflection, provided their size is fixed per
// type; a Bytes field is rejected at construction because its size is set
// per value, leaving the record without a fixed width. Use a sized []byte
// field for raw blocks in records.
//
// # Errors
//
// Decode failures are recoverable and checkable with errors.Is:
//
//   - ErrShortBuffer: remaining input is shorter than the next field's size
//   - ErrTruncated: a fixed-width conversion received the wrong slice length
//
// Both carry expected/actual byte counts via UnpackError. Encoding never
// fails.
package binpack

// Packable is the capability every serializable value implements: encode
// under a requested byte order, report the fixed encoded size, and decode
// in place from the front of a buffer.
//
// Implementations must keep Size value-independent and must not read past
// Size bytes of the data given to Unpack. Pack must not mutate the receiver.
// Unpack requires a pointer receiver, so values participate in Pack and
// Unpack calls as pointers.
type Packable interface {
	// Pack encodes the value, least-significant byte first when
	// littleEndian is true, most-significant byte first otherwise.
	Pack(littleEndian bool) []byte

	// Size returns the number of bytes Pack produces and Unpack consumes.
	// It depends only on the type (and, for byte blocks, the declared
	// length), never on the value.
	Size() int

	// Unpack overwrites the receiver from the first Size bytes of data
	// under the requested order. On error the receiver's value is
	// unspecified but always memory-safe.
	Unpack(data []byte, littleEndian bool) error
}
