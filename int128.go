package binpack

// U128 is an unsigned 128-bit integer held as two 64-bit halves. Go has no
// native 128-bit scalar, so the halves are explicit; Hi carries the
// most-significant 64 bits.
type U128 struct {
	Hi uint64
	Lo uint64
}

// Pack encodes the full 16-byte value. Little-endian places the low half's
// least-significant byte first; big-endian places the high half's
// most-significant byte first.
func (v U128) Pack(littleEndian bool) []byte {
	buf := make([]byte, 0, width128)
	if littleEndian {
		buf = appendUint(buf, v.Lo, width64, true)
		buf = appendUint(buf, v.Hi, width64, true)
	} else {
		buf = appendUint(buf, v.Hi, width64, false)
		buf = appendUint(buf, v.Lo, width64, false)
	}
	return buf
}

func (v U128) Size() int { return width128 }

func (v *U128) Unpack(data []byte, littleEndian bool) error {
	if len(data) < width128 {
		return newUnpackError(ErrTruncated, width128, len(data))
	}
	if littleEndian {
		v.Lo = readUint(data[:width64], width64, true)
		v.Hi = readUint(data[width64:width128], width64, true)
	} else {
		v.Hi = readUint(data[:width64], width64, false)
		v.Lo = readUint(data[width64:width128], width64, false)
	}
	return nil
}

// I128 is a signed two's-complement 128-bit integer. The sign lives in the
// high half; the low half is the unsigned low 64 bits.
type I128 struct {
	Hi int64
	Lo uint64
}

func (v I128) Pack(littleEndian bool) []byte {
	return U128{Hi: uint64(v.Hi), Lo: v.Lo}.Pack(littleEndian)
}

func (v I128) Size() int { return width128 }

func (v *I128) Unpack(data []byte, littleEndian bool) error {
	var u U128
	if err := u.Unpack(data, littleEndian); err != nil {
		return err
	}
	v.Hi = int64(u.Hi)
	v.Lo = u.Lo
	return nil
}
