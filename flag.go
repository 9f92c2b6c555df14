package binpack

// Flag is a single-byte bitset with eight independently addressable bits.
// The zero value has all bits clear.
//
// Bit ids are 0 through 7; that range is a precondition, not a checked
// argument. An out-of-range id addresses no bit: Set becomes a no-op and
// Get reports false, because shifting a byte by 8 or more yields zero.
type Flag struct {
	bits U8
}

// Set sets bit id when value is true and clears it otherwise.
func (f *Flag) Set(id uint8, value bool) {
	if value {
		f.bits |= U8(1) << id
	} else {
		f.bits &^= U8(1) << id
	}
}

// Get reports whether bit id is set.
func (f Flag) Get(id uint8) bool {
	return f.bits&(U8(1)<<id) != 0
}

// Pack delegates to the underlying byte's codec.
func (f Flag) Pack(littleEndian bool) []byte { return f.bits.Pack(littleEndian) }

// Size is always 1.
func (f Flag) Size() int { return f.bits.Size() }

// Unpack delegates to the underlying byte's codec.
func (f *Flag) Unpack(data []byte, littleEndian bool) error {
	return f.bits.Unpack(data, littleEndian)
}
