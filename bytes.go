package binpack

// Bytes is a fixed-size byte block. The block's size is the length the
// caller constructed it with; Unpack fills exactly that many bytes, so a
// zeroed make([]byte, n) is a decode target for an n-byte block.
//
// Byte order has no effect on a block: it is already raw bytes.
type Bytes []byte

// Pack returns a copy of the block. The order flag is accepted for the
// capability contract but ignored.
func (b Bytes) Pack(_ bool) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Size returns the block's fixed length.
func (b Bytes) Size() int { return len(b) }

// Unpack copies the first Size bytes of data into the block, overwriting
// every position. It fails with ErrShortBuffer when data is shorter than
// the block instead of indexing out of range.
func (b *Bytes) Unpack(data []byte, _ bool) error {
	if len(data) < len(*b) {
		return newUnpackError(ErrShortBuffer, len(*b), len(data))
	}
	copy(*b, data[:len(*b)])
	return nil
}
