package binpack

import "strconv"

// Pack encodes each value in argument order under one byte order and
// concatenates the results. Encoding never fails; the output length is the
// sum of the values' sizes.
//
// Values are passed as pointers because Packable's Unpack method needs a
// pointer receiver; Pack itself never mutates them.
func Pack(littleEndian bool, values ...Packable) []byte {
	size := 0
	for _, v := range values {
		size += v.Size()
	}
	buf := make([]byte, 0, size)
	for _, v := range values {
		buf = append(buf, v.Pack(littleEndian)...)
	}
	return buf
}

// Unpack decodes each target in argument order from the front of data,
// advancing a cursor by each field's size, and returns the undecoded tail.
//
// Before decoding a field, Unpack checks that enough input remains; if not,
// it fails with ErrShortBuffer carrying the field's index and the
// expected/actual byte counts, leaving that field and every later one
// untouched. Fields decoded before the failure keep their new values.
// The input slice itself is never modified.
func Unpack(data []byte, littleEndian bool, targets ...Packable) ([]byte, error) {
	for i, t := range targets {
		size := t.Size()
		if len(data) < size {
			return data, newFieldUnpackError(ErrShortBuffer, strconv.Itoa(i), size, len(data))
		}
		if err := t.Unpack(data[:size:size], littleEndian); err != nil {
			return data, err
		}
		data = data[size:]
	}
	return data, nil
}
