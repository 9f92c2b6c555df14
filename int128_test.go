package binpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestU128_Pack(t *testing.T) {
	v := U128{Hi: 1, Lo: 2}

	wantLE := []byte{2, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}
	wantBE := []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 2}

	if got := v.Pack(true); !bytes.Equal(got, wantLE) {
		t.Errorf("Pack(true) = %v, want %v", got, wantLE)
	}
	if got := v.Pack(false); !bytes.Equal(got, wantBE) {
		t.Errorf("Pack(false) = %v, want %v", got, wantBE)
	}
}

func TestI128_Pack_Negative(t *testing.T) {
	// -42 in 128-bit two's complement.
	v := I128{Hi: -1, Lo: 0xFFFFFFFFFFFFFFD6}

	wantLE := append([]byte{214}, bytes.Repeat([]byte{255}, 15)...)
	wantBE := append(bytes.Repeat([]byte{255}, 15), 214)

	if got := v.Pack(true); !bytes.Equal(got, wantLE) {
		t.Errorf("Pack(true) = %v, want %v", got, wantLE)
	}
	if got := v.Pack(false); !bytes.Equal(got, wantBE) {
		t.Errorf("Pack(false) = %v, want %v", got, wantBE)
	}
}

func TestInt128_RoundTrip(t *testing.T) {
	for _, le := range []bool{true, false} {
		u := U128{Hi: 0xDEADBEEFCAFEF00D, Lo: 0x0123456789ABCDEF}
		var gotU U128
		if err := gotU.Unpack(u.Pack(le), le); err != nil {
			t.Fatalf("U128 Unpack error: %v", err)
		}
		if gotU != u {
			t.Errorf("U128 round-trip (le=%v) = %+v, want %+v", le, gotU, u)
		}

		i := I128{Hi: -1234567890, Lo: 42}
		var gotI I128
		if err := gotI.Unpack(i.Pack(le), le); err != nil {
			t.Fatalf("I128 Unpack error: %v", err)
		}
		if gotI != i {
			t.Errorf("I128 round-trip (le=%v) = %+v, want %+v", le, gotI, i)
		}
	}
}

func TestInt128_Size(t *testing.T) {
	var u U128
	var i I128
	if u.Size() != 16 || i.Size() != 16 {
		t.Errorf("Size() = %d/%d, want 16/16", u.Size(), i.Size())
	}
}

func TestInt128_Truncated(t *testing.T) {
	var v U128
	err := v.Unpack(make([]byte, 15), true)
	if err == nil {
		t.Fatal("Unpack should fail on a 15-byte buffer")
	}
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("error should be ErrTruncated, got %v", err)
	}

	var unpackErr *UnpackError
	if !errors.As(err, &unpackErr) {
		t.Fatalf("error should be *UnpackError, got %T", err)
	}
	if unpackErr.Expected != 16 || unpackErr.Actual != 15 {
		t.Errorf("Expected/Actual = %d/%d, want 16/15", unpackErr.Expected, unpackErr.Actual)
	}
}
