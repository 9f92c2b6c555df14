package binpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestU8_Pack(t *testing.T) {
	v := U8(42)
	if got := v.Pack(false); !bytes.Equal(got, []byte{42}) {
		t.Errorf("Pack(false) = %v, want [42]", got)
	}
	if got := v.Pack(true); !bytes.Equal(got, []byte{42}) {
		t.Errorf("Pack(true) = %v, want [42]", got)
	}
}

func TestU16_Pack(t *testing.T) {
	v := U16(42)
	if got := v.Pack(false); !bytes.Equal(got, []byte{0, 42}) {
		t.Errorf("Pack(false) = %v, want [0 42]", got)
	}
	if got := v.Pack(true); !bytes.Equal(got, []byte{42, 0}) {
		t.Errorf("Pack(true) = %v, want [42 0]", got)
	}
}

func TestU32_Pack(t *testing.T) {
	v := U32(42)
	if got := v.Pack(false); !bytes.Equal(got, []byte{0, 0, 0, 42}) {
		t.Errorf("Pack(false) = %v, want [0 0 0 42]", got)
	}
	if got := v.Pack(true); !bytes.Equal(got, []byte{42, 0, 0, 0}) {
		t.Errorf("Pack(true) = %v, want [42 0 0 0]", got)
	}
}

func TestU64_Pack(t *testing.T) {
	v := U64(42)
	if got := v.Pack(false); !bytes.Equal(got, []byte{0, 0, 0, 0, 0, 0, 0, 42}) {
		t.Errorf("Pack(false) = %v, want [0 ... 42]", got)
	}
	if got := v.Pack(true); !bytes.Equal(got, []byte{42, 0, 0, 0, 0, 0, 0, 0}) {
		t.Errorf("Pack(true) = %v, want [42 0 ... 0]", got)
	}
}

func TestSigned_Pack(t *testing.T) {
	tests := []struct {
		name   string
		value  Packable
		le, be []byte
	}{
		{"I8", ptr(I8(-42)), []byte{214}, []byte{214}},
		{"I16", ptr(I16(-42)), []byte{214, 255}, []byte{255, 214}},
		{"I32", ptr(I32(-42)), []byte{214, 255, 255, 255}, []byte{255, 255, 255, 214}},
		{"I64", ptr(I64(-42)),
			[]byte{214, 255, 255, 255, 255, 255, 255, 255},
			[]byte{255, 255, 255, 255, 255, 255, 255, 214}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Pack(true); !bytes.Equal(got, tt.le) {
				t.Errorf("Pack(true) = %v, want %v", got, tt.le)
			}
			if got := tt.value.Pack(false); !bytes.Equal(got, tt.be) {
				t.Errorf("Pack(false) = %v, want %v", got, tt.be)
			}
		})
	}
}

func TestF32_Pack(t *testing.T) {
	v := F32(42.7)
	if got := v.Pack(true); !bytes.Equal(got, []byte{205, 204, 42, 66}) {
		t.Errorf("Pack(true) = %v, want [205 204 42 66]", got)
	}
	if got := v.Pack(false); !bytes.Equal(got, []byte{66, 42, 204, 205}) {
		t.Errorf("Pack(false) = %v, want [66 42 204 205]", got)
	}
}

func TestF64_Pack(t *testing.T) {
	v := F64(42.74)
	wantLE := []byte{31, 133, 235, 81, 184, 94, 69, 64}
	wantBE := []byte{64, 69, 94, 184, 81, 235, 133, 31}
	if got := v.Pack(true); !bytes.Equal(got, wantLE) {
		t.Errorf("Pack(true) = %v, want %v", got, wantLE)
	}
	if got := v.Pack(false); !bytes.Equal(got, wantBE) {
		t.Errorf("Pack(false) = %v, want %v", got, wantBE)
	}
}

func TestScalar_RoundTrip(t *testing.T) {
	for _, le := range []bool{true, false} {
		name := "big-endian"
		if le {
			name = "little-endian"
		}
		t.Run(name, func(t *testing.T) {
			u8 := U8(0xA5)
			u16 := U16(0xBEEF)
			u32 := U32(0xDEADBEEF)
			u64 := U64(0x0123456789ABCDEF)
			i8 := I8(-100)
			i16 := I16(-30000)
			i32 := I32(-2000000000)
			i64 := I64(-9000000000000000000)
			f32 := F32(-3.25)
			f64 := F64(6.02214076e23)

			originals := []Packable{&u8, &u16, &u32, &u64, &i8, &i16, &i32, &i64, &f32, &f64}

			var g8 U8
			var g16 U16
			var g32 U32
			var g64 U64
			var h8 I8
			var h16 I16
			var h32 I32
			var h64 I64
			var gf32 F32
			var gf64 F64
			targets := []Packable{&g8, &g16, &g32, &g64, &h8, &h16, &h32, &h64, &gf32, &gf64}

			for i, v := range originals {
				encoded := v.Pack(le)
				if err := targets[i].Unpack(encoded, le); err != nil {
					t.Fatalf("Unpack error: %v", err)
				}
			}

			if g8 != u8 || g16 != u16 || g32 != u32 || g64 != u64 {
				t.Errorf("unsigned round-trip: got %v %v %v %v", g8, g16, g32, g64)
			}
			if h8 != i8 || h16 != i16 || h32 != i32 || h64 != i64 {
				t.Errorf("signed round-trip: got %v %v %v %v", h8, h16, h32, h64)
			}
			if gf32 != f32 || gf64 != f64 {
				t.Errorf("float round-trip: got %v %v", gf32, gf64)
			}
		})
	}
}

func TestScalar_SizeDeterminism(t *testing.T) {
	tests := []struct {
		name   string
		values []Packable
		want   int
	}{
		{"U8", []Packable{ptr(U8(0)), ptr(U8(255))}, 1},
		{"U16", []Packable{ptr(U16(0)), ptr(U16(65535))}, 2},
		{"U32", []Packable{ptr(U32(0)), ptr(U32(1))}, 4},
		{"U64", []Packable{ptr(U64(0)), ptr(U64(1))}, 8},
		{"I8", []Packable{ptr(I8(-128)), ptr(I8(127))}, 1},
		{"I16", []Packable{ptr(I16(-1)), ptr(I16(1))}, 2},
		{"I32", []Packable{ptr(I32(-1)), ptr(I32(1))}, 4},
		{"I64", []Packable{ptr(I64(-1)), ptr(I64(1))}, 8},
		{"F32", []Packable{ptr(F32(0)), ptr(F32(-1.5))}, 4},
		{"F64", []Packable{ptr(F64(0)), ptr(F64(-1.5))}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.values {
				if got := v.Size(); got != tt.want {
					t.Errorf("Size() = %d, want %d", got, tt.want)
				}
				if got := len(v.Pack(true)); got != tt.want {
					t.Errorf("len(Pack) = %d, want %d", got, tt.want)
				}
			}
		})
	}
}

func TestScalar_OrderSensitivity(t *testing.T) {
	v := U32(0x01020304)

	le := v.Pack(true)
	be := v.Pack(false)
	if bytes.Equal(le, be) {
		t.Fatal("little- and big-endian encodings should differ for non-palindromic value")
	}

	// Decoding with the wrong order yields a different value, not an error.
	var wrong U32
	if err := wrong.Unpack(le, false); err != nil {
		t.Fatalf("Unpack error: %v", err)
	}
	if wrong == v {
		t.Error("decoding with the wrong order should not reproduce the value")
	}
	if wrong != U32(0x04030201) {
		t.Errorf("wrong-order decode = %#x, want %#x", uint32(wrong), uint32(0x04030201))
	}
}

func TestScalar_Truncated(t *testing.T) {
	var v U32
	err := v.Unpack([]byte{1, 2}, true)
	if err == nil {
		t.Fatal("Unpack should fail on a short buffer")
	}
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("error should be ErrTruncated, got %v", err)
	}

	var unpackErr *UnpackError
	if !errors.As(err, &unpackErr) {
		t.Fatalf("error should be *UnpackError, got %T", err)
	}
	if unpackErr.Expected != 4 {
		t.Errorf("Expected = %d, want 4", unpackErr.Expected)
	}
	if unpackErr.Actual != 2 {
		t.Errorf("Actual = %d, want 2", unpackErr.Actual)
	}
}

func TestScalar_UnpackReadsOnlyPrefix(t *testing.T) {
	// Extra bytes past Size() must not influence the decoded value.
	var v U16
	if err := v.Unpack([]byte{42, 0, 0xFF, 0xFF}, true); err != nil {
		t.Fatalf("Unpack error: %v", err)
	}
	if v != 42 {
		t.Errorf("Unpack = %d, want 42", v)
	}
}

// ptr boxes a scalar so table entries can hold Packable values.
func ptr[T any](v T) *T { return &v }
