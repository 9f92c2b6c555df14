package binpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrShortBuffer indicates the remaining input is shorter than the
	// next field's declared size. Unpack reports it before touching the
	// field, so decoding short-circuits without misaligning later fields.
	ErrShortBuffer = errors.New("insufficient buffer")

	// ErrTruncated indicates a fixed-width conversion received a byte
	// slice of the wrong length. The sequencer's length check prevents
	// this in normal composition; it guards direct codec misuse.
	ErrTruncated = errors.New("truncated conversion")

	// ErrInvalidTag indicates a bin struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnsupportedField indicates a struct field has no fixed-width
	// binary layout and no bin tag excluding it.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrSizeMismatch indicates a sized []byte field does not hold
	// exactly its declared number of bytes at marshal time.
	ErrSizeMismatch = errors.New("size mismatch")
)

// UnpackError represents a decode failure.
// It wraps a sentinel error with the expected and actual byte counts.
type UnpackError struct {
	Err      error  // Underlying sentinel error (ErrShortBuffer, ErrTruncated)
	Field    string // Field name or index that failed, empty outside composition
	Expected int    // Bytes the field's codec required
	Actual   int    // Bytes available
}

func (e *UnpackError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s expects %d bytes, have %d", e.Err.Error(), e.Field, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %d bytes, have %d", e.Err.Error(), e.Expected, e.Actual)
}

func (e *UnpackError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with context about the field and tag value.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag, ErrUnsupportedField)
	Field string // Field name that triggered the error
	Tag   string // Tag value or type description that was invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Tag != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Tag, e.Field)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newUnpackError creates an UnpackError for a direct codec failure.
func newUnpackError(sentinel error, expected, actual int) error {
	return &UnpackError{
		Err:      sentinel,
		Expected: expected,
		Actual:   actual,
	}
}

// newFieldUnpackError creates an UnpackError attributed to a composed field.
func newFieldUnpackError(sentinel error, field string, expected, actual int) error {
	return &UnpackError{
		Err:      sentinel,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

// newConfigError creates a ConfigError for processor construction failures.
func newConfigError(sentinel error, field, tag string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Tag:   tag,
	}
}
