package binpack

import (
	"errors"
	"testing"
)

func TestUse_CachesByTypeAndOrder(t *testing.T) {
	Reset()

	first, err := Use[wireHeader](true)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}

	second, err := Use[wireHeader](true)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if first != second {
		t.Error("Use should return the cached processor for the same type and order")
	}

	bigEndian, err := Use[wireHeader](false)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if bigEndian == first {
		t.Error("Use should cache little- and big-endian processors separately")
	}

	other, err := Use[telemetryFrame](true)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if any(other) == any(first) {
		t.Error("Use should cache processors per type")
	}
}

func TestUse_PropagatesConfigError(t *testing.T) {
	Reset()

	_, err := Use[badStringField](true)
	if err == nil {
		t.Fatal("Use should fail for an unsupported type")
	}
	if !errors.Is(err, ErrUnsupportedField) {
		t.Errorf("error should be ErrUnsupportedField, got %v", err)
	}
}

func TestReset(t *testing.T) {
	Reset()

	first, err := Use[wireHeader](true)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}

	Reset()

	second, err := Use[wireHeader](true)
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if first == second {
		t.Error("Reset should clear the cache")
	}
}
