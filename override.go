package binpack

import "reflect"

// Types can bypass reflection-based layout by implementing Packable on
// their pointer. The Processor then calls the type's own codec for that
// field instead of deriving a layout from its shape, which is how Flag,
// U128, and user-defined codecs participate in records.

// packableType is the reflected Packable interface.
var packableType = reflect.TypeOf((*Packable)(nil)).Elem()

// implementsPackable reports whether a pointer to rt satisfies Packable.
func implementsPackable(rt reflect.Type) bool {
	return reflect.PointerTo(rt).Implements(packableType)
}

// packableWidth returns the encoded size of a Packable field type, read
// from a zero value. Types whose size is fixed per type (Flag, U128)
// report it from any value; a type sized at construction (Bytes) reports
// 0 here and cannot be laid out as a record field.
func packableWidth(rt reflect.Type) int {
	return reflect.New(rt).Interface().(Packable).Size()
}
