package binpack

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for record processor events.
var (
	SignalProcessorCreated  = capitan.NewSignal("binpack.processor.created", "Processor instantiated")
	SignalMarshalStart      = capitan.NewSignal("binpack.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete   = capitan.NewSignal("binpack.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart    = capitan.NewSignal("binpack.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete = capitan.NewSignal("binpack.unmarshal.complete", "Unmarshal operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyByteOrder  = capitan.NewStringKey("byte_order")
	KeySize       = capitan.NewIntKey("size")
	KeyRecordSize = capitan.NewIntKey("record_size")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// orderName names a byte order for event payloads.
func orderName(littleEndian bool) string {
	if littleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, typeName string, littleEndian bool, recordSize int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyTypeName.Field(typeName),
		KeyByteOrder.Field(orderName(littleEndian)),
		KeyRecordSize.Field(recordSize),
	)
}

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, typeName string, littleEndian bool) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyTypeName.Field(typeName),
		KeyByteOrder.Field(orderName(littleEndian)),
	)
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, typeName string, littleEndian bool, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyByteOrder.Field(orderName(littleEndian)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalStart emits an event when unmarshal begins.
func emitUnmarshalStart(ctx context.Context, typeName string, littleEndian bool) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyTypeName.Field(typeName),
		KeyByteOrder.Field(orderName(littleEndian)),
	)
}

// emitUnmarshalComplete emits an event when unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, typeName string, littleEndian bool, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyByteOrder.Field(orderName(littleEndian)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}
