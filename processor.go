package binpack

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the layout tag with sentinel
	sentinel.Tag(tagBin)
}

// fieldKind selects the layout strategy for one planned field.
type fieldKind int

const (
	kindPackable  fieldKind = iota // pointer implements Packable
	kindUint                       // native fixed-width unsigned integer
	kindInt                        // native fixed-width signed integer
	kindFloat                      // native float32/float64
	kindByteArray                  // [N]byte
	kindByteSlice                  // []byte with a size tag
)

// fieldPlan describes how to pack a single field.
type fieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // field name for error messages and events
	kind  fieldKind
	width int // encoded size in bytes
}

// typeLayout is the immutable per-type packing plan.
type typeLayout struct {
	typeName string
	fields   []fieldPlan
	size     int // fixed record size, sum of field widths
}

var (
	layouts   = make(map[reflect.Type]*typeLayout)
	layoutsMu sync.RWMutex
)

// getOrBuildLayout returns a cached layout or scans the type to build one.
func getOrBuildLayout[T any]() (*typeLayout, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	layoutsMu.RLock()
	if cached, ok := layouts[typ]; ok {
		layoutsMu.RUnlock()
		return cached, nil
	}
	layoutsMu.RUnlock()

	// Slow path: build and cache with write-lock
	layoutsMu.Lock()
	defer layoutsMu.Unlock()

	// Double-check pattern
	if cached, ok := layouts[typ]; ok {
		return cached, nil
	}

	layout, err := buildLayout[T]()
	if err != nil {
		return nil, err
	}

	layouts[typ] = layout
	return layout, nil
}

// buildLayout creates the packing plan for type T by scanning struct tags.
func buildLayout[T any]() (*typeLayout, error) {
	spec := sentinel.Scan[T]()
	layout := &typeLayout{
		typeName: spec.TypeName,
	}

	if err := buildLayoutRecursive(layout, spec, nil, ""); err != nil {
		return nil, err
	}

	for _, plan := range layout.fields {
		layout.size += plan.width
	}
	return layout, nil
}

// buildLayoutRecursive processes fields in declaration order, flattening
// nested structs into the parent layout.
func buildLayoutRecursive(layout *typeLayout, spec sentinel.Metadata, parentIndex []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		taggedSize := 0
		if val, ok := field.Tags[tagBin]; ok {
			skip, size, err := parseBinTag(fullName, val)
			if err != nil {
				return err
			}
			if skip {
				continue
			}
			taggedSize = size
		}

		rt := field.ReflectType
		if taggedSize > 0 && (rt.Kind() != reflect.Slice || rt.Elem().Kind() != reflect.Uint8) {
			return newConfigError(ErrInvalidTag, fullName, field.Tags[tagBin])
		}

		// The capability overrides shape-derived layout.
		if implementsPackable(rt) {
			width := packableWidth(rt)
			if width <= 0 {
				// A zero-width zero value means the type's size depends
				// on how the value was constructed (Bytes); such fields
				// have no fixed record layout.
				return newConfigError(ErrUnsupportedField, fullName, rt.String())
			}
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex,
				name:  fullName,
				kind:  kindPackable,
				width: width,
			})
			continue
		}

		switch rt.Kind() {
		case reflect.Struct:
			nestedSpec := scanNestedType(rt)
			if nestedSpec == nil {
				return newConfigError(ErrUnsupportedField, fullName, rt.String())
			}
			if err := buildLayoutRecursive(layout, *nestedSpec, fullIndex, fullName); err != nil {
				return err
			}

		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex, name: fullName, kind: kindUint, width: scalarWidth(rt.Kind()),
			})

		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex, name: fullName, kind: kindInt, width: scalarWidth(rt.Kind()),
			})

		case reflect.Float32, reflect.Float64:
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex, name: fullName, kind: kindFloat, width: scalarWidth(rt.Kind()),
			})

		case reflect.Array:
			if rt.Elem().Kind() != reflect.Uint8 {
				return newConfigError(ErrUnsupportedField, fullName, rt.String())
			}
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex, name: fullName, kind: kindByteArray, width: rt.Len(),
			})

		case reflect.Slice:
			// Variable-length slices have no fixed layout; a size tag
			// turns a []byte field into a fixed block.
			if rt.Elem().Kind() != reflect.Uint8 || taggedSize == 0 {
				return newConfigError(ErrUnsupportedField, fullName, rt.String())
			}
			layout.fields = append(layout.fields, fieldPlan{
				index: fullIndex, name: fullName, kind: kindByteSlice, width: taggedSize,
			})

		default:
			// int and uint are platform-width and would make the
			// layout machine-dependent.
			return newConfigError(ErrUnsupportedField, fullName, rt.String())
		}
	}

	return nil
}

// scalarWidth maps a fixed-width scalar kind onto its byte size.
func scalarWidth(k reflect.Kind) int {
	switch k {
	case reflect.Uint8, reflect.Int8:
		return width8
	case reflect.Uint16, reflect.Int16:
		return width16
	case reflect.Uint32, reflect.Int32, reflect.Float32:
		return width32
	default:
		return width64
	}
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseLayoutTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseLayoutTags extracts the bin tag from a struct tag.
func parseLayoutTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup(tagBin); ok {
		tags[tagBin] = val
	}
	return tags
}

// Processor packs and unpacks one struct type as a flat binary record.
// Field layout follows declaration order under the byte order chosen at
// construction; see the package documentation for the tag syntax.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T any] struct {
	littleEndian bool
	typeName     string
	fields       []fieldPlan
	size         int
}

// NewProcessor creates a Processor for type T with the given byte order.
// It fails with a ConfigError when T contains a field that has no
// fixed-width layout and no bin tag excluding it.
func NewProcessor[T any](littleEndian bool) (*Processor[T], error) {
	layout, err := getOrBuildLayout[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		littleEndian: littleEndian,
		typeName:     layout.typeName,
		fields:       layout.fields,
		size:         layout.size,
	}

	emitProcessorCreated(context.Background(), layout.typeName, littleEndian, layout.size)
	return p, nil
}

// Size returns the fixed encoded size of one record.
func (p *Processor[T]) Size() int {
	return p.size
}

// Marshal encodes obj into its binary record. A nil obj encodes the zero
// record. Marshal fails only when a sized []byte field does not hold
// exactly its declared length.
func (p *Processor[T]) Marshal(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitMarshalStart(ctx, p.typeName, p.littleEndian)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, p.typeName, p.littleEndian, len(retData), time.Since(start), retErr)
	}()

	if obj == nil {
		var zero T
		obj = &zero
	}

	rv := reflect.ValueOf(obj).Elem()
	buf := make([]byte, 0, p.size)

	for i := range p.fields {
		plan := &p.fields[i]
		field := rv.FieldByIndex(plan.index)

		switch plan.kind {
		case kindPackable:
			buf = append(buf, field.Addr().Interface().(Packable).Pack(p.littleEndian)...)

		case kindUint:
			buf = appendUint(buf, field.Uint(), plan.width, p.littleEndian)

		case kindInt:
			buf = appendUint(buf, uint64(field.Int()), plan.width, p.littleEndian)

		case kindFloat:
			if plan.width == width32 {
				buf = appendUint(buf, uint64(math.Float32bits(float32(field.Float()))), width32, p.littleEndian)
			} else {
				buf = appendUint(buf, math.Float64bits(field.Float()), width64, p.littleEndian)
			}

		case kindByteArray:
			buf = append(buf, field.Bytes()...)

		case kindByteSlice:
			b := field.Bytes()
			if len(b) != plan.width {
				retErr = fmt.Errorf("%w: field %s holds %d bytes, declared %d", ErrSizeMismatch, plan.name, len(b), plan.width)
				return nil, retErr
			}
			buf = append(buf, b...)
		}
	}

	retData = buf
	return retData, nil
}

// Unmarshal decodes a binary record into a fresh T. Fields decode in
// declaration order from the front of data; input beyond Size() bytes is
// ignored. On a short input it fails with ErrShortBuffer naming the field
// that could not be decoded.
func (p *Processor[T]) Unmarshal(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitUnmarshalStart(ctx, p.typeName, p.littleEndian)

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, p.typeName, p.littleEndian, len(data), time.Since(start), retErr)
	}()

	var obj T
	rv := reflect.ValueOf(&obj).Elem()
	rest := data

	for i := range p.fields {
		plan := &p.fields[i]
		if len(rest) < plan.width {
			retErr = newFieldUnpackError(ErrShortBuffer, plan.name, plan.width, len(rest))
			return nil, retErr
		}

		field := rv.FieldByIndex(plan.index)
		seg := rest[:plan.width:plan.width]

		switch plan.kind {
		case kindPackable:
			if err := field.Addr().Interface().(Packable).Unpack(seg, p.littleEndian); err != nil {
				retErr = err
				return nil, retErr
			}

		case kindUint:
			field.SetUint(readUint(seg, plan.width, p.littleEndian))

		case kindInt:
			field.SetInt(signExtend(readUint(seg, plan.width, p.littleEndian), plan.width))

		case kindFloat:
			if plan.width == width32 {
				field.SetFloat(float64(math.Float32frombits(uint32(readUint(seg, width32, p.littleEndian)))))
			} else {
				field.SetFloat(math.Float64frombits(readUint(seg, width64, p.littleEndian)))
			}

		case kindByteArray:
			copy(field.Bytes(), seg)

		case kindByteSlice:
			block := make([]byte, plan.width)
			copy(block, seg)
			field.SetBytes(block)
		}

		rest = rest[plan.width:]
	}

	return &obj, nil
}
