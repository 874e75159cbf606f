package component

import (
	"fmt"

	"github.com/glossa-dev/glossa/errors"
)

// Type is the closed set of value types that can appear in a component's
// public API. It is a sealed variant: the only implementations are
// Primitive, Named, Optional, Sequence and MapType in this package.
//
// Every variant must implement FFI, so a new variant that lacks a wire
// mapping fails to compile rather than surfacing as a runtime gap.
//
// Named kinds carry only the name of the definition they reference; the
// reference is resolved through the ComponentInterface registry at render
// time. This keeps Type values self-contained and cheap to copy, and avoids
// ownership cycles between mutually-referencing definitions.
type Type interface {
	isType()

	// FFI returns the wire representation used when a value of this type
	// crosses the foreign-function boundary.
	FFI() FFIType
}

// Primitive is a fixed scalar or string type.
type Primitive int

const (
	UInt8 Primitive = iota
	UInt16
	UInt32
	UInt64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Boolean
	String
)

// Primitives lists every primitive variant, in declaration order. Handy for
// totality tests and for iterating spelling tables.
var Primitives = []Primitive{
	UInt8, UInt16, UInt32, UInt64,
	Int8, Int16, Int32, Int64,
	Float32, Float64, Boolean, String,
}

func (Primitive) isType() {}

// FFI implements Type. Numeric and boolean kinds cross the boundary as
// their natural fixed-width representation; strings cross as a
// length-prefixed byte buffer.
func (p Primitive) FFI() FFIType {
	switch p {
	case UInt8:
		return FFIUInt8
	case UInt16:
		return FFIUInt16
	case UInt32:
		return FFIUInt32
	case UInt64:
		return FFIUInt64
	case Int8:
		return FFIInt8
	case Int16:
		return FFIInt16
	case Int32:
		return FFIInt32
	case Int64:
		return FFIInt64
	case Float32:
		return FFIFloat32
	case Float64:
		return FFIFloat64
	case Boolean:
		return FFIBool
	case String:
		return FFIBuffer
	}
	panic(fmt.Sprintf("unknown primitive %d", int(p)))
}

// Spelling returns the canonical IDL spelling of the primitive.
func (p Primitive) Spelling() string {
	switch p {
	case UInt8:
		return "u8"
	case UInt16:
		return "u16"
	case UInt32:
		return "u32"
	case UInt64:
		return "u64"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	}
	panic(fmt.Sprintf("unknown primitive %d", int(p)))
}

// ParsePrimitive maps a canonical IDL spelling to its Primitive. Unknown
// spellings are the only fallible case in type construction.
func ParsePrimitive(spelling string) (Primitive, error) {
	for _, p := range Primitives {
		if p.Spelling() == spelling {
			return p, nil
		}
	}
	return 0, errors.Newf("unknown primitive type %q", spelling)
}

// NamedKind identifies which kind of user-defined definition a Named type
// references.
type NamedKind int

const (
	EnumKind NamedKind = iota
	RecordKind
	ObjectKind
	ErrorKind
	CallbackKind
)

// NamedKinds lists every named kind, for totality tests.
var NamedKinds = []NamedKind{EnumKind, RecordKind, ObjectKind, ErrorKind, CallbackKind}

// Label returns the human-readable kind label used in diagnostics.
func (k NamedKind) Label() string {
	switch k {
	case EnumKind:
		return "enum"
	case RecordKind:
		return "record"
	case ObjectKind:
		return "object"
	case ErrorKind:
		return "error"
	case CallbackKind:
		return "callback interface"
	}
	panic(fmt.Sprintf("unknown named kind %d", int(k)))
}

// Named is a reference to a user-defined definition, identified solely by
// name. It must resolve to exactly one registered definition of matching
// kind, or rendering fails.
type Named struct {
	Kind NamedKind
	Name string
}

func (Named) isType() {}

// FFI implements Type. Enums cross as their unsigned ordinal, errors as a
// signed error code, records as a serialized buffer, and objects and
// callback interfaces as an opaque integer handle.
func (n Named) FFI() FFIType {
	switch n.Kind {
	case EnumKind:
		return FFIUInt32
	case ErrorKind:
		return FFIInt32
	case RecordKind:
		return FFIBuffer
	case ObjectKind, CallbackKind:
		return FFIHandle
	}
	panic(fmt.Sprintf("unknown named kind %d", int(n.Kind)))
}

// Optional wraps an inner type that may be absent.
type Optional struct {
	Inner Type
}

func (Optional) isType() {}

// FFI implements Type. Absence is encoded with a variant tag inside a
// serialized buffer, regardless of the inner type.
func (Optional) FFI() FFIType { return FFIBuffer }

// Sequence is an ordered collection of an inner type.
type Sequence struct {
	Inner Type
}

func (Sequence) isType() {}

// FFI implements Type.
func (Sequence) FFI() FFIType { return FFIBuffer }

// MapType is a string-keyed map. Keys are fixed to the String primitive;
// only the value type varies.
type MapType struct {
	Value Type
}

func (MapType) isType() {}

// FFI implements Type.
func (MapType) FFI() FFIType { return FFIBuffer }

// FFIType is the wire representation of a Type at the foreign-function
// boundary.
type FFIType int

const (
	FFIUInt8 FFIType = iota
	FFIUInt16
	FFIUInt32
	FFIUInt64
	FFIInt8
	FFIInt16
	FFIInt32
	FFIInt64
	FFIFloat32
	FFIFloat64
	FFIBool

	// FFIBuffer is a length-prefixed serialized byte buffer. Strings,
	// sequences, maps, records and optionals all cross as buffers; the
	// serialization format itself is owned by the runtime.
	FFIBuffer

	// FFIHandle is an opaque integer handle to an object or callback
	// interface living on the other side of the boundary.
	FFIHandle
)

// String returns the FFI kind name used in diagnostics and templates.
func (f FFIType) String() string {
	switch f {
	case FFIUInt8:
		return "uint8"
	case FFIUInt16:
		return "uint16"
	case FFIUInt32:
		return "uint32"
	case FFIUInt64:
		return "uint64"
	case FFIInt8:
		return "int8"
	case FFIInt16:
		return "int16"
	case FFIInt32:
		return "int32"
	case FFIInt64:
		return "int64"
	case FFIFloat32:
		return "float32"
	case FFIFloat64:
		return "float64"
	case FFIBool:
		return "bool"
	case FFIBuffer:
		return "buffer"
	case FFIHandle:
		return "handle"
	}
	return fmt.Sprintf("FFIType(%d)", int(f))
}
