package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allTypeVariants builds one value of every Type variant, including one of
// each primitive and named kind. Totality tests range over this.
func allTypeVariants() []Type {
	variants := []Type{}
	for _, p := range Primitives {
		variants = append(variants, p)
	}
	for _, k := range NamedKinds {
		variants = append(variants, Named{Kind: k, Name: "Example"})
	}
	variants = append(variants,
		Optional{Inner: String},
		Sequence{Inner: UInt32},
		MapType{Value: Boolean},
		Optional{Inner: Sequence{Inner: String}},
	)
	return variants
}

func TestFFIMappingIsTotal(t *testing.T) {
	// Every variant must map; none may panic or fall through.
	for _, v := range allTypeVariants() {
		assert.NotPanics(t, func() {
			_ = v.FFI()
		}, "variant %#v", v)
	}
}

func TestFFIMappingScalars(t *testing.T) {
	tests := []struct {
		in   Type
		want FFIType
	}{
		{UInt8, FFIUInt8},
		{UInt64, FFIUInt64},
		{Int16, FFIInt16},
		{Float32, FFIFloat32},
		{Float64, FFIFloat64},
		{Boolean, FFIBool},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.FFI())
	}
}

func TestFFIMappingBufferKinds(t *testing.T) {
	// Strings, sequences, maps, records and optionals all cross as a
	// length-prefixed serialized buffer.
	buffered := []Type{
		String,
		Sequence{Inner: UInt8},
		MapType{Value: String},
		Named{Kind: RecordKind, Name: "Point"},
		Optional{Inner: Int64},
		Optional{Inner: Named{Kind: ObjectKind, Name: "Conn"}},
	}
	for _, ty := range buffered {
		assert.Equal(t, FFIBuffer, ty.FFI(), "%#v", ty)
	}
}

func TestFFIMappingHandlesAndCodes(t *testing.T) {
	assert.Equal(t, FFIHandle, Named{Kind: ObjectKind, Name: "Conn"}.FFI())
	assert.Equal(t, FFIHandle, Named{Kind: CallbackKind, Name: "OnEvent"}.FFI())
	assert.Equal(t, FFIUInt32, Named{Kind: EnumKind, Name: "Mode"}.FFI())
	assert.Equal(t, FFIInt32, Named{Kind: ErrorKind, Name: "BadTimes"}.FFI())
}

func TestParsePrimitiveRoundTrip(t *testing.T) {
	for _, p := range Primitives {
		got, err := ParsePrimitive(p.Spelling())
		require.NoError(t, err, p.Spelling())
		assert.Equal(t, p, got)
	}
}

func TestParsePrimitiveUnknownSpelling(t *testing.T) {
	for _, spelling := range []string{"u128", "float", "str", "int", ""} {
		_, err := ParsePrimitive(spelling)
		assert.Error(t, err, spelling)
	}
}

func TestNamedKindLabels(t *testing.T) {
	assert.Equal(t, "enum", EnumKind.Label())
	assert.Equal(t, "record", RecordKind.Label())
	assert.Equal(t, "object", ObjectKind.Label())
	assert.Equal(t, "error", ErrorKind.Label())
	assert.Equal(t, "callback interface", CallbackKind.Label())
}
