package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/idl"
)

func TestTypeKotlin(t *testing.T) {
	tests := []struct {
		name string
		in   component.Type
		want string
	}{
		{"u8", component.UInt8, "UByte"},
		{"u64", component.UInt64, "ULong"},
		{"i32", component.Int32, "Int"},
		{"f64", component.Float64, "Double"},
		{"boolean", component.Boolean, "Boolean"},
		{"string", component.String, "String"},
		{"named", component.Named{Kind: component.RecordKind, Name: "point"}, "Point"},
		{"optional", component.Optional{Inner: component.String}, "String?"},
		{"sequence", component.Sequence{Inner: component.UInt32}, "List<UInt>"},
		{"map", component.MapType{Value: component.Float64}, "Map<String, Double>"},
		{
			"optional sequence",
			component.Optional{Inner: component.Sequence{Inner: component.String}},
			"List<String>?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeKotlin(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReturnTypeKotlin(t *testing.T) {
	got, err := ReturnTypeKotlin(nil)
	require.NoError(t, err)
	assert.Equal(t, "Unit", got)
}

func TestArgsKotlin(t *testing.T) {
	got, err := ArgsKotlin([]component.Argument{
		{Name: "dividend", Type: component.UInt64},
		{Name: "max_depth", Type: component.Optional{Inner: component.UInt32}},
	})
	require.NoError(t, err)
	assert.Equal(t, "dividend: ULong, maxDepth: UInt?", got)
}

func TestCasing(t *testing.T) {
	assert.Equal(t, "CheckedDiv", PascalCase("checked_div"))
	assert.Equal(t, "checkedDiv", CamelCase("checked_div"))
	assert.Equal(t, "Counter", PascalCase("Counter"))
	assert.Equal(t, "DIVISION_BY_ZERO", VariantKotlin("DivisionByZero"))
	assert.Equal(t, "FAST", VariantKotlin("Fast"))
	assert.Equal(t, "SLOW_PATH", VariantKotlin("slow_path"))
}

func TestKDoc(t *testing.T) {
	assert.Empty(t, KDoc(nil, 0))
	assert.Equal(t, "/**\n * does a thing\n */\n", KDoc([]string{"does a thing"}, 0))
	assert.Equal(t,
		"    /**\n     * first\n     *\n     * second\n     */\n",
		KDoc([]string{"first", "", "second"}, 1))
}

func TestRenderSmoke(t *testing.T) {
	ci, err := idl.Parse(`
		namespace math {
			f64 add(f64 a, f64 b);
			[Throws=ArithmeticError]
			u64 checked_div(u64 dividend, u64 divisor);
		};
		[Error]
		enum ArithmeticError { "DivisionByZero" };
		enum Mode { "Fast", "Slow" };
		dictionary Point { f64 x; f64 y; };
		interface Counter {
			constructor(u64 start);
			[Name=zeroed]
			constructor();
			u64 value();
		};
		callback interface OnEvent { void changed(u64 value); };
	`)
	require.NoError(t, err)

	out, err := Backend{}.Render(ci, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "package glossa.math")
	assert.Contains(t, out, "enum class Mode {")
	assert.Contains(t, out, "    FAST,")
	assert.Contains(t, out, "sealed class ArithmeticErrorException(message: String) : Exception(message) {")
	assert.Contains(t, out, "class DivisionByZero(message: String) : ArithmeticErrorException(message)")
	assert.Contains(t, out, "data class Point(")
	assert.Contains(t, out, "val x: Double,")
	assert.Contains(t, out, "class Counter(start: ULong) {")
	assert.Contains(t, out, "fun zeroed(): Counter =")
	assert.Contains(t, out, "fun value(): ULong =")
	assert.Contains(t, out, "interface OnEvent {")
	assert.Contains(t, out, "fun changed(value: ULong): Unit")
	assert.Contains(t, out, "@Throws(ArithmeticErrorException::class)")
	assert.Contains(t, out, "fun checkedDiv(dividend: ULong, divisor: ULong): ULong")
}

func TestRenderUsesConfiguredPackage(t *testing.T) {
	ci, err := idl.Parse(`namespace math {};`)
	require.NoError(t, err)

	conf := &config.Config{Kotlin: config.KotlinConfig{PackageName: "com.example.math"}}
	out, err := Backend{}.Render(ci, conf)
	require.NoError(t, err)
	assert.Contains(t, out, "package com.example.math")
}
