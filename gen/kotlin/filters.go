package kotlin

import (
	"strings"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

var primitiveKotlin = map[component.Primitive]string{
	component.UInt8:   "UByte",
	component.UInt16:  "UShort",
	component.UInt32:  "UInt",
	component.UInt64:  "ULong",
	component.Int8:    "Byte",
	component.Int16:   "Short",
	component.Int32:   "Int",
	component.Int64:   "Long",
	component.Float32: "Float",
	component.Float64: "Double",
	component.Boolean: "Boolean",
	component.String:  "String",
}

// TypeKotlin renders a Type in Kotlin surface syntax.
func TypeKotlin(t component.Type) (string, error) {
	switch v := t.(type) {
	case component.Primitive:
		if name, ok := primitiveKotlin[v]; ok {
			return name, nil
		}
		return "", errors.Newf("no Kotlin type for primitive %q", v.Spelling())
	case component.Named:
		return PascalCase(v.Name), nil
	case component.Optional:
		inner, err := TypeKotlin(v.Inner)
		if err != nil {
			return "", err
		}
		return inner + "?", nil
	case component.Sequence:
		inner, err := TypeKotlin(v.Inner)
		if err != nil {
			return "", err
		}
		return "List<" + inner + ">", nil
	case component.MapType:
		value, err := TypeKotlin(v.Value)
		if err != nil {
			return "", err
		}
		return "Map<String, " + value + ">", nil
	}
	return "", errors.Newf("no Kotlin syntax for type %T", t)
}

// ReturnTypeKotlin renders a return slot, spelling the absent type as Unit.
func ReturnTypeKotlin(t component.Type) (string, error) {
	if t == nil {
		return "Unit", nil
	}
	return TypeKotlin(t)
}

// ArgsKotlin renders a parameter list in "name: Type" form.
func ArgsKotlin(args []component.Argument) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		t, err := TypeKotlin(a.Type)
		if err != nil {
			return "", err
		}
		parts = append(parts, CamelCase(a.Name)+": "+t)
	}
	return strings.Join(parts, ", "), nil
}

// KDoc renders documentation lines as a KDoc block at the given indent
// depth (four spaces per level). Empty docs render nothing.
func KDoc(docs []string, indent int) string {
	if len(docs) == 0 {
		return ""
	}
	prefix := strings.Repeat("    ", indent)
	var sb strings.Builder
	sb.WriteString(prefix + "/**\n")
	for _, line := range docs {
		if line == "" {
			sb.WriteString(prefix + " *\n")
			continue
		}
		sb.WriteString(prefix + " * " + line + "\n")
	}
	sb.WriteString(prefix + " */\n")
	return sb.String()
}

// PascalCase converts snake_case or lowerCamel identifiers to Kotlin
// type-name casing.
func PascalCase(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// CamelCase converts identifiers to Kotlin member casing.
func CamelCase(name string) string {
	pascal := PascalCase(name)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// VariantKotlin converts a variant name to Kotlin enum-entry casing
// (UPPER_SNAKE).
func VariantKotlin(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' && i > 0 {
			prev := name[i-1]
			if prev != '_' && (prev < 'A' || prev > 'Z') {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(r)
	}
	return strings.ToUpper(sb.String())
}

// ThrowsKotlin renders a @Throws annotation line for a fallible callable.
func ThrowsKotlin(throws string, indent int) string {
	if throws == "" {
		return ""
	}
	return strings.Repeat("    ", indent) + "@Throws(" + PascalCase(throws) + "Exception::class)\n"
}
