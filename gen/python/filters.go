package python

import (
	"strings"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

var primitivePython = map[component.Primitive]string{
	component.UInt8:   "int",
	component.UInt16:  "int",
	component.UInt32:  "int",
	component.UInt64:  "int",
	component.Int8:    "int",
	component.Int16:   "int",
	component.Int32:   "int",
	component.Int64:   "int",
	component.Float32: "float",
	component.Float64: "float",
	component.Boolean: "bool",
	component.String:  "str",
}

// TypePython renders a Type as a Python annotation. Named types render as
// quoted forward references so declaration order never matters.
func TypePython(t component.Type) (string, error) {
	switch v := t.(type) {
	case component.Primitive:
		if name, ok := primitivePython[v]; ok {
			return name, nil
		}
		return "", errors.Newf("no Python type for primitive %q", v.Spelling())
	case component.Named:
		return "\"" + v.Name + "\"", nil
	case component.Optional:
		inner, err := TypePython(v.Inner)
		if err != nil {
			return "", err
		}
		return "typing.Optional[" + inner + "]", nil
	case component.Sequence:
		inner, err := TypePython(v.Inner)
		if err != nil {
			return "", err
		}
		return "typing.List[" + inner + "]", nil
	case component.MapType:
		value, err := TypePython(v.Value)
		if err != nil {
			return "", err
		}
		return "typing.Dict[str, " + value + "]", nil
	}
	return "", errors.Newf("no Python syntax for type %T", t)
}

// ReturnTypePython renders a return annotation, spelling the absent type
// as None.
func ReturnTypePython(t component.Type) (string, error) {
	if t == nil {
		return "None", nil
	}
	return TypePython(t)
}

// ArgsPython renders a parameter list in "name: type" form.
func ArgsPython(args []component.Argument) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		t, err := TypePython(a.Type)
		if err != nil {
			return "", err
		}
		parts = append(parts, SnakeCase(a.Name)+": "+t)
	}
	return strings.Join(parts, ", "), nil
}

// Docstring renders documentation lines as a triple-quoted docstring at
// the given indent depth (four spaces per level). Empty docs render
// nothing.
func Docstring(docs []string, indent int) string {
	if len(docs) == 0 {
		return ""
	}
	prefix := strings.Repeat("    ", indent)
	if len(docs) == 1 {
		return prefix + "\"\"\"" + docs[0] + "\"\"\"\n"
	}
	var sb strings.Builder
	sb.WriteString(prefix + "\"\"\"" + docs[0] + "\n")
	for _, line := range docs[1:] {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(prefix + line + "\n")
	}
	sb.WriteString(prefix + "\"\"\"\n")
	return sb.String()
}

// VariantPython converts a variant name to Python enum-member casing
// (UPPER_SNAKE).
func VariantPython(name string) string {
	return strings.ToUpper(SnakeCase(name))
}

// SnakeCase converts camelCase or PascalCase identifiers to Python
// member casing.
func SnakeCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] != '_' {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
