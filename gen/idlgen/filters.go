package idlgen

import (
	"strings"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// Rendering filters for the canonical IDL backend. Each is a named
// package-level function so the rendering rules are testable without
// running a template.

// TypeIDL renders a Type in IDL surface syntax.
func TypeIDL(t component.Type) (string, error) {
	switch v := t.(type) {
	case component.Primitive:
		return v.Spelling(), nil
	case component.Named:
		return v.Name, nil
	case component.Optional:
		inner, err := TypeIDL(v.Inner)
		if err != nil {
			return "", err
		}
		return inner + "?", nil
	case component.Sequence:
		inner, err := TypeIDL(v.Inner)
		if err != nil {
			return "", err
		}
		return "sequence<" + inner + ">", nil
	case component.MapType:
		value, err := TypeIDL(v.Value)
		if err != nil {
			return "", err
		}
		return "record<DOMString, " + value + ">", nil
	}
	return "", errors.Newf("no IDL syntax for type %T", t)
}

// ReturnTypeIDL renders a return slot, spelling the absent type as void.
func ReturnTypeIDL(t component.Type) (string, error) {
	if t == nil {
		return "void", nil
	}
	return TypeIDL(t)
}

// ArgsIDL renders an argument list.
func ArgsIDL(args []component.Argument) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		t, err := TypeIDL(a.Type)
		if err != nil {
			return "", err
		}
		parts = append(parts, t+" "+a.Name)
	}
	return strings.Join(parts, ", "), nil
}

// Docstring renders documentation lines as /// comments at the given
// indent depth (one tab per level). Empty docs render nothing.
func Docstring(docs []string, indent int) string {
	if len(docs) == 0 {
		return ""
	}
	prefix := strings.Repeat("\t", indent)
	var sb strings.Builder
	for _, line := range docs {
		sb.WriteString(prefix)
		if line == "" {
			sb.WriteString("///\n")
			continue
		}
		sb.WriteString("/// ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ThrowsIDL renders the attribute line for a fallible callable, or ""
// when it cannot throw.
func ThrowsIDL(throws string, indent int) string {
	if throws == "" {
		return ""
	}
	return strings.Repeat("\t", indent) + "[Throws=" + throws + "]\n"
}

// CtorAttrsIDL renders a constructor's attribute line, combining its name
// (for secondary constructors) and throws clause.
func CtorAttrsIDL(ctor component.Constructor, indent int) string {
	var attrs []string
	if ctor.Name != "" {
		attrs = append(attrs, "Name="+ctor.Name)
	}
	if ctor.Throws != "" {
		attrs = append(attrs, "Throws="+ctor.Throws)
	}
	if len(attrs) == 0 {
		return ""
	}
	return strings.Repeat("\t", indent) + "[" + strings.Join(attrs, ", ") + "]\n"
}
