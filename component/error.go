package component

// Error represents an error that may be thrown by functions and methods in
// the component interface.
//
// In the IDL an error is an enum carrying the [Error] attribute; in Go
// source it is an enum-shaped declaration with a //glossa:error marker.
// On the wire, errors are not passed like ordinary enums: each variant is
// assigned an integer error code from its ordinal position.
//
// Variant names are not required to be unique. That is a documented quirk
// of the current behavior, preserved deliberately; see the duplicate
// variant test in the idl package.
type Error struct {
	Name     string
	Variants []string
	Docs     []string
}

// Code returns the FFI error code of the variant at the given ordinal.
// Code zero is reserved for success.
func (e *Error) Code(index int) int32 {
	return int32(index) + 1
}

// DocumentVariant appends a variant's documentation to an error's doc
// lines in the nested format consumed by every backend: a blank separator,
// a marker line naming the variant, then the variant's own lines indented
// two spaces beyond the marker. Generated doc comments are checked by
// downstream consumers, so this layout is load-bearing.
func (e *Error) DocumentVariant(name string, docs []string) {
	if len(docs) == 0 {
		return
	}
	e.Docs = append(e.Docs, "", "  `"+name+"`:")
	for _, line := range docs {
		e.Docs = append(e.Docs, "    "+line)
	}
}
