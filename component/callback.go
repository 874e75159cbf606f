package component

// CallbackInterface is a set of methods implemented by foreign code and
// invoked from the component side, crossing the FFI as an opaque handle in
// the opposite direction from an Object.
type CallbackInterface struct {
	Name    string
	Methods []Method
	Docs    []string
}
