package component

// Enum is a closed set of named variants with no payloads. Unlike Error,
// an enum crosses the FFI as an ordinary value (its unsigned ordinal) and
// its variant names must be unique.
type Enum struct {
	Name     string
	Variants []string
	Docs     []string
}
