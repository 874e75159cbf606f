package component

// Record is a plain data aggregate passed by value across the FFI as a
// serialized buffer. Records have no behavior; anything with methods is an
// Object.
type Record struct {
	Name   string
	Fields []Field
	Docs   []string
}

// Field is one typed member of a record.
type Field struct {
	Name string
	Type Type
	Docs []string
}
