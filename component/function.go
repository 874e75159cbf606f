package component

// Function is a free function declared in the namespace block.
type Function struct {
	Name   string
	Args   []Argument
	Return Type   // nil means void
	Throws string // name of a registered Error, empty if infallible
	Docs   []string
}

// Argument is one parameter of a function, method or constructor.
type Argument struct {
	Name string
	Type Type
}
