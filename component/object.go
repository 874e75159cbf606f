package component

// Object is a stateful type with methods, held behind an opaque handle on
// the foreign side. Objects are passed by reference; their data never
// crosses the boundary.
type Object struct {
	Name         string
	Constructors []Constructor
	Methods      []Method
	Docs         []string
}

// Constructor creates an instance of an Object.
type Constructor struct {
	Name   string // empty for the default constructor
	Args   []Argument
	Throws string
	Docs   []string
}

// Method is one callable member of an Object or CallbackInterface.
type Method struct {
	Name   string
	Args   []Argument
	Return Type   // nil means void
	Throws string // name of a registered Error, empty if infallible
	Docs   []string
}
