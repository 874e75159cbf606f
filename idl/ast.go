package idl

// Syntax tree for the IDL front end. Nodes carry only what the definition
// converters need; positions are attached for diagnostics. The tree is
// front-end specific and never leaks past the convert step.

// Document is one parsed IDL file.
type Document struct {
	Namespace  *NamespaceNode
	Enums      []*EnumNode
	Dicts      []*DictNode
	Interfaces []*InterfaceNode
}

// Attribute is one entry of an extended-attribute list, e.g. [Error] or
// [Throws=BadTimes].
type Attribute struct {
	Name  string
	Value string // empty for bare attributes
}

func hasAttribute(attrs []Attribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

func attributeValue(attrs []Attribute, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// NamespaceNode declares the component namespace and its free functions.
type NamespaceNode struct {
	Name      string
	Functions []*FunctionNode
	Pos       Position
}

// FunctionNode is a free function inside the namespace block.
type FunctionNode struct {
	Name   string
	Attrs  []Attribute
	Return *TypeExpr // nil for void
	Args   []ArgNode
	Pos    Position
}

// ArgNode is one parameter of a function, method or constructor.
type ArgNode struct {
	Name string
	Type *TypeExpr
}

// EnumNode is an enum declaration. With the [Error] attribute it converts
// to an Error definition instead of an Enum.
type EnumNode struct {
	Name    string
	Attrs   []Attribute
	Members []string
	Pos     Position
}

// DictNode is a dictionary declaration, converting to a Record.
type DictNode struct {
	Name   string
	Attrs  []Attribute
	Fields []DictFieldNode
	Pos    Position
}

// DictFieldNode is one typed member of a dictionary.
type DictFieldNode struct {
	Name string
	Type *TypeExpr
}

// InterfaceNode is an interface or callback interface declaration.
type InterfaceNode struct {
	Name         string
	Attrs        []Attribute
	Callback     bool
	Constructors []*ConstructorNode
	Methods      []*MethodNode
	Pos          Position
}

// ConstructorNode is a constructor member of an interface.
type ConstructorNode struct {
	Attrs []Attribute
	Args  []ArgNode
	Pos   Position
}

// MethodNode is a regular member of an interface.
type MethodNode struct {
	Name   string
	Attrs  []Attribute
	Return *TypeExpr // nil for void
	Args   []ArgNode
	Pos    Position
}

// TypeExpr is a parsed type expression, shape-only: names are not resolved
// to definitions until conversion.
type TypeExpr struct {
	Kind     TypeExprKind
	Name     string    // primitive spelling or user-defined name
	Inner    *TypeExpr // element type for optional/sequence/map
	Optional bool      // trailing '?'
	Pos      Position
}

// TypeExprKind discriminates the shape of a TypeExpr.
type TypeExprKind int

const (
	TypeExprName TypeExprKind = iota
	TypeExprSequence
	TypeExprMap
)
