package idl

import (
	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// Definition converters for the IDL front end: one implementation of the
// APIConverter capability per definition kind. Each converter pairs a
// syntax node with the document's type universe, so a produced Definition
// carries fully-formed Type values and no trace of this front end.

// typeUniverse maps every user-defined name declared in a document to its
// definition kind. It is built in a finder pass before conversion, so
// definitions may reference each other regardless of declaration order.
type typeUniverse map[string]component.NamedKind

func findTypes(doc *Document) typeUniverse {
	universe := make(typeUniverse)
	for _, e := range doc.Enums {
		if hasAttribute(e.Attrs, "Error") {
			universe[e.Name] = component.ErrorKind
		} else {
			universe[e.Name] = component.EnumKind
		}
	}
	for _, d := range doc.Dicts {
		universe[d.Name] = component.RecordKind
	}
	for _, i := range doc.Interfaces {
		if i.Callback {
			universe[i.Name] = component.CallbackKind
		} else {
			universe[i.Name] = component.ObjectKind
		}
	}
	return universe
}

// resolve turns a parsed type expression into a Type value. Unknown names
// that are neither primitives nor declared in the document cannot be given
// a kind, so they fail here rather than at render time.
func (u typeUniverse) resolve(expr *TypeExpr) (component.Type, error) {
	var t component.Type
	switch expr.Kind {
	case TypeExprSequence:
		inner, err := u.resolve(expr.Inner)
		if err != nil {
			return nil, err
		}
		t = component.Sequence{Inner: inner}
	case TypeExprMap:
		value, err := u.resolve(expr.Inner)
		if err != nil {
			return nil, err
		}
		t = component.MapType{Value: value}
	case TypeExprName:
		if p, err := component.ParsePrimitive(expr.Name); err == nil {
			t = p
		} else if kind, ok := u[expr.Name]; ok {
			t = component.Named{Kind: kind, Name: expr.Name}
		} else {
			return nil, errors.Wrapf(errors.ErrUnresolvedReference,
				"unknown type name %q at %s", expr.Name, expr.Pos)
		}
	}
	if expr.Optional {
		t = component.Optional{Inner: t}
	}
	return t, nil
}

func (u typeUniverse) resolveReturn(expr *TypeExpr) (component.Type, error) {
	if expr == nil {
		return nil, nil
	}
	return u.resolve(expr)
}

func (u typeUniverse) resolveArgs(nodes []ArgNode) ([]component.Argument, error) {
	var args []component.Argument
	for _, a := range nodes {
		t, err := u.resolve(a.Type)
		if err != nil {
			return nil, err
		}
		args = append(args, component.Argument{Name: a.Name, Type: t})
	}
	return args, nil
}

// errorEnum converts an [Error]-marked enum into an Error definition.
// Member labels become variant names verbatim; no documentation is
// attached on this path. Duplicate labels are currently allowed.
type errorEnum struct {
	node *EnumNode
}

func (c errorEnum) Convert(_ *component.ComponentInterface) (*component.Error, error) {
	return &component.Error{
		Name:     c.node.Name,
		Variants: append([]string(nil), c.node.Members...),
	}, nil
}

// plainEnum converts an unmarked enum into an Enum definition.
type plainEnum struct {
	node *EnumNode
}

func (c plainEnum) Convert(_ *component.ComponentInterface) (*component.Enum, error) {
	return &component.Enum{
		Name:     c.node.Name,
		Variants: append([]string(nil), c.node.Members...),
	}, nil
}

// dictionary converts a dictionary declaration into a Record definition.
type dictionary struct {
	node  *DictNode
	types typeUniverse
}

func (c dictionary) Convert(_ *component.ComponentInterface) (*component.Record, error) {
	rec := &component.Record{Name: c.node.Name}
	for _, f := range c.node.Fields {
		t, err := c.types.resolve(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "in dictionary %s, field %s", c.node.Name, f.Name)
		}
		rec.Fields = append(rec.Fields, component.Field{Name: f.Name, Type: t})
	}
	return rec, nil
}

// object converts an interface declaration into an Object definition.
type object struct {
	node  *InterfaceNode
	types typeUniverse
}

func (c object) Convert(_ *component.ComponentInterface) (*component.Object, error) {
	obj := &component.Object{Name: c.node.Name}
	for _, ctor := range c.node.Constructors {
		args, err := c.types.resolveArgs(ctor.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "in interface %s constructor", c.node.Name)
		}
		obj.Constructors = append(obj.Constructors, component.Constructor{
			Name:   attributeValue(ctor.Attrs, "Name"),
			Args:   args,
			Throws: attributeValue(ctor.Attrs, "Throws"),
		})
	}
	methods, err := convertMethods(c.node, c.types)
	if err != nil {
		return nil, err
	}
	obj.Methods = methods
	return obj, nil
}

// callbackInterface converts a callback interface declaration.
type callbackInterface struct {
	node  *InterfaceNode
	types typeUniverse
}

func (c callbackInterface) Convert(_ *component.ComponentInterface) (*component.CallbackInterface, error) {
	methods, err := convertMethods(c.node, c.types)
	if err != nil {
		return nil, err
	}
	return &component.CallbackInterface{Name: c.node.Name, Methods: methods}, nil
}

func convertMethods(node *InterfaceNode, types typeUniverse) ([]component.Method, error) {
	var methods []component.Method
	for _, m := range node.Methods {
		ret, err := types.resolveReturn(m.Return)
		if err != nil {
			return nil, errors.Wrapf(err, "in interface %s, method %s", node.Name, m.Name)
		}
		args, err := types.resolveArgs(m.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "in interface %s, method %s", node.Name, m.Name)
		}
		methods = append(methods, component.Method{
			Name:   m.Name,
			Args:   args,
			Return: ret,
			Throws: attributeValue(m.Attrs, "Throws"),
		})
	}
	return methods, nil
}

// namespaceFunction converts one free function from the namespace block.
type namespaceFunction struct {
	node  *FunctionNode
	types typeUniverse
}

func (c namespaceFunction) Convert(_ *component.ComponentInterface) (*component.Function, error) {
	ret, err := c.types.resolveReturn(c.node.Return)
	if err != nil {
		return nil, errors.Wrapf(err, "in function %s", c.node.Name)
	}
	args, err := c.types.resolveArgs(c.node.Args)
	if err != nil {
		return nil, errors.Wrapf(err, "in function %s", c.node.Name)
	}
	return &component.Function{
		Name:   c.node.Name,
		Args:   args,
		Return: ret,
		Throws: attributeValue(c.node.Attrs, "Throws"),
	}, nil
}
