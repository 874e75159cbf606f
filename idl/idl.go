// Package idl is the front end for the standalone interface-definition
// language: a WebIDL-like dialect describing a component's namespace,
// enums, errors, dictionaries, interfaces and callback interfaces.
//
// Parsing happens in three stages: a hand-written lexer and
// recursive-descent parser build a front-end syntax tree, a finder pass
// collects every declared name with its kind, then the definition
// converters turn each node into a definition registered on a fresh
// ComponentInterface. The resulting interface is indistinguishable from
// one built by the Go source front end.
package idl

import (
	"os"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// Parse compiles IDL source text into a complete ComponentInterface.
func Parse(source string) (*component.ComponentInterface, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// ParseFile compiles the IDL file at the given path.
func ParseFile(path string) (*component.ComponentInterface, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read IDL file %s", path)
	}
	ci, err := Parse(string(source))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile %s", path)
	}
	return ci, nil
}

func build(doc *Document) (*component.ComponentInterface, error) {
	types := findTypes(doc)
	ci := component.New(doc.Namespace.Name)

	for _, node := range doc.Enums {
		if hasAttribute(node.Attrs, "Error") {
			def, err := errorEnum{node: node}.Convert(ci)
			if err != nil {
				return nil, err
			}
			if err := ci.RegisterError(def); err != nil {
				return nil, err
			}
			continue
		}
		def, err := plainEnum{node: node}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterEnum(def); err != nil {
			return nil, err
		}
	}

	for _, node := range doc.Dicts {
		def, err := dictionary{node: node, types: types}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterRecord(def); err != nil {
			return nil, err
		}
	}

	for _, node := range doc.Interfaces {
		if node.Callback {
			def, err := callbackInterface{node: node, types: types}.Convert(ci)
			if err != nil {
				return nil, err
			}
			if err := ci.RegisterCallbackInterface(def); err != nil {
				return nil, err
			}
			continue
		}
		def, err := object{node: node, types: types}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterObject(def); err != nil {
			return nil, err
		}
	}

	for _, node := range doc.Namespace.Functions {
		def, err := namespaceFunction{node: node, types: types}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterFunction(def); err != nil {
			return nil, err
		}
	}

	return ci, nil
}
