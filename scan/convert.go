package scan

import (
	"go/ast"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// Definition converters for the Go front end, one per definition kind.
// They mirror the IDL converters in shape but read shape nodes collected
// from go/ast instead of IDL syntax nodes; the produced Definitions are
// indistinguishable from the other front end's.

// errorDecl and enumDecl split the shared enum shape into the two
// definition kinds it can produce, so each carries its own converter.
type errorDecl struct{ *enumShape }

type enumDecl struct{ *enumShape }

// Convert checks the enum rules before building the Definition: no
// payload fields, no explicit discriminants. Every offending variant is
// reported, not just the first. Docs are merged in the nested layout the
// backends render verbatim.
func (s errorDecl) Convert(_ *component.ComponentInterface) (*component.Error, error) {
	var violations []error
	for _, v := range s.Variants {
		if v.hasFields {
			violations = append(violations,
				errors.NewMalformedError(s.Name, v.Name, "error enum variants cannot have fields"))
		}
		if v.explicitValue {
			violations = append(violations,
				errors.NewMalformedError(s.Name, v.Name, "explicit enum discriminants are not supported"))
		}
	}
	if len(violations) > 0 {
		return nil, errors.Join(violations...)
	}

	def := &component.Error{Name: s.Name, Docs: s.Docs}
	for _, v := range s.Variants {
		def.Variants = append(def.Variants, v.Name)
	}
	for _, v := range s.Variants {
		def.DocumentVariant(v.Name, v.Docs)
	}
	return def, nil
}

// Convert applies the same declaration rules as the error converter;
// plain enums just carry their docs flat instead of the nested layout.
func (s enumDecl) Convert(_ *component.ComponentInterface) (*component.Enum, error) {
	var violations []error
	for _, v := range s.Variants {
		if v.hasFields {
			violations = append(violations,
				errors.NewMalformedError(s.Name, v.Name, "enum variants cannot have fields"))
		}
		if v.explicitValue {
			violations = append(violations,
				errors.NewMalformedError(s.Name, v.Name, "explicit enum discriminants are not supported"))
		}
	}
	if len(violations) > 0 {
		return nil, errors.Join(violations...)
	}

	def := &component.Enum{Name: s.Name, Docs: s.Docs}
	for _, v := range s.Variants {
		def.Variants = append(def.Variants, v.Name)
	}
	return def, nil
}

func (s *recordShape) Convert(_ *component.ComponentInterface) (*component.Record, error) {
	def := &component.Record{Name: s.Name, Docs: s.Docs}
	for _, field := range s.Struct.Fields.List {
		if len(field.Names) == 0 {
			return nil, errors.Wrapf(errors.ErrSyntax,
				"record %q cannot embed fields at %s",
				s.Name, s.types.position(field.Pos()))
		}
		t, err := s.types.resolve(field.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "in record %s", s.Name)
		}
		docs, _ := splitDoc(field.Doc)
		if len(docs) == 0 {
			docs, _ = splitDoc(field.Comment)
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			def.Fields = append(def.Fields, component.Field{
				Name: name.Name, Type: t, Docs: docs,
			})
		}
	}
	return def, nil
}

func (s *objectShape) Convert(_ *component.ComponentInterface) (*component.Object, error) {
	def := &component.Object{Name: s.Name, Docs: s.Docs}
	for _, ctor := range s.Constructors {
		args, _, throws, err := ctor.signature()
		if err != nil {
			return nil, errors.Wrapf(err, "in object %s", s.Name)
		}
		def.Constructors = append(def.Constructors, component.Constructor{
			Name: ctor.Name, Args: args, Throws: throws, Docs: ctor.Docs,
		})
	}
	methods, err := convertMethods(s.Name, s.Methods)
	if err != nil {
		return nil, err
	}
	def.Methods = methods
	return def, nil
}

func (s *callbackShape) Convert(_ *component.ComponentInterface) (*component.CallbackInterface, error) {
	methods, err := convertMethods(s.Name, s.Methods)
	if err != nil {
		return nil, err
	}
	return &component.CallbackInterface{Name: s.Name, Methods: methods, Docs: s.Docs}, nil
}

func convertMethods(owner string, shapes []callableShape) ([]component.Method, error) {
	var methods []component.Method
	for _, m := range shapes {
		args, ret, throws, err := m.signature()
		if err != nil {
			return nil, errors.Wrapf(err, "in %s", owner)
		}
		methods = append(methods, component.Method{
			Name: m.Name, Args: args, Return: ret, Throws: throws, Docs: m.Docs,
		})
	}
	return methods, nil
}

func (s *callableShape) Convert(_ *component.ComponentInterface) (*component.Function, error) {
	args, ret, throws, err := s.signature()
	if err != nil {
		return nil, err
	}
	return &component.Function{
		Name: s.Name, Args: args, Return: ret, Throws: throws, Docs: s.Docs,
	}, nil
}

// signature converts a Go function type. A trailing builtin error result
// stands for fallibility and requires a throws= option naming the error
// enum; it never appears as a return type.
func (s *callableShape) signature() ([]component.Argument, component.Type, string, error) {
	var args []component.Argument
	if s.Sig.Params != nil {
		for _, param := range s.Sig.Params.List {
			t, err := s.types.resolve(param.Type)
			if err != nil {
				return nil, nil, "", errors.Wrapf(err, "in %s", s.Name)
			}
			for _, name := range param.Names {
				args = append(args, component.Argument{Name: name.Name, Type: t})
			}
		}
	}

	results := resultExprs(s.Sig)
	fallible := len(results) > 0 && isErrorIdent(results[len(results)-1])
	if fallible {
		results = results[:len(results)-1]
	}
	switch {
	case fallible && s.Throws == "":
		return nil, nil, "", errors.Wrapf(errors.ErrSyntax,
			"%s returns an error but its marker has no throws= option", s.Name)
	case !fallible && s.Throws != "":
		return nil, nil, "", errors.Wrapf(errors.ErrSyntax,
			"%s declares throws=%s but does not return an error", s.Name, s.Throws)
	case len(results) > 1:
		return nil, nil, "", errors.Wrapf(errors.ErrSyntax,
			"%s has more than one value result", s.Name)
	}

	var ret component.Type
	if len(results) == 1 {
		t, err := s.types.resolve(results[0])
		if err != nil {
			return nil, nil, "", errors.Wrapf(err, "in %s", s.Name)
		}
		ret = t
	}
	return args, ret, s.Throws, nil
}

func resultExprs(sig *ast.FuncType) []ast.Expr {
	if sig.Results == nil {
		return nil
	}
	var exprs []ast.Expr
	for _, field := range sig.Results.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			exprs = append(exprs, field.Type)
		}
	}
	return exprs
}
