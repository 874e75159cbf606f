// Package scan is the front end for interface declarations embedded in Go
// source. Exported declarations carrying //glossa: marker directives are
// collected with go/ast and converted through the same definition
// converters as the IDL front end, so both produce identical component
// interfaces.
//
// Recognized markers:
//
//	//glossa:namespace name     (file doc comment; defaults to the package name)
//	//glossa:error [Name]       on an integer type or a grouped struct declaration
//	//glossa:enum [Name]        same forms as error
//	//glossa:record             on a struct type
//	//glossa:object             on a struct type; exported methods are included
//	//glossa:callback           on an interface type
//	//glossa:function           on a package-level function
//	//glossa:constructor        on a package-level function returning an object
//
// Fallible functions return a trailing error and name the thrown error
// enum with a throws= option, e.g. //glossa:function throws=ArithmeticError.
package scan

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// ScanSource compiles marked declarations in a single Go source text into
// a ComponentInterface. The filename is used in diagnostics only; src
// takes the forms accepted by go/parser.
func ScanSource(filename string, src any) (*component.ComponentInterface, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSyntax, "%v", err)
	}
	return build(fset, []*ast.File{file})
}

// ScanFile compiles marked declarations in the Go file at the given path.
func ScanFile(path string) (*component.ComponentInterface, error) {
	ci, err := ScanSource(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile %s", path)
	}
	return ci, nil
}

// ScanPackage loads a package by import pattern and compiles the marked
// declarations of all its files, so an interface may be spread across a
// package the way ordinary Go code is.
func ScanPackage(pattern string) (*component.ComponentInterface, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
		},
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package %s", pattern)
	}
	if len(pkgs) != 1 {
		return nil, errors.Newf("pattern %s matched %d packages, need exactly one", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Wrapf(errors.ErrSyntax, "failed to parse package %s: %v", pattern, pkg.Errors[0])
	}
	return build(pkg.Fset, pkg.Syntax)
}

func build(fset *token.FileSet, files []*ast.File) (*component.ComponentInterface, error) {
	model, err := collect(fset, files)
	if err != nil {
		return nil, err
	}
	ci := component.New(model.namespace)

	for _, shape := range model.errs {
		def, err := errorDecl{shape}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterError(def); err != nil {
			return nil, err
		}
	}

	for _, shape := range model.enums {
		def, err := enumDecl{shape}.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterEnum(def); err != nil {
			return nil, err
		}
	}

	for _, shape := range model.records {
		def, err := shape.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterRecord(def); err != nil {
			return nil, err
		}
	}

	for _, shape := range model.objects {
		def, err := shape.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterObject(def); err != nil {
			return nil, err
		}
	}

	for _, shape := range model.callbacks {
		def, err := shape.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterCallbackInterface(def); err != nil {
			return nil, err
		}
	}

	for _, shape := range model.functions {
		def, err := shape.Convert(ci)
		if err != nil {
			return nil, err
		}
		if err := ci.RegisterFunction(def); err != nil {
			return nil, err
		}
	}

	return ci, nil
}
