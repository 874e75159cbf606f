package scan

import (
	"go/ast"
	"go/token"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// goPrimitives maps the fixed-width Go spellings onto interface primitives.
// The machine-sized int and uint are deliberately absent: their width is
// platform dependent, which has no stable FFI representation.
var goPrimitives = map[string]component.Primitive{
	"uint8":   component.UInt8,
	"uint16":  component.UInt16,
	"uint32":  component.UInt32,
	"uint64":  component.UInt64,
	"int8":    component.Int8,
	"int16":   component.Int16,
	"int32":   component.Int32,
	"int64":   component.Int64,
	"float32": component.Float32,
	"float64": component.Float64,
	"bool":    component.Boolean,
	"string":  component.String,
}

// typeUniverse maps every marked type name in the scanned source to its
// definition kind, mirroring the finder pass of the IDL front end so that
// declaration order never matters.
type typeUniverse struct {
	kinds map[string]component.NamedKind
	fset  *token.FileSet
}

func (u *typeUniverse) position(pos token.Pos) token.Position {
	return u.fset.Position(pos)
}

// resolve turns a Go type expression into a Type value. Pointers map to
// Optional, slices to Sequence, string-keyed maps to Map. Any named type
// must carry a glossa marker somewhere in the scanned source.
func (u *typeUniverse) resolve(expr ast.Expr) (component.Type, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		if p, ok := goPrimitives[e.Name]; ok {
			return p, nil
		}
		if kind, ok := u.kinds[e.Name]; ok {
			return component.Named{Kind: kind, Name: e.Name}, nil
		}
		return nil, errors.Wrapf(errors.ErrUnresolvedReference,
			"unknown type name %q at %s", e.Name, u.position(e.Pos()))
	case *ast.StarExpr:
		inner, err := u.resolve(e.X)
		if err != nil {
			return nil, err
		}
		return component.Optional{Inner: inner}, nil
	case *ast.ArrayType:
		if e.Len != nil {
			return nil, errors.Wrapf(errors.ErrSyntax,
				"fixed-size arrays are not supported at %s", u.position(e.Pos()))
		}
		inner, err := u.resolve(e.Elt)
		if err != nil {
			return nil, err
		}
		return component.Sequence{Inner: inner}, nil
	case *ast.MapType:
		if key, ok := e.Key.(*ast.Ident); !ok || key.Name != "string" {
			return nil, errors.Wrapf(errors.ErrSyntax,
				"map keys must be strings at %s", u.position(e.Pos()))
		}
		value, err := u.resolve(e.Value)
		if err != nil {
			return nil, err
		}
		return component.MapType{Value: value}, nil
	}
	return nil, errors.Wrapf(errors.ErrSyntax,
		"unsupported type expression at %s", u.position(expr.Pos()))
}
