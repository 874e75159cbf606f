package scan

import (
	"go/ast"
	"go/token"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
)

// The collector walks the parsed files and gathers every marked
// declaration into shape nodes. Shapes are this front end's counterpart
// of the IDL syntax tree: they carry just enough of the Go declaration to
// convert it, and each implements the converter capability in convert.go.

// enumVariant is one member of an enum-shaped declaration.
type enumVariant struct {
	Name string
	Docs []string

	// set for int-shaped enums when the const spec carries a value
	// expression other than a bare iota
	explicitValue bool
	// set for struct-shaped variants declaring payload fields
	hasFields bool
}

// enumShape covers both marked enums and marked errors, in either of the
// two accepted declaration forms: a defined integer type with an
// associated const block, or a grouped type declaration of empty struct
// variants under a single marker.
type enumShape struct {
	Name     string
	Docs     []string
	Variants []enumVariant
	isError  bool
	types    *typeUniverse
}

type recordShape struct {
	Name   string
	Docs   []string
	Struct *ast.StructType
	types  *typeUniverse
}

type callableShape struct {
	Name   string
	Docs   []string
	Sig    *ast.FuncType
	Throws string
	types  *typeUniverse
}

type objectShape struct {
	Name         string
	Docs         []string
	Constructors []callableShape
	Methods      []callableShape
	types        *typeUniverse
}

type callbackShape struct {
	Name    string
	Docs    []string
	Methods []callableShape
	types   *typeUniverse
}

type sourceModel struct {
	namespace string
	errs      []*enumShape
	enums     []*enumShape
	records   []*recordShape
	objects   []*objectShape
	callbacks []*callbackShape
	functions []*callableShape

	objectsByName map[string]*objectShape
	types         *typeUniverse
}

// collect builds the source model from a set of parsed files. It runs two
// sweeps: the first gathers marked type declarations and builds the type
// universe, the second attaches const-block variants, methods and
// constructors, which may appear in any file and in any order.
func collect(fset *token.FileSet, files []*ast.File) (*sourceModel, error) {
	model := &sourceModel{
		objectsByName: map[string]*objectShape{},
		types:         &typeUniverse{kinds: map[string]component.NamedKind{}, fset: fset},
	}

	for _, file := range files {
		if model.namespace == "" {
			model.namespace = file.Name.Name
		}
		if err := model.collectTypes(file); err != nil {
			return nil, err
		}
	}
	for _, file := range files {
		if err := model.collectMembers(file); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func (m *sourceModel) collectTypes(file *ast.File) error {
	if _, dir := splitDoc(file.Doc); dir != nil && dir.name == "namespace" {
		if name := dir.arg(0); name != "" {
			m.namespace = name
		}
	}

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		docs, dir := splitDoc(gd.Doc)
		if dir == nil {
			continue
		}
		switch dir.name {
		case "error", "enum":
			shape, err := m.newEnumShape(gd, dir, docs)
			if err != nil {
				return err
			}
			if shape.isError {
				m.errs = append(m.errs, shape)
				m.types.kinds[shape.Name] = component.ErrorKind
			} else {
				m.enums = append(m.enums, shape)
				m.types.kinds[shape.Name] = component.EnumKind
			}
		case "record":
			ts, st, err := singleStructSpec(gd, m.types)
			if err != nil {
				return err
			}
			m.records = append(m.records, &recordShape{
				Name: ts.Name.Name, Docs: docs, Struct: st, types: m.types,
			})
			m.types.kinds[ts.Name.Name] = component.RecordKind
		case "object":
			ts, _, err := singleStructSpec(gd, m.types)
			if err != nil {
				return err
			}
			shape := &objectShape{Name: ts.Name.Name, Docs: docs, types: m.types}
			m.objects = append(m.objects, shape)
			m.objectsByName[shape.Name] = shape
			m.types.kinds[shape.Name] = component.ObjectKind
		case "callback":
			shape, err := m.newCallbackShape(gd, docs)
			if err != nil {
				return err
			}
			m.callbacks = append(m.callbacks, shape)
			m.types.kinds[shape.Name] = component.CallbackKind
		}
	}
	return nil
}

// newEnumShape dispatches on the declaration form: a single non-struct
// type spec is the integer form (variants arrive later from a const
// block), anything else is the grouped struct-variant form, which needs
// its enum name from the marker since the group itself is anonymous.
func (m *sourceModel) newEnumShape(gd *ast.GenDecl, dir *directive, docs []string) (*enumShape, error) {
	isError := dir.name == "error"

	if len(gd.Specs) == 1 {
		ts := gd.Specs[0].(*ast.TypeSpec)
		if _, isStruct := ts.Type.(*ast.StructType); !isStruct {
			return &enumShape{Name: ts.Name.Name, Docs: docs, isError: isError, types: m.types}, nil
		}
	}

	name := dir.arg(0)
	if name == "" {
		return nil, errors.Wrapf(errors.ErrSyntax,
			"grouped %s declaration needs a name on its marker at %s",
			dir.name, m.types.position(gd.Pos()))
	}
	shape := &enumShape{Name: name, Docs: docs, isError: isError, types: m.types}
	for _, spec := range gd.Specs {
		ts := spec.(*ast.TypeSpec)
		st, isStruct := ts.Type.(*ast.StructType)
		if !isStruct {
			return nil, errors.Wrapf(errors.ErrSyntax,
				"variant %q of %s must be a struct type at %s",
				ts.Name.Name, name, m.types.position(ts.Pos()))
		}
		variantDocs, _ := splitDoc(ts.Doc)
		shape.Variants = append(shape.Variants, enumVariant{
			Name:      ts.Name.Name,
			Docs:      variantDocs,
			hasFields: st.Fields != nil && len(st.Fields.List) > 0,
		})
	}
	return shape, nil
}

func (m *sourceModel) newCallbackShape(gd *ast.GenDecl, docs []string) (*callbackShape, error) {
	if len(gd.Specs) != 1 {
		return nil, errors.Wrapf(errors.ErrSyntax,
			"callback marker must sit on a single interface declaration at %s",
			m.types.position(gd.Pos()))
	}
	ts := gd.Specs[0].(*ast.TypeSpec)
	iface, ok := ts.Type.(*ast.InterfaceType)
	if !ok {
		return nil, errors.Wrapf(errors.ErrSyntax,
			"callback type %q must be an interface at %s",
			ts.Name.Name, m.types.position(ts.Pos()))
	}
	shape := &callbackShape{Name: ts.Name.Name, Docs: docs, types: m.types}
	for _, method := range iface.Methods.List {
		sig, ok := method.Type.(*ast.FuncType)
		if !ok || len(method.Names) == 0 {
			return nil, errors.Wrapf(errors.ErrSyntax,
				"callback %q cannot embed other interfaces at %s",
				ts.Name.Name, m.types.position(method.Pos()))
		}
		methodDocs, dir := splitDoc(method.Doc)
		shape.Methods = append(shape.Methods, callableShape{
			Name:   method.Names[0].Name,
			Docs:   methodDocs,
			Sig:    sig,
			Throws: dir.opt("throws"),
			types:  m.types,
		})
	}
	return shape, nil
}

func singleStructSpec(gd *ast.GenDecl, types *typeUniverse) (*ast.TypeSpec, *ast.StructType, error) {
	if len(gd.Specs) != 1 {
		return nil, nil, errors.Wrapf(errors.ErrSyntax,
			"marker must sit on a single type declaration at %s",
			types.position(gd.Pos()))
	}
	ts := gd.Specs[0].(*ast.TypeSpec)
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrSyntax,
			"type %q must be a struct at %s", ts.Name.Name, types.position(ts.Pos()))
	}
	return ts, st, nil
}

func (m *sourceModel) collectMembers(file *ast.File) error {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok == token.CONST {
				m.collectConstBlock(d)
			}
		case *ast.FuncDecl:
			if err := m.collectFunc(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectConstBlock attaches const specs to the integer-form enum they
// belong to. A spec belongs if it names the enum type explicitly, or if
// it inherits type and value from a preceding spec of that type. The only
// accepted value expression is the bare iota opening the block; anything
// else is recorded as an explicit discriminant for later reporting.
func (m *sourceModel) collectConstBlock(gd *ast.GenDecl) {
	var current *enumShape
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if vs.Type != nil {
			current = nil
			if ident, ok := vs.Type.(*ast.Ident); ok {
				current = m.enumByName(ident.Name)
			}
			if current == nil {
				continue
			}
			bad := !isBareIota(vs.Values)
			m.appendConstVariants(current, vs, bad)
			continue
		}
		if current == nil {
			continue
		}
		// Inherited specs repeat the previous expression list; a spec
		// writing its own values overrides the iota sequence.
		m.appendConstVariants(current, vs, len(vs.Values) > 0)
	}
}

func (m *sourceModel) appendConstVariants(shape *enumShape, vs *ast.ValueSpec, explicit bool) {
	docs, _ := splitDoc(vs.Doc)
	if len(docs) == 0 {
		docs, _ = splitDoc(vs.Comment)
	}
	for _, name := range vs.Names {
		if name.Name == "_" {
			continue
		}
		shape.Variants = append(shape.Variants, enumVariant{
			Name:          name.Name,
			Docs:          docs,
			explicitValue: explicit,
		})
	}
}

func isBareIota(values []ast.Expr) bool {
	if len(values) == 0 {
		return true
	}
	if len(values) != 1 {
		return false
	}
	ident, ok := values[0].(*ast.Ident)
	return ok && ident.Name == "iota"
}

func (m *sourceModel) enumByName(name string) *enumShape {
	for _, e := range m.errs {
		if e.Name == name {
			return e
		}
	}
	for _, e := range m.enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (m *sourceModel) collectFunc(fd *ast.FuncDecl) error {
	docs, dir := splitDoc(fd.Doc)

	if fd.Recv != nil {
		shape := m.objectsByName[receiverTypeName(fd.Recv)]
		if shape == nil || !fd.Name.IsExported() {
			return nil
		}
		shape.Methods = append(shape.Methods, callableShape{
			Name:   fd.Name.Name,
			Docs:   docs,
			Sig:    fd.Type,
			Throws: dir.opt("throws"),
			types:  m.types,
		})
		return nil
	}

	if dir == nil {
		return nil
	}
	switch dir.name {
	case "function":
		m.functions = append(m.functions, &callableShape{
			Name:   fd.Name.Name,
			Docs:   docs,
			Sig:    fd.Type,
			Throws: dir.opt("throws"),
			types:  m.types,
		})
	case "constructor":
		target := constructorTarget(fd.Type)
		shape := m.objectsByName[target]
		if shape == nil {
			return errors.Wrapf(errors.ErrUnresolvedReference,
				"constructor %q does not return a marked object at %s",
				fd.Name.Name, m.types.position(fd.Pos()))
		}
		name := fd.Name.Name
		if name == "New" || name == "New"+target {
			name = ""
		}
		shape.Constructors = append(shape.Constructors, callableShape{
			Name:   name,
			Docs:   docs,
			Sig:    fd.Type,
			Throws: dir.opt("throws"),
			types:  m.types,
		})
	}
	return nil
}

func receiverTypeName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// constructorTarget names the object a constructor produces, from its
// first result type.
func constructorTarget(sig *ast.FuncType) string {
	if sig.Results == nil || len(sig.Results.List) == 0 {
		return ""
	}
	expr := sig.Results.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func isErrorIdent(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}
