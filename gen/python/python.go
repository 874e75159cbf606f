// Package python renders Python bindings: enum classes, dataclasses, an
// exception subclass per error variant, object and callback classes, and
// module-level function declarations.
package python

import (
	"slices"
	"strings"
	"text/template"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/gen"
)

func init() {
	gen.Register(Backend{})
}

// Backend implements gen.Backend for Python.
type Backend struct{}

func (Backend) Language() string      { return "python" }
func (Backend) FileExtension() string { return "py" }

const fileTemplate = `"""{{.Docstring}}"""
# Generated by glossa from the {{.Namespace}} interface definition. Do not edit.

import enum
import typing
from dataclasses import dataclass

{{range .Enums}}
class {{.Name}}(enum.Enum):
{{- docstring .Docs 1}}
{{- range .Variants}}
    {{variant .}} = enum.auto()
{{- end}}

{{end -}}
{{range .Errors}}{{$err := .Name}}
class {{$err}}(Exception):
{{- if .Docs}}{{docstring .Docs 1}}
{{- else}}
    pass
{{- end}}

{{range .Variants}}
class {{.}}({{$err}}):
    pass

{{end -}}
{{end -}}
{{range .Records}}
@dataclass
class {{.Name}}:
{{- docstring .Docs 1}}
{{- range .Fields}}
    {{snake .Name}}: {{type .Type}}
{{- end}}

{{end -}}
{{range .Objects}}{{$obj := .Name}}
class {{$obj}}:
{{- docstring .Docs 1}}
{{- if and (not .Docs) (not .Constructors) (not .Methods)}}
    pass
{{- end}}
{{- range .Constructors}}
{{- if .Name}}
    @classmethod
    def {{snake .Name}}(cls{{args .Args}}) -> "{{$obj}}":
{{- docstring .Docs 2}}
        raise NotImplementedError
{{- else}}
    def __init__(self{{args .Args}}) -> None:
{{- docstring .Docs 2}}
        raise NotImplementedError
{{- end}}
{{end}}
{{- range .Methods}}
    def {{snake .Name}}(self{{args .Args}}) -> {{returnType .Return}}:
{{- docstring .Docs 2}}
        raise NotImplementedError

{{end -}}
{{end -}}
{{range .Callbacks}}
class {{.Name}}:
{{- docstring .Docs 1}}
{{- if and (not .Docs) (not .Methods)}}
    pass
{{- end}}
{{- range .Methods}}
    def {{snake .Name}}(self{{args .Args}}) -> {{returnType .Return}}:
{{- docstring .Docs 2}}
        raise NotImplementedError

{{end -}}
{{end -}}
{{range .Functions}}
def {{snake .Name}}({{funcArgs .Args}}) -> {{returnType .Return}}:
{{- docstring .Docs 1}}
    raise NotImplementedError

{{end -}}
`

var tmpl = template.Must(template.New("python").Funcs(template.FuncMap{
	"type":       TypePython,
	"returnType": ReturnTypePython,
	"funcArgs":   ArgsPython,
	"args":       methodArgs,
	"docstring":  docstringBlock,
	"snake":      SnakeCase,
	"variant":    VariantPython,
}).Parse(fileTemplate))

// methodArgs renders method parameters with a leading comma, so they
// splice after self.
func methodArgs(args []component.Argument) (string, error) {
	rendered, err := ArgsPython(args)
	if err != nil {
		return "", err
	}
	if rendered == "" {
		return "", nil
	}
	return ", " + rendered, nil
}

// docstringBlock is the template-facing docstring filter: it prefixes a
// newline so it can sit on trimmed template lines.
func docstringBlock(docs []string, indent int) string {
	block := Docstring(docs, indent)
	if block == "" {
		return ""
	}
	return "\n" + strings.TrimSuffix(block, "\n")
}

type templateData struct {
	Namespace string
	Docstring string
	Functions []*component.Function
	Errors    []*component.Error
	Enums     []*component.Enum
	Records   []*component.Record
	Objects   []*component.Object
	Callbacks []*component.CallbackInterface
}

// Render produces the complete Python source text.
func (Backend) Render(ci *component.ComponentInterface, conf *config.Config) (string, error) {
	doc := ""
	if conf != nil {
		doc = conf.Python.ModuleDocstring
	}
	if doc == "" {
		doc = "Python bindings for the " + ci.Namespace() + " component."
	}

	data := templateData{
		Namespace: ci.Namespace(),
		Docstring: doc,
		Functions: slices.Collect(ci.IterFunctionDefinitions()),
		Errors:    dedupeErrors(ci),
		Enums:     slices.Collect(ci.IterEnumDefinitions()),
		Records:   slices.Collect(ci.IterRecordDefinitions()),
		Objects:   slices.Collect(ci.IterObjectDefinitions()),
		Callbacks: slices.Collect(ci.IterCallbackInterfaceDefinitions()),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "failed to execute Python template")
	}
	return sb.String(), nil
}

// dedupeErrors drops repeated variant names per error. The model tolerates
// duplicates but Python class names cannot collide.
func dedupeErrors(ci *component.ComponentInterface) []*component.Error {
	var out []*component.Error
	for e := range ci.IterErrorDefinitions() {
		seen := make(map[string]struct{}, len(e.Variants))
		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
		out = append(out, &component.Error{Name: e.Name, Variants: variants, Docs: e.Docs})
	}
	return out
}
