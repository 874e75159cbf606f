// Package idlgen is the canonical IDL backend: it renders a
// ComponentInterface back into the IDL dialect the idl package parses.
// It is the reference backend proving the model round-trips losslessly
// through at least one concrete syntax.
package idlgen

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

// Backend implements gen.Backend for the canonical IDL emitter.
type Backend struct{}

func (Backend) Language() string      { return "idl" }
func (Backend) FileExtension() string { return "idl" }

const fileTemplate = `namespace {{.Namespace}} {
{{- range .Functions}}
{{docstring .Docs 1}}{{throws .Throws 1}}{{"\t"}}{{returnType .Return}} {{.Name}}({{args .Args}});
{{- end}}
};
{{- range .Errors}}

{{docstring .Docs 0}}[Error]
enum {{.Name}} {
{{- range .Variants}}
{{"\t"}}"{{.}}",
{{- end}}
};
{{- end}}
{{- range .Enums}}

{{docstring .Docs 0}}enum {{.Name}} {
{{- range .Variants}}
{{"\t"}}"{{.}}",
{{- end}}
};
{{- end}}
{{- range .Records}}

{{docstring .Docs 0}}dictionary {{.Name}} {
{{- range .Fields}}
{{docstring .Docs 1}}{{"\t"}}{{idlType .Type}} {{.Name}};
{{- end}}
};
{{- end}}
{{- range .Objects}}

{{docstring .Docs 0}}interface {{.Name}} {
{{- range .Constructors}}
{{docstring .Docs 1}}{{ctorAttrs . 1}}{{"\t"}}constructor({{args .Args}});
{{- end}}
{{- range .Methods}}
{{docstring .Docs 1}}{{throws .Throws 1}}{{"\t"}}{{returnType .Return}} {{.Name}}({{args .Args}});
{{- end}}
};
{{- end}}
{{- range .Callbacks}}

{{docstring .Docs 0}}callback interface {{.Name}} {
{{- range .Methods}}
{{docstring .Docs 1}}{{throws .Throws 1}}{{"\t"}}{{returnType .Return}} {{.Name}}({{args .Args}});
{{- end}}
};
{{- end}}
`

var tmpl = template.Must(template.New("idl").Funcs(template.FuncMap{
	"idlType":    TypeIDL,
	"returnType": ReturnTypeIDL,
	"args":       ArgsIDL,
	"docstring":  Docstring,
	"throws":     ThrowsIDL,
	"ctorAttrs":  CtorAttrsIDL,
}).Parse(fileTemplate))

type templateData struct {
	Namespace string
	Functions []*component.Function
	Errors    []*component.Error
	Enums     []*component.Enum
	Records   []*component.Record
	Objects   []*component.Object
	Callbacks []*component.CallbackInterface
}

// Render produces the complete IDL document text.
func (Backend) Render(ci *component.ComponentInterface, _ *config.Config) (string, error) {
	data := templateData{
		Namespace: ci.Namespace(),
		Functions: slices.Collect(ci.IterFunctionDefinitions()),
		Errors:    slices.Collect(ci.IterErrorDefinitions()),
		Enums:     slices.Collect(ci.IterEnumDefinitions()),
		Records:   slices.Collect(ci.IterRecordDefinitions()),
		Objects:   slices.Collect(ci.IterObjectDefinitions()),
		Callbacks: slices.Collect(ci.IterCallbackInterfaceDefinitions()),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "failed to execute IDL template")
	}
	text := sb.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
