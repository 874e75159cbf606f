// Package kotlin renders Kotlin bindings: enum classes, data classes, a
// sealed exception hierarchy per error, interfaces for objects and
// callback interfaces, and top-level function declarations.
package kotlin

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

// Backend implements gen.Backend for Kotlin.
type Backend struct{}

func (Backend) Language() string      { return "kotlin" }
func (Backend) FileExtension() string { return "kt" }

const fileTemplate = `// Generated by glossa from the {{.Namespace}} interface definition. Do not edit.
package {{.Package}}

{{range .Enums}}{{kdoc .Docs 0}}enum class {{pascal .Name}} {
{{- range .Variants}}
    {{variant .}},
{{- end}}
}

{{end -}}
{{range .Errors}}{{kdoc .Docs 0}}sealed class {{pascal .Name}}Exception(message: String) : Exception(message) {
{{- $exc := printf "%sException" (pascal .Name)}}
{{- range .Variants}}
    class {{pascal .}}(message: String) : {{$exc}}(message)
{{- end}}
}

{{end -}}
{{range .Records}}{{kdoc .Docs 0}}data class {{pascal .Name}}(
{{- range .Fields}}
{{kdoc .Docs 1}}    val {{camel .Name}}: {{type .Type}},
{{- end}}
)

{{end -}}
{{range .Objects}}{{$obj := pascal .Name}}{{kdoc .Docs 0}}class {{$obj}}{{primaryCtor .Constructors}} {
{{- with namedCtors .Constructors}}
    companion object {
{{- range .}}
{{kdoc .Docs 2}}{{throws .Throws 2}}        fun {{camel .Name}}({{args .Args}}): {{$obj}} =
            throw UnsatisfiedLinkError("{{$.Namespace}} runtime not linked")
{{- end}}
    }
{{- end}}
{{- range .Methods}}
{{kdoc .Docs 1}}{{throws .Throws 1}}    fun {{camel .Name}}({{args .Args}}): {{returnType .Return}} =
        throw UnsatisfiedLinkError("{{$.Namespace}} runtime not linked")
{{- end}}
}

{{end -}}
{{range .Callbacks}}{{kdoc .Docs 0}}interface {{pascal .Name}} {
{{- range .Methods}}
{{kdoc .Docs 1}}{{throws .Throws 1}}    fun {{camel .Name}}({{args .Args}}): {{returnType .Return}}
{{- end}}
}

{{end -}}
{{range .Functions}}{{kdoc .Docs 0}}{{throws .Throws 0}}fun {{camel .Name}}({{args .Args}}): {{returnType .Return}} =
    throw UnsatisfiedLinkError("{{$.Namespace}} runtime not linked")

{{end -}}
`

var tmpl = template.Must(template.New("kotlin").Funcs(template.FuncMap{
	"type":        TypeKotlin,
	"returnType":  ReturnTypeKotlin,
	"args":        ArgsKotlin,
	"kdoc":        KDoc,
	"throws":      ThrowsKotlin,
	"pascal":      PascalCase,
	"camel":       CamelCase,
	"variant":     VariantKotlin,
	"primaryCtor": primaryCtor,
	"namedCtors":  namedCtors,
}).Parse(fileTemplate))

// primaryCtor renders the class's primary constructor from the default
// (unnamed) constructor, or nothing when the object declares none.
func primaryCtor(ctors []component.Constructor) (string, error) {
	for _, c := range ctors {
		if c.Name == "" {
			rendered, err := ArgsKotlin(c.Args)
			if err != nil {
				return "", err
			}
			return "(" + rendered + ")", nil
		}
	}
	return "", nil
}

// namedCtors returns the secondary constructors, rendered as companion
// factory functions.
func namedCtors(ctors []component.Constructor) []component.Constructor {
	var out []component.Constructor
	for _, c := range ctors {
		if c.Name != "" {
			out = append(out, c)
		}
	}
	return out
}

type templateData struct {
	Namespace string
	Package   string
	Functions []*component.Function
	Errors    []*errorData
	Enums     []*component.Enum
	Records   []*component.Record
	Objects   []*component.Object
	Callbacks []*component.CallbackInterface
}

type errorData struct {
	Name     string
	Variants []string
	Docs     []string
}

// Render produces the complete Kotlin source text.
func (Backend) Render(ci *component.ComponentInterface, conf *config.Config) (string, error) {
	pkg := ""
	if conf != nil {
		pkg = conf.Kotlin.PackageName
	}
	if pkg == "" {
		pkg = "glossa." + strings.ToLower(ci.Namespace())
	}

	data := templateData{
		Namespace: ci.Namespace(),
		Package:   pkg,
		Functions: slices.Collect(ci.IterFunctionDefinitions()),
		Enums:     slices.Collect(ci.IterEnumDefinitions()),
		Records:   slices.Collect(ci.IterRecordDefinitions()),
		Objects:   slices.Collect(ci.IterObjectDefinitions()),
		Callbacks: slices.Collect(ci.IterCallbackInterfaceDefinitions()),
	}
	for e := range ci.IterErrorDefinitions() {
		data.Errors = append(data.Errors, &errorData{
			Name: e.Name, Variants: dedupe(e.Variants), Docs: e.Docs,
		})
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "failed to execute Kotlin template")
	}
	return sb.String(), nil
}

// dedupe drops repeated variant names. The model tolerates duplicates but
// Kotlin class names cannot collide.
func dedupe(variants []string) []string {
	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
