package scan

import (
	"go/ast"
	"strings"
)

// Marker comments look like ordinary build-constraint style directives:
//
//	//glossa:error NetworkError
//	//glossa:function throws=ArithmeticError
//
// The word after the colon names the directive. Remaining whitespace-separated
// tokens are either key=value options or positional arguments.
const markerPrefix = "glossa:"

type directive struct {
	name string
	args []string
	opts map[string]string
}

// arg returns the positional argument at index i, or "".
func (d *directive) arg(i int) string {
	if d == nil || i >= len(d.args) {
		return ""
	}
	return d.args[i]
}

// opt returns the value of a key=value option, or "".
func (d *directive) opt(key string) string {
	if d == nil {
		return ""
	}
	return d.opts[key]
}

func parseDirective(comment string) (*directive, bool) {
	text, ok := strings.CutPrefix(comment, "//")
	if !ok {
		return nil, false
	}
	text, ok = strings.CutPrefix(text, markerPrefix)
	if !ok {
		return nil, false
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, false
	}
	d := &directive{name: fields[0], opts: map[string]string{}}
	for _, f := range fields[1:] {
		if key, value, isOpt := strings.Cut(f, "="); isOpt {
			d.opts[key] = value
		} else {
			d.args = append(d.args, f)
		}
	}
	return d, true
}

// splitDoc separates a declaration's comment group into its documentation
// lines and its glossa directive, if any. Directive lines never appear in
// the documentation.
func splitDoc(cg *ast.CommentGroup) ([]string, *directive) {
	if cg == nil {
		return nil, nil
	}
	var docs []string
	var dir *directive
	for _, c := range cg.List {
		if d, ok := parseDirective(c.Text); ok {
			if dir == nil {
				dir = d
			}
			continue
		}
		for _, line := range commentLines(c.Text) {
			docs = append(docs, line)
		}
	}
	// A comment group that is only a directive contributes no docs.
	for len(docs) > 0 && docs[len(docs)-1] == "" {
		docs = docs[:len(docs)-1]
	}
	for len(docs) > 0 && docs[0] == "" {
		docs = docs[1:]
	}
	return docs, dir
}

func commentLines(text string) []string {
	if after, ok := strings.CutPrefix(text, "//"); ok {
		return []string{strings.TrimPrefix(after, " ")}
	}
	// Block comment.
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "* ")
		lines = append(lines, strings.TrimPrefix(line, "*"))
	}
	return lines
}
