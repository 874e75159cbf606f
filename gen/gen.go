// Package gen is the backend framework for binding generation. A Backend
// is a pure function from a ComponentInterface and its configuration to
// rendered source text; this package owns the language registry, output
// writing and optional post-formatting, so backends never touch the
// filesystem.
package gen

import (
	"path/filepath"
	"sort"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/idl"
	"github.com/glossa-dev/glossa/logger"
)

// Backend renders bindings for one target language.
type Backend interface {
	// Language returns the registry key (e.g. "kotlin", "python", "idl").
	Language() string

	// FileExtension returns the extension of generated files, without
	// the dot.
	FileExtension() string

	// Render produces the complete output text. It must not write
	// anything itself; the framework persists the text only after a
	// fully successful render.
	Render(ci *component.ComponentInterface, conf *config.Config) (string, error)
}

var backends = map[string]Backend{}

// Register adds a backend to the language registry. Backend packages call
// this from init; importing a backend package is what makes its language
// available.
func Register(b Backend) {
	backends[b.Language()] = b
}

// Lookup returns the backend registered for a language.
func Lookup(language string) (Backend, error) {
	b, ok := backends[language]
	if !ok {
		return nil, errors.Newf("unsupported language %q (supported: %v)", language, Languages())
	}
	return b, nil
}

// Languages lists every registered language in sorted order.
func Languages() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateBindings compiles the IDL file and renders bindings for each
// requested language into outDir, returning the written file paths.
// An empty outDir writes next to the IDL file; an empty configPath loads
// glossa.toml from the IDL file's directory.
func GenerateBindings(idlPath, configPath string, languages []string, outDir string, format bool) ([]string, error) {
	if len(languages) == 0 {
		return nil, errors.Newf("no languages requested (supported: %v)", Languages())
	}
	if outDir == "" {
		outDir = filepath.Dir(idlPath)
	}

	ci, err := idl.ParseFile(idlPath)
	if err != nil {
		return nil, err
	}
	if err := ci.Validate(); err != nil {
		return nil, err
	}

	var conf *config.Config
	if configPath != "" {
		conf, err = config.LoadFromFile(configPath)
	} else {
		conf, err = config.Load(filepath.Dir(idlPath))
	}
	if err != nil {
		return nil, err
	}

	var written []string
	for _, language := range languages {
		b, err := Lookup(language)
		if err != nil {
			return nil, err
		}
		path, err := WriteBindings(b, ci, conf, outDir, format)
		if err != nil {
			return nil, err
		}
		logger.Logger.Infow("generated bindings",
			"language", language,
			"namespace", ci.Namespace(),
			"path", path)
		written = append(written, path)
	}
	return written, nil
}
