// Package metadata resolves the build metadata of a target component
// module: the directory holding the Go module whose public API an .idl
// file describes. The bindgen and check commands both start here.
package metadata

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/errors"
)

// RuntimeModulePath is the module generated scaffolding depends on. The
// consistency check verifies the target requires it exactly once at a
// compatible version.
const RuntimeModulePath = "github.com/glossa-dev/glossa"

// TargetModule describes a resolved component module.
type TargetModule struct {
	// Dir is the absolute module directory.
	Dir string
	// ModulePath is the module path declared in go.mod.
	ModulePath string
	// IDLPath is the component's single .idl file.
	IDLPath string
	// ConfigPath is the glossa.toml path, or "" when the module has none.
	ConfigPath string
	// RuntimeVersions holds the version of every go.mod require of the
	// glossa runtime. A well-formed module has exactly one.
	RuntimeVersions []string
}

// Resolve inspects dir and builds the target's metadata. It fails when
// dir is not a Go module or does not contain exactly one .idl file.
func Resolve(dir string) (*TargetModule, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", dir)
	}

	gomodPath := filepath.Join(abs, "go.mod")
	data, err := os.ReadFile(gomodPath)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not a Go module", abs)
	}
	mod, err := modfile.Parse(gomodPath, data, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", gomodPath)
	}
	if mod.Module == nil {
		return nil, errors.Newf("%s declares no module path", gomodPath)
	}

	target := &TargetModule{
		Dir:        abs,
		ModulePath: mod.Module.Mod.Path,
	}
	for _, req := range mod.Require {
		if req.Mod.Path == RuntimeModulePath {
			target.RuntimeVersions = append(target.RuntimeVersions, req.Mod.Version)
		}
	}

	target.IDLPath, err = findIDLFile(abs)
	if err != nil {
		return nil, err
	}

	confPath := filepath.Join(abs, config.FileName)
	if _, err := os.Stat(confPath); err == nil {
		target.ConfigPath = confPath
	}
	return target, nil
}

// RuntimeVersion returns the single required runtime version.
func (t *TargetModule) RuntimeVersion() (string, error) {
	switch len(t.RuntimeVersions) {
	case 0:
		return "", errors.Newf("%s does not depend on %s", t.ModulePath, RuntimeModulePath)
	case 1:
		return strings.TrimPrefix(t.RuntimeVersions[0], "v"), nil
	default:
		return "", errors.Newf("%s requires %s %d times, expected exactly one",
			t.ModulePath, RuntimeModulePath, len(t.RuntimeVersions))
	}
}

func findIDLFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.idl"))
	if err != nil {
		return "", errors.Wrapf(err, "failed to scan %s", dir)
	}
	switch len(matches) {
	case 0:
		return "", errors.Newf("no .idl file found in %s", dir)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return "", errors.Newf("found %d .idl files in %s (%s), expected exactly one",
			len(matches), dir, strings.Join(names, ", "))
	}
}
