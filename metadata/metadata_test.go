package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, gomod string, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
	}
	return dir
}

const validGoMod = `module example.com/geometry

go 1.24

require github.com/glossa-dev/glossa v0.4.0
`

func TestResolve(t *testing.T) {
	dir := writeModule(t, validGoMod, "geometry.idl", "glossa.toml")

	target, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/geometry", target.ModulePath)
	assert.Equal(t, filepath.Join(dir, "geometry.idl"), target.IDLPath)
	assert.Equal(t, filepath.Join(dir, "glossa.toml"), target.ConfigPath)

	version, err := target.RuntimeVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.4.0", version)
}

func TestResolveWithoutConfig(t *testing.T) {
	dir := writeModule(t, validGoMod, "geometry.idl")

	target, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, target.ConfigPath)
}

func TestResolveNotAModule(t *testing.T) {
	_, err := Resolve(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Go module")
}

func TestResolveNoIDLFile(t *testing.T) {
	dir := writeModule(t, validGoMod)
	_, err := Resolve(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .idl file")
}

func TestResolveMultipleIDLFiles(t *testing.T) {
	dir := writeModule(t, validGoMod, "a.idl", "b.idl")
	_, err := Resolve(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected exactly one")
}

func TestRuntimeVersionMissingDependency(t *testing.T) {
	dir := writeModule(t, "module example.com/geometry\n\ngo 1.24\n", "geometry.idl")

	target, err := Resolve(dir)
	require.NoError(t, err)
	_, err = target.RuntimeVersion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), RuntimeModulePath)
}
