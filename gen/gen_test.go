package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/gen"
	_ "github.com/glossa-dev/glossa/gen/idlgen"
	_ "github.com/glossa-dev/glossa/gen/kotlin"
	_ "github.com/glossa-dev/glossa/gen/python"
)

const testIDL = `
namespace geometry {
	f64 gradient(Line ln);
};

dictionary Line {
	f64 slope;
	f64 intercept;
};
`

func writeComponent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "geometry.idl")
	require.NoError(t, os.WriteFile(path, []byte(testIDL), 0o644))
	return path
}

func TestRegistryHasAllBackends(t *testing.T) {
	assert.Subset(t, gen.Languages(), []string{"idl", "kotlin", "python"})

	_, err := gen.Lookup("kotlin")
	assert.NoError(t, err)
	_, err = gen.Lookup("swift")
	assert.Error(t, err)
}

func TestGenerateBindings(t *testing.T) {
	idlPath := writeComponent(t)
	outDir := filepath.Join(t.TempDir(), "out")

	written, err := gen.GenerateBindings(idlPath, "", []string{"kotlin", "python", "idl"}, outDir, false)
	require.NoError(t, err)
	require.Len(t, written, 3)

	for _, path := range written {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}
	assert.Equal(t, filepath.Join(outDir, "geometry.kt"), written[0])
	assert.Equal(t, filepath.Join(outDir, "geometry.py"), written[1])
	assert.Equal(t, filepath.Join(outDir, "geometry.idl"), written[2])
}

func TestGenerateBindingsDefaultsToIDLDirectory(t *testing.T) {
	idlPath := writeComponent(t)

	written, err := gen.GenerateBindings(idlPath, "", []string{"kotlin", "python"}, "", false)
	require.NoError(t, err)
	require.Len(t, written, 2)

	dir := filepath.Dir(idlPath)
	assert.Equal(t, filepath.Join(dir, "geometry.kt"), written[0])
	assert.Equal(t, filepath.Join(dir, "geometry.py"), written[1])
}

func TestGenerateBindingsRequiresLanguages(t *testing.T) {
	idlPath := writeComponent(t)

	_, err := gen.GenerateBindings(idlPath, "", nil, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no languages requested")
}

func TestGenerateBindingsUnknownLanguage(t *testing.T) {
	idlPath := writeComponent(t)

	_, err := gen.GenerateBindings(idlPath, "", []string{"swift"}, t.TempDir(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swift")
}

func TestGenerateBindingsBadIDL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.idl")
	require.NoError(t, os.WriteFile(path, []byte(`namespace broken {`), 0o644))

	_, err := gen.GenerateBindings(path, "", []string{"idl"}, t.TempDir(), false)
	require.Error(t, err)
	assert.True(t, errors.IsSyntaxError(err))
}

type failingBackend struct{}

func (failingBackend) Language() string      { return "failing" }
func (failingBackend) FileExtension() string { return "txt" }
func (failingBackend) Render(*component.ComponentInterface, *config.Config) (string, error) {
	return "", errors.New("filter blew up")
}

func TestRenderFailureWritesNothing(t *testing.T) {
	gen.Register(failingBackend{})

	ci := component.New("geometry")
	outDir := filepath.Join(t.TempDir(), "out")

	b, err := gen.Lookup("failing")
	require.NoError(t, err)
	_, err = gen.WriteBindings(b, ci, &config.Config{}, outDir, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRenderFailed))
	assert.Contains(t, err.Error(), "filter blew up")

	// the output directory must not even exist; nothing was written
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}
