package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, conf.Bindings.Format)
	assert.Equal(t, "ktlint -F", conf.Kotlin.FormatCommand)
	assert.Empty(t, conf.Kotlin.PackageName)
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfig(t, `
[bindings]
format = false

[kotlin]
package_name = "com.example.geometry"

[python]
module_docstring = "Geometry bindings."
`)
	conf, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, conf.Bindings.Format)
	assert.Equal(t, "com.example.geometry", conf.Kotlin.PackageName)
	assert.Equal(t, "Geometry bindings.", conf.Python.ModuleDocstring)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, `
[kotlin]
package_name = "com.example.geometry"
`)
	conf, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, conf.Bindings.Format)
	assert.Equal(t, "ktlint -F", conf.Kotlin.FormatCommand)
}

func TestInvalidKotlinPackageName(t *testing.T) {
	dir := writeConfig(t, `
[kotlin]
package_name = "com..example"
`)
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kotlin.package_name")
}

func TestMalformedTOML(t *testing.T) {
	dir := writeConfig(t, `[kotlin`)
	_, err := Load(dir)
	require.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	conf := &Config{
		Bindings: BindingsConfig{Format: true},
		Kotlin:   KotlinConfig{FormatCommand: "ktlint -F"},
	}
	assert.Equal(t, "ktlint -F", conf.FormatCommand("kotlin"))
	assert.Empty(t, conf.FormatCommand("python"))
	assert.Empty(t, conf.FormatCommand("idl"))

	conf.Bindings.Format = false
	assert.Empty(t, conf.FormatCommand("kotlin"))
}
