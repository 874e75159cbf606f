package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glossa-dev/glossa/version"
)

func writeComponent(t *testing.T, runtimeVersion string) string {
	t.Helper()
	dir := t.TempDir()

	gomod := "module example.com/geometry\n\ngo 1.23\n"
	if runtimeVersion != "" {
		gomod += "\nrequire github.com/glossa-dev/glossa " + runtimeVersion + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))

	idlSource := `namespace geometry {
	double area(double width, double height);
};
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geometry.idl"), []byte(idlSource), 0o644))
	return dir
}

func TestCheckPassesForConsistentComponent(t *testing.T) {
	dir := writeComponent(t, "v"+version.Version)

	err := runCheck(CheckCmd, []string{dir})
	require.NoError(t, err)
}

func TestCheckRejectsIncompatibleRuntime(t *testing.T) {
	dir := writeComponent(t, "v0.0.1")

	err := runCheck(CheckCmd, []string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "incompatible")
}

func TestCheckRejectsMissingRuntimeDependency(t *testing.T) {
	dir := writeComponent(t, "")

	err := runCheck(CheckCmd, []string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not depend on")
}

func TestCheckRejectsBrokenInterface(t *testing.T) {
	dir := writeComponent(t, "v"+version.Version)
	broken := "namespace geometry {\n\tMystery poke();\n};\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geometry.idl"), []byte(broken), 0o644))

	err := runCheck(CheckCmd, []string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Mystery")
}
