package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/idl"
	"github.com/glossa-dev/glossa/metadata"
	"github.com/glossa-dev/glossa/version"
)

// CheckCmd verifies that a component module is ready for binding
// generation: it depends on the glossa runtime exactly once at a
// compatible version and carries a single parseable .idl file.
var CheckCmd = &cobra.Command{
	Use:   "check [DIR]",
	Short: "Check a component module for consistency",
	Long: `Check the component module in DIR (default ".") for consistency.

The check verifies that the module requires the glossa runtime exactly
once, that the required version is compatible with this toolchain, and
that the module's single .idl file parses and validates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	target, err := metadata.Resolve(dir)
	if err != nil {
		return err
	}
	pterm.Info.Printf("Checking %s\n", target.ModulePath)

	runtimeVersion, err := target.RuntimeVersion()
	if err != nil {
		return err
	}
	ok, err := version.Compatible(runtimeVersion)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Newf("%s requires glossa runtime %s, which is incompatible with toolchain %s",
			target.ModulePath, runtimeVersion, version.Version)
	}
	pterm.Success.Printf("Runtime version %s is compatible with toolchain %s\n",
		runtimeVersion, version.Version)

	ci, err := idl.ParseFile(target.IDLPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", target.IDLPath)
	}
	if err := ci.Validate(); err != nil {
		return errors.Wrapf(err, "%s is not a valid interface", target.IDLPath)
	}
	pterm.Success.Printf("Interface %s defines namespace %q\n",
		target.IDLPath, ci.Namespace())

	pterm.Success.Println("Component is consistent")
	return nil
}
