package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/cmd/glossa/commands"
	"github.com/glossa-dev/glossa/logger"
)

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "glossa - interface compiler and bindings generator",
	Long: `glossa compiles a component's interface definition into foreign-language
bindings. The interface comes from a WebIDL-like .idl file or from
//glossa: marked declarations in the component's Go source; both compile
to the same model, from which backends render Kotlin, Python and
canonical IDL.

Examples:
  glossa bindgen -l kotlin -l python ./mycomponent
  glossa bindgen -l python --watch .
  glossa check ./mycomponent
  glossa version --json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(commands.BindgenCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
