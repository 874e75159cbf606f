package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glossa-dev/glossa/gen"
	_ "github.com/glossa-dev/glossa/gen/idlgen"
	_ "github.com/glossa-dev/glossa/gen/kotlin"
	_ "github.com/glossa-dev/glossa/gen/python"
	"github.com/glossa-dev/glossa/metadata"
	"github.com/glossa-dev/glossa/watcher"
)

var (
	bindgenLanguages []string
	bindgenOutDir    string
	bindgenNoFormat  bool
	bindgenWatch     bool
)

// BindgenCmd generates bindings for a component module.
var BindgenCmd = &cobra.Command{
	Use:   "bindgen [DIR]",
	Short: "Generate foreign-language bindings for a component",
	Long: `Generate bindings for the component module in DIR (default ".").

The module must contain exactly one .idl file; an optional glossa.toml
next to it configures the backends. With --watch, glossa keeps running
and regenerates whenever the interface or configuration changes.

Examples:
  glossa bindgen -l kotlin -l python ./mycomponent
  glossa bindgen -l idl -o generated .
  glossa bindgen -l python --watch .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBindgen,
}

func init() {
	BindgenCmd.Flags().StringArrayVarP(&bindgenLanguages, "language", "l", nil,
		"Target language (repeatable; one of: idl, kotlin, python)")
	BindgenCmd.Flags().StringVarP(&bindgenOutDir, "out-dir", "o", "",
		"Directory to write generated files into (default: next to the .idl file)")
	BindgenCmd.Flags().BoolVar(&bindgenNoFormat, "no-format", false,
		"Skip running language formatters over generated files")
	BindgenCmd.Flags().BoolVar(&bindgenWatch, "watch", false,
		"Keep running and regenerate on changes")
	_ = BindgenCmd.MarkFlagRequired("language")
}

func runBindgen(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	target, err := metadata.Resolve(dir)
	if err != nil {
		return err
	}

	format := !bindgenNoFormat
	regenerate := func() error {
		_, err := gen.GenerateBindings(
			target.IDLPath, target.ConfigPath, bindgenLanguages, bindgenOutDir, format)
		return err
	}

	if !bindgenWatch {
		return regenerate()
	}

	paths := []string{target.IDLPath}
	if target.ConfigPath != "" {
		paths = append(paths, target.ConfigPath)
	}
	w, err := watcher.New(paths, regenerate)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
