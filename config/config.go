// Package config loads glossa.toml, the per-component configuration file
// that sits next to a component's .idl file. Every table is optional;
// generation works with an absent file.
package config

// Config is the root of a glossa.toml file.
type Config struct {
	Bindings BindingsConfig `mapstructure:"bindings"`
	Kotlin   KotlinConfig   `mapstructure:"kotlin"`
	Python   PythonConfig   `mapstructure:"python"`
}

// BindingsConfig holds settings shared by all backends.
type BindingsConfig struct {
	// Format runs each language's formatter command over generated files.
	// Disabled per invocation with --no-format.
	Format bool `mapstructure:"format"`
}

// KotlinConfig configures the Kotlin backend.
type KotlinConfig struct {
	// PackageName is the Kotlin package of the generated file. Empty
	// derives "glossa.<namespace>" from the component namespace.
	PackageName string `mapstructure:"package_name"`
	// FormatCommand is the formatter invocation, split shell-style.
	FormatCommand string `mapstructure:"format_command"`
}

// PythonConfig configures the Python backend.
type PythonConfig struct {
	// ModuleDocstring overrides the generated module's leading docstring.
	ModuleDocstring string `mapstructure:"module_docstring"`
	FormatCommand   string `mapstructure:"format_command"`
}

// FormatCommand returns the configured formatter command line for a
// language, or "" when none applies.
func (c *Config) FormatCommand(language string) string {
	if !c.Bindings.Format {
		return ""
	}
	switch language {
	case "kotlin":
		return c.Kotlin.FormatCommand
	case "python":
		return c.Python.FormatCommand
	}
	return ""
}
