package config

import (
	"strings"

	"github.com/glossa-dev/glossa/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Kotlin package names are dotted lowercase identifiers; a leading or
	// trailing dot produces uncompilable output, so reject it here.
	if name := c.Kotlin.PackageName; name != "" {
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
			return errors.Newf("kotlin.package_name %q is not a valid package name", name)
		}
	}
	return nil
}
