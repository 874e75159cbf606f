package gen

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/config"
	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/logger"
)

// WriteBindings renders one backend's output and writes it to outDir.
// The whole text is rendered in memory first; a failed render writes
// nothing, so a crash mid-render can never leave a truncated file behind.
func WriteBindings(b Backend, ci *component.ComponentInterface, conf *config.Config, outDir string, format bool) (string, error) {
	text, err := b.Render(ci, conf)
	if err != nil {
		return "", errors.Mark(
			errors.Wrapf(err, "rendering %s bindings for %s", b.Language(), ci.Namespace()),
			errors.ErrRenderFailed)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", outDir)
	}
	path := filepath.Join(outDir, ci.Namespace()+"."+b.FileExtension())
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	if format {
		formatOutput(b.Language(), conf, path)
	}
	return path, nil
}

// formatOutput runs the language's configured formatter over a generated
// file. Formatting is cosmetic, so a missing or failing formatter logs a
// warning instead of failing the generation.
func formatOutput(language string, conf *config.Config, path string) {
	command := conf.FormatCommand(language)
	if command == "" {
		return
	}
	words, err := shellquote.Split(command)
	if err != nil || len(words) == 0 {
		logger.Logger.Warnw("invalid formatter command",
			"language", language, "command", command, "error", err)
		return
	}

	cmd := exec.Command(words[0], append(words[1:], path)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.Logger.Warnw("formatter failed, output left unformatted",
			"language", language,
			"command", command,
			"error", err,
			"output", string(out))
	}
}
