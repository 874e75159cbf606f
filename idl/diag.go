package idl

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/glossa-dev/glossa/errors"
)

// ErrorContext indicates where a diagnostic will be displayed.
type ErrorContext string

const (
	// ErrorContextTerminal formats diagnostics with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain formats diagnostics without ANSI codes (logs, editors)
	ErrorContextPlain ErrorContext = "plain"
)

// SyntaxError is a positioned diagnostic produced by the lexer or parser.
// It wraps errors.ErrSyntax so callers can classify it with errors.Is.
type SyntaxError struct {
	Message string
	Pos     Position
	Found   string // offending lexeme, empty when not applicable
}

func newSyntaxError(message string, pos Position, found string) error {
	return errors.WithStack(&SyntaxError{Message: message, Pos: pos, Found: found})
}

// Error implements the error interface with the plain format.
func (e *SyntaxError) Error() string {
	return e.Format(ErrorContextPlain)
}

// Unwrap ties the diagnostic into the sentinel taxonomy.
func (e *SyntaxError) Unwrap() error {
	return errors.ErrSyntax
}

// Format renders the diagnostic for the given display context.
func (e *SyntaxError) Format(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		msg := pterm.Red(e.Message)
		loc := pterm.Yellow(e.Pos.String())
		if e.Found != "" {
			return fmt.Sprintf("%s: found %s at %s", msg, pterm.LightCyan(e.Found), loc)
		}
		return fmt.Sprintf("%s at %s", msg, loc)
	}
	if e.Found != "" {
		return fmt.Sprintf("%s: found %q at %s", e.Message, e.Found, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
