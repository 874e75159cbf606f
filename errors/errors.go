// Package errors provides error handling for glossa.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrDuplicateDefinition) {
//	    // handle duplicate
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Combining multiple errors
var (
	Join          = crdb.Join
	CombineErrors = crdb.CombineErrors
	Mark          = crdb.Mark
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the compilation pipeline. Every failure surfaced by
// the front ends, the registry, or the backends wraps one of these, so
// callers can classify failures with errors.Is while the message carries
// the offending identifier.
var (
	// ErrSyntax indicates malformed front-end input. Reported with a source
	// location when one is available.
	ErrSyntax = New("syntax error")

	// ErrMalformedError indicates an error-enum declaration that violates
	// the conversion rules (payload fields or an explicit discriminant).
	ErrMalformedError = New("malformed error definition")

	// ErrDuplicateDefinition indicates two definitions of the same kind
	// registered under one name.
	ErrDuplicateDefinition = New("duplicate definition")

	// ErrUnresolvedReference indicates a named type that does not resolve
	// to any registered definition.
	ErrUnresolvedReference = New("unresolved reference")

	// ErrRenderFailed indicates a backend render aborted. No partial output
	// is ever written when this is returned.
	ErrRenderFailed = New("template render failed")
)

// IsDuplicateDefinition checks if an error is or wraps ErrDuplicateDefinition.
func IsDuplicateDefinition(err error) bool {
	return err != nil && Is(err, ErrDuplicateDefinition)
}

// IsUnresolvedReference checks if an error is or wraps ErrUnresolvedReference.
func IsUnresolvedReference(err error) bool {
	return err != nil && Is(err, ErrUnresolvedReference)
}

// IsSyntaxError checks if an error is or wraps ErrSyntax.
func IsSyntaxError(err error) bool {
	return err != nil && Is(err, ErrSyntax)
}

// IsMalformedError checks if an error is or wraps ErrMalformedError.
func IsMalformedError(err error) bool {
	return err != nil && Is(err, ErrMalformedError)
}

// NewMalformedError creates a malformed-error-definition error naming the
// offending variant and the rule it breaks.
func NewMalformedError(enum, variant, rule string) error {
	return Wrap(ErrMalformedError, Newf("in %s: variant %q: %s", enum, variant, rule).Error())
}

// NewDuplicateDefinition creates a duplicate-definition error naming the
// offending kind and identifier.
func NewDuplicateDefinition(kind, name string) error {
	return Wrap(ErrDuplicateDefinition, Newf("%s %q is already registered", kind, name).Error())
}

// NewUnresolvedReference creates an unresolved-reference error naming the
// missing kind and identifier.
func NewUnresolvedReference(kind, name string) error {
	return Wrap(ErrUnresolvedReference, Newf("no %s definition named %q", kind, name).Error())
}
