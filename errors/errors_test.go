package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelClassification(t *testing.T) {
	dup := NewDuplicateDefinition("error", "Testing")
	assert.True(t, IsDuplicateDefinition(dup))
	assert.False(t, IsUnresolvedReference(dup))
	assert.Contains(t, dup.Error(), `error "Testing"`)

	missing := NewUnresolvedReference("record", "Point")
	assert.True(t, IsUnresolvedReference(missing))
	assert.False(t, IsDuplicateDefinition(missing))
	assert.Contains(t, missing.Error(), `"Point"`)
}

func TestWrappingPreservesSentinel(t *testing.T) {
	err := Wrap(ErrSyntax, "unexpected token '}' at line 3")
	err = Wrap(err, "parsing example.idl")

	assert.True(t, IsSyntaxError(err))
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "example.idl")
}

func TestRenderFailureIsTyped(t *testing.T) {
	err := Wrapf(ErrRenderFailed, "kotlin backend: unknown type")
	assert.True(t, Is(err, ErrRenderFailed))
	assert.False(t, IsSyntaxError(err))
}
