package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-dev/glossa/errors"
)

func TestRegisterAndLookup(t *testing.T) {
	ci := New("example")
	assert.Equal(t, "example", ci.Namespace())

	require.NoError(t, ci.RegisterError(&Error{Name: "BadTimes", Variants: []string{"OhNo"}}))
	require.NoError(t, ci.RegisterEnum(&Enum{Name: "Mode", Variants: []string{"Fast", "Slow"}}))

	e, err := ci.GetErrorDefinition("BadTimes")
	require.NoError(t, err)
	assert.Equal(t, []string{"OhNo"}, e.Variants)

	_, err = ci.GetErrorDefinition("NoSuch")
	assert.True(t, errors.IsUnresolvedReference(err))
}

func TestDuplicateDefinitionRejected(t *testing.T) {
	ci := New("example")
	require.NoError(t, ci.RegisterError(&Error{Name: "BadTimes"}))

	err := ci.RegisterError(&Error{Name: "BadTimes"})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateDefinition(err))
	assert.Contains(t, err.Error(), "BadTimes")
}

func TestSameNameAcrossKindsAllowed(t *testing.T) {
	// Uniqueness is per kind, not global.
	ci := New("example")
	require.NoError(t, ci.RegisterEnum(&Enum{Name: "Status"}))
	require.NoError(t, ci.RegisterError(&Error{Name: "Status"}))
}

func TestIterationOrderIsRegistrationOrder(t *testing.T) {
	ci := New("example")
	names := []string{"Zebra", "Alpha", "Middle"}
	for _, n := range names {
		require.NoError(t, ci.RegisterEnum(&Enum{Name: n}))
	}

	var got []string
	for e := range ci.IterEnumDefinitions() {
		got = append(got, e.Name)
	}
	assert.Equal(t, names, got)
}

func TestIterationIsRestartable(t *testing.T) {
	ci := New("example")
	require.NoError(t, ci.RegisterRecord(&Record{Name: "A"}))
	require.NoError(t, ci.RegisterRecord(&Record{Name: "B"}))

	count := func() int {
		n := 0
		for range ci.IterRecordDefinitions() {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())

	// Early break must not poison the sequence.
	for range ci.IterRecordDefinitions() {
		break
	}
	assert.Equal(t, 2, count())
}

func TestResolveTypeNamedKinds(t *testing.T) {
	ci := New("example")
	require.NoError(t, ci.RegisterRecord(&Record{Name: "Point"}))

	assert.NoError(t, ci.ResolveType(Named{Kind: RecordKind, Name: "Point"}))

	err := ci.ResolveType(Named{Kind: RecordKind, Name: "Missing"})
	assert.True(t, errors.IsUnresolvedReference(err))

	// Matching name under the wrong kind does not resolve.
	err = ci.ResolveType(Named{Kind: ObjectKind, Name: "Point"})
	assert.True(t, errors.IsUnresolvedReference(err))
}

func TestResolveTypeWalksComposites(t *testing.T) {
	ci := New("example")
	require.NoError(t, ci.RegisterEnum(&Enum{Name: "Mode"}))

	deep := Optional{Inner: Sequence{Inner: MapType{Value: Named{Kind: EnumKind, Name: "Mode"}}}}
	assert.NoError(t, ci.ResolveType(deep))

	broken := Optional{Inner: Sequence{Inner: Named{Kind: EnumKind, Name: "Gone"}}}
	err := ci.ResolveType(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gone")
}

func TestValidateDefersUntilComplete(t *testing.T) {
	// Registration accepts forward references; Validate resolves them once
	// the interface is complete.
	ci := New("example")
	require.NoError(t, ci.RegisterRecord(&Record{
		Name:   "Node",
		Fields: []Field{{Name: "next", Type: Optional{Inner: Named{Kind: ObjectKind, Name: "Tree"}}}},
	}))
	assert.Error(t, ci.Validate())

	require.NoError(t, ci.RegisterObject(&Object{Name: "Tree"}))
	assert.NoError(t, ci.Validate())
}

func TestValidateChecksThrowsClause(t *testing.T) {
	ci := New("example")
	require.NoError(t, ci.RegisterFunction(&Function{Name: "go_boom", Throws: "BadTimes"}))

	err := ci.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go_boom")
	assert.Contains(t, err.Error(), "BadTimes")

	require.NoError(t, ci.RegisterError(&Error{Name: "BadTimes"}))
	assert.NoError(t, ci.Validate())
}
