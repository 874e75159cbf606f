package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-dev/glossa/component"
	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/idl"
)

func mustScan(t *testing.T, src string) *component.ComponentInterface {
	t.Helper()
	ci, err := ScanSource("test.go", src)
	require.NoError(t, err)
	return ci
}

func TestNamespaceDefaultsToPackageName(t *testing.T) {
	ci := mustScan(t, `package arithmetic`)
	assert.Equal(t, "arithmetic", ci.Namespace())
}

func TestNamespaceDirectiveOverridesPackageName(t *testing.T) {
	ci := mustScan(t, `
//glossa:namespace math
package arithmetic
`)
	assert.Equal(t, "math", ci.Namespace())
}

func TestScanErrorEnumIntForm(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:error
type Testing int

const (
	One Testing = iota
	Two
)
`)
	def, err := ci.GetErrorDefinition("Testing")
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, def.Variants)
	assert.Empty(t, def.Docs)
}

func TestScanErrorEnumStructForm(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:error NetworkError
type (
	Timeout struct{}
	Refused struct{}
)
`)
	def, err := ci.GetErrorDefinition("NetworkError")
	require.NoError(t, err)
	assert.Equal(t, []string{"Timeout", "Refused"}, def.Variants)
}

func TestFrontEndEquivalence(t *testing.T) {
	fromIDL, err := idl.Parse(`
		namespace example {};
		[Error]
		enum Testing { "one", "two" };
	`)
	require.NoError(t, err)

	fromGo := mustScan(t, `
package example

//glossa:error Testing
type (
	one struct{}
	two struct{}
)
`)

	a, err := fromIDL.GetErrorDefinition("Testing")
	require.NoError(t, err)
	b, err := fromGo.GetErrorDefinition("Testing")
	require.NoError(t, err)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Variants, b.Variants)
}

func TestExplicitDiscriminantRejected(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:error
type Testing int

const (
	One Testing = 1
	Two Testing = 2
)
`)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedError(err))
	assert.Contains(t, err.Error(), "One")
	assert.Contains(t, err.Error(), "explicit enum discriminants are not supported")
}

func TestVariantFieldsRejected(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:error NetworkError
type (
	Timeout struct{ Seconds uint32 }
	Refused struct{}
)
`)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedError(err))
	assert.Contains(t, err.Error(), "Timeout")
	assert.Contains(t, err.Error(), "error enum variants cannot have fields")
}

func TestEveryViolationReported(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:error NetworkError
type (
	Timeout struct{ Seconds uint32 }
	Refused struct{ Port uint16 }
	Other   struct{}
)
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Timeout")
	assert.Contains(t, err.Error(), "Refused")
	assert.NotContains(t, err.Error(), "Other")
}

func TestErrorDocMerging(t *testing.T) {
	ci := mustScan(t, `
package example

// does a thing
//glossa:error
type Testing int

const (
	// detail
	One Testing = iota
	Two
)
`)
	def, err := ci.GetErrorDefinition("Testing")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"does a thing",
		"",
		"  `One`:",
		"    detail",
	}, def.Docs)
}

func TestScanPlainEnum(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:enum
type Mode int

const (
	Fast Mode = iota
	Slow
)
`)
	def, err := ci.GetEnumDefinition("Mode")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fast", "Slow"}, def.Variants)
}

func TestScanRecord(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:record
type Point struct {
	X     float64
	Y     float64
	Label *string
	Tags  []string
	Attrs map[string]uint32
}
`)
	def, err := ci.GetRecordDefinition("Point")
	require.NoError(t, err)
	require.Len(t, def.Fields, 5)
	assert.Equal(t, component.Float64, def.Fields[0].Type)
	assert.Equal(t, component.Optional{Inner: component.String}, def.Fields[2].Type)
	assert.Equal(t, component.Sequence{Inner: component.String}, def.Fields[3].Type)
	assert.Equal(t, component.MapType{Value: component.UInt32}, def.Fields[4].Type)
}

func TestScanObject(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:error
type CounterError int

const (
	Overflow CounterError = iota
)

//glossa:object
type Counter struct {
	value uint64
}

//glossa:constructor
func NewCounter() *Counter { return &Counter{} }

func (c *Counter) Value() uint64 { return c.value }

//glossa:method throws=CounterError
func (c *Counter) Add(amount uint64) (uint64, error) { return 0, nil }

func (c *Counter) reset() {}
`)
	def, err := ci.GetObjectDefinition("Counter")
	require.NoError(t, err)

	require.Len(t, def.Constructors, 1)
	assert.Empty(t, def.Constructors[0].Name)

	require.Len(t, def.Methods, 2)
	assert.Equal(t, "Value", def.Methods[0].Name)
	assert.Equal(t, component.UInt64, def.Methods[0].Return)
	assert.Equal(t, "Add", def.Methods[1].Name)
	assert.Equal(t, "CounterError", def.Methods[1].Throws)

	require.NoError(t, ci.Validate())
}

func TestNamedConstructor(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:object
type Counter struct{}

//glossa:constructor
func StartingAt(value uint64) *Counter { return nil }
`)
	def, err := ci.GetObjectDefinition("Counter")
	require.NoError(t, err)
	require.Len(t, def.Constructors, 1)
	assert.Equal(t, "StartingAt", def.Constructors[0].Name)
	require.Len(t, def.Constructors[0].Args, 1)
	assert.Equal(t, "value", def.Constructors[0].Args[0].Name)
}

func TestScanCallbackInterface(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:callback
type OnEvent interface {
	Changed(value uint64)
}
`)
	def, err := ci.GetCallbackInterfaceDefinition("OnEvent")
	require.NoError(t, err)
	require.Len(t, def.Methods, 1)
	assert.Equal(t, "Changed", def.Methods[0].Name)
	assert.Nil(t, def.Methods[0].Return)
}

func TestScanFunctions(t *testing.T) {
	ci := mustScan(t, `
package example

//glossa:error
type ArithmeticError int

const (
	DivisionByZero ArithmeticError = iota
)

//glossa:function
func Add(a float64, b float64) float64 { return a + b }

//glossa:function throws=ArithmeticError
func CheckedDiv(dividend uint64, divisor uint64) (uint64, error) { return 0, nil }

func helper() {}
`)
	var fns []*component.Function
	for f := range ci.IterFunctionDefinitions() {
		fns = append(fns, f)
	}
	require.Len(t, fns, 2)
	assert.Equal(t, "Add", fns[0].Name)
	assert.Empty(t, fns[0].Throws)
	assert.Equal(t, "CheckedDiv", fns[1].Name)
	assert.Equal(t, "ArithmeticError", fns[1].Throws)
	require.NoError(t, ci.Validate())
}

func TestErrorResultNeedsThrowsOption(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:function
func Risky() (uint64, error) { return 0, nil }
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Risky")
	assert.Contains(t, err.Error(), "throws=")
}

func TestUnknownFieldTypeFails(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:record
type Holder struct {
	Value Mystery
}
`)
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedReference(err))
	assert.Contains(t, err.Error(), "Mystery")
	assert.Contains(t, err.Error(), "Holder")
}

func TestMachineSizedIntRejected(t *testing.T) {
	_, err := ScanSource("test.go", `
package example

//glossa:record
type Holder struct {
	Value int
}
`)
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedReference(err))
}

func TestUnmarkedDeclarationsIgnored(t *testing.T) {
	ci := mustScan(t, `
package example

type internal struct{}

const loose = 42

func Helper() {}
`)
	require.NoError(t, ci.Validate())
	count := 0
	for range ci.IterFunctionDefinitions() {
		count++
	}
	assert.Zero(t, count)
}
