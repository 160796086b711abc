package fill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfill/fillerrors"
	"github.com/erraggy/oasfill/spec"
)

const expandYAML = `
swagger: "2.0"
paths:
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          type: integer
          format: int64
        - name: verbose
          in: query
          type: boolean
        - name: X-Trace
          in: header
          type: string
          default: "off"
  /search:
    get:
      parameters:
        - name: q
          in: query
          required: true
          type: string
        - name: limit
          in: query
          type: integer
          default: 10
`

// operationFor extracts one operation from a freshly parsed document.
func operationFor(t *testing.T, yamlDoc, path, method string) (*spec.Document, *spec.Operation) {
	t.Helper()
	doc, err := spec.Parse([]byte(yamlDoc))
	require.NoError(t, err)

	ops, err := doc.Operations()
	require.NoError(t, err)
	for _, op := range ops {
		if op.Path == path && op.Method == method {
			return doc, op
		}
	}
	t.Fatalf("no operation %s %s", method, path)
	return nil, nil
}

// TestExpand_RequiredOnly tests the baseline fill with optional parameters
// skipped, except headers carrying a default
func TestExpand_RequiredOnly(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	ops, err := e.Expand(op, false, nil)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	filled := ops[0]
	assert.Equal(t, 42, filled.Param("petId").Fill)
	assert.True(t, filled.Param("petId").Filled)

	assert.False(t, filled.Param("verbose").Filled)

	// Header with a default is always filled
	assert.Equal(t, "off", filled.Param("X-Trace").Fill)
	assert.True(t, filled.Param("X-Trace").Filled)
}

// TestExpand_IncludeOptional tests that optional parameters get filled too
func TestExpand_IncludeOptional(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	ops, err := e.Expand(op, true, nil)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, true, ops[0].Param("verbose").Fill)
}

// TestExpand_DefaultShortCircuit tests that the author default beats synthesis
func TestExpand_DefaultShortCircuit(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/search", "get")
	e := NewExpander(doc)

	ops, err := e.Expand(op, true, nil)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, 10, ops[0].Param("limit").Fill)
	// q has no default and matches no name hint
	assert.Equal(t, "56", ops[0].Param("q").Fill)
}

// TestExpand_OriginalUntouched tests that fills land on clones, never on the
// input operation
func TestExpand_OriginalUntouched(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	_, err := e.Expand(op, true, nil)
	require.NoError(t, err)

	for _, p := range op.Params {
		assert.False(t, p.Filled, "parameter %s of the input operation was filled", p.Name)
	}
}

// TestExpand_RepairBeforeFill tests that malformed declarations are
// normalized before values are resolved
func TestExpand_RepairBeforeFill(t *testing.T) {
	doc, op := operationFor(t, `
paths:
  /releases:
    get:
      parameters:
        - name: build
          in: query
          required: true
          type: integer
          format: int64
          default: latest
`, "/releases", "get")
	e := NewExpander(doc)

	ops, err := e.Expand(op, false, nil)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	// The string default was coerced to 0 and then used as the fill
	assert.Equal(t, 0, ops[0].Param("build").Fill)
}

// TestExpand_SingleOverride tests that one override value replaces the fill
// in place without multiplying the operation
func TestExpand_SingleOverride(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	values := NewValues()
	require.NoError(t, values.Set("/pets/{petId}", "petId", []any{7}))

	ops, err := e.Expand(op, false, values)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 7, ops[0].Param("petId").Fill)
}

// TestExpand_CartesianProduct tests expansion across multiple override lists
func TestExpand_CartesianProduct(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	values := NewValues()
	require.NoError(t, values.Set("/pets/{petId}", "petId", []any{1, 2}))
	require.NoError(t, values.Set("/pets/{petId}", "verbose", []any{true, false}))

	ops, err := e.Expand(op, true, values)
	require.NoError(t, err)
	require.Len(t, ops, 4)

	type combo struct {
		petID   any
		verbose any
	}
	got := make([]combo, 0, len(ops))
	for _, o := range ops {
		got = append(got, combo{o.Param("petId").Fill, o.Param("verbose").Fill})
	}

	// Declaration order drives the product: petId multiplies first, then
	// verbose varies fastest
	assert.Equal(t, []combo{
		{1, true},
		{1, false},
		{2, true},
		{2, false},
	}, got)

	// Untouched parameters carry the same baseline fill everywhere
	for _, o := range ops {
		assert.Equal(t, "off", o.Param("X-Trace").Fill)
	}
}

// TestExpand_OverrideSkippedParameter tests that overrides for parameters
// outside the fill set are ignored
func TestExpand_OverrideSkippedParameter(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	values := NewValues()
	require.NoError(t, values.Set("/pets/{petId}", "verbose", []any{true, false}))

	// verbose is optional and optional fill is off, so no expansion happens
	ops, err := e.Expand(op, false, values)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.False(t, ops[0].Param("verbose").Filled)
}

// TestExpand_EmptyValues tests that an empty store behaves like no store
func TestExpand_EmptyValues(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	ops, err := e.Expand(op, false, NewValues())
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

// TestExpand_NoAliasing tests that expanded operations own independent state
func TestExpand_NoAliasing(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	values := NewValues()
	require.NoError(t, values.Set("/pets/{petId}", "petId", []any{1, 2}))

	ops, err := e.Expand(op, false, values)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	ops[0].Param("X-Trace").SetFill("mutated")
	assert.Equal(t, "off", ops[1].Param("X-Trace").Fill)
}

// TestExpand_ShapeErrorNamesParameter tests that classification failures
// carry the parameter name
func TestExpand_ShapeErrorNamesParameter(t *testing.T) {
	doc, op := operationFor(t, `
paths:
  /odd:
    get:
      parameters:
        - name: mystery
          in: query
          required: true
          description: no type at all
`, "/odd", "get")
	e := NewExpander(doc)

	_, err := e.Expand(op, false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fillerrors.ErrShape))

	var shapeErr *fillerrors.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "mystery", shapeErr.Parameter)
}

// TestExpand_Deterministic tests that repeated expansion yields equal fills
func TestExpand_Deterministic(t *testing.T) {
	doc, op := operationFor(t, expandYAML, "/pets/{petId}", "get")
	e := NewExpander(doc)

	first, err := e.Expand(op, true, nil)
	require.NoError(t, err)
	second, err := e.Expand(op, true, nil)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	for i, p := range first[0].Params {
		assert.Equal(t, p.Fill, second[0].Params[i].Fill)
	}
}
