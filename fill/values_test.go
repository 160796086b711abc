package fill

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfill/fillerrors"
)

// TestValues_SetGet tests the basic store contract
func TestValues_SetGet(t *testing.T) {
	v := NewValues()
	assert.True(t, v.IsEmpty())

	require.NoError(t, v.Set("/pets/{petId}", "petId", []any{1, 2}))
	assert.False(t, v.IsEmpty())

	assert.Equal(t, []any{1, 2}, v.Get("/pets/{petId}", "petId"))
	assert.Nil(t, v.Get("/pets/{petId}", "other"))
	assert.Nil(t, v.Get("/other", "petId"))
}

// TestValues_SetNil tests that a nil list is rejected
func TestValues_SetNil(t *testing.T) {
	v := NewValues()

	err := v.Set("/pets", "tag", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fillerrors.ErrConfig))
}

// TestValues_SetEmpty tests that an empty list is permitted and means no override
func TestValues_SetEmpty(t *testing.T) {
	v := NewValues()

	require.NoError(t, v.Set("/pets", "tag", []any{}))
	assert.Nil(t, v.Get("/pets", "tag"))
}

// TestValues_Copies tests that the store never aliases caller slices
func TestValues_Copies(t *testing.T) {
	v := NewValues()

	input := []any{"a", "b"}
	require.NoError(t, v.Set("/pets", "tag", input))
	input[0] = "mutated"
	assert.Equal(t, []any{"a", "b"}, v.Get("/pets", "tag"))

	got := v.Get("/pets", "tag")
	got[0] = "mutated"
	assert.Equal(t, []any{"a", "b"}, v.Get("/pets", "tag"))
}

// TestValues_Overwrite tests that setting the same key replaces the list
func TestValues_Overwrite(t *testing.T) {
	v := NewValues()

	require.NoError(t, v.Set("/pets", "tag", []any{"a"}))
	require.NoError(t, v.Set("/pets", "tag", []any{"b", "c"}))
	assert.Equal(t, []any{"b", "c"}, v.Get("/pets", "tag"))
}

// TestParseValues tests loading override definitions from YAML
func TestParseValues(t *testing.T) {
	data := []byte(`
- path: /pets/{petId}
  parameters:
    - name: petId
      values: [1, 2]
    - name: verbose
      values: [true]
- path: /pets
  parameters:
    - name: tag
      values: []
`)

	values, err := ParseValues(data)
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2}, values.Get("/pets/{petId}", "petId"))
	assert.Equal(t, []any{true}, values.Get("/pets/{petId}", "verbose"))
	assert.Nil(t, values.Get("/pets", "tag"))
	assert.False(t, values.IsEmpty())
}

// TestParseValues_Malformed tests the loader failure modes
func TestParseValues_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid YAML", data: "- path: [unclosed"},
		{name: "root is not a list", data: "path: /pets"},
		{name: "record is not an object", data: "- just-a-string"},
		{name: "record without path", data: "- parameters: []"},
		{name: "record without parameters", data: "- path: /pets"},
		{name: "parameters is not a list", data: "- path: /pets\n  parameters: nope"},
		{name: "parameter is not an object", data: "- path: /pets\n  parameters: [nope]"},
		{name: "parameter without name", data: "- path: /pets\n  parameters:\n    - values: [1]"},
		{name: "parameter without values", data: "- path: /pets\n  parameters:\n    - name: tag"},
		{name: "values is not a list", data: "- path: /pets\n  parameters:\n    - name: tag\n      values: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValues([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, fillerrors.ErrOverride), "expected an override error, got %v", err)
		})
	}
}

// TestLoadValuesFromFile tests loading override definitions from disk
func TestLoadValuesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	data := []byte("- path: /pets\n  parameters:\n    - name: tag\n      values: [cat, dog]\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	values, err := LoadValuesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []any{"cat", "dog"}, values.Get("/pets", "tag"))
}

// TestLoadValuesFromFile_Missing tests a missing file
func TestLoadValuesFromFile_Missing(t *testing.T) {
	_, err := LoadValuesFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
