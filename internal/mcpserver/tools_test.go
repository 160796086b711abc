package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreSpec = `swagger: "2.0"
info:
  title: Petstore
  version: "1.0"
paths:
  /pets:
    get:
      parameters:
        - name: limit
          in: query
          type: integer
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          type: integer
          format: int64
        - name: mode
          in: query
          type: string
          format: string
`

func TestSpecInput_Resolve(t *testing.T) {
	// Inline content
	doc, err := specInput{Content: petstoreSpec}.resolve()
	require.NoError(t, err)
	require.NotNil(t, doc)

	// File input
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreSpec), 0600))
	doc, err = specInput{File: path}.resolve()
	require.NoError(t, err)
	require.NotNil(t, doc)

	// Neither source
	_, err = specInput{}.resolve()
	assert.Error(t, err)

	// Both sources
	_, err = specInput{File: path, Content: petstoreSpec}.resolve()
	assert.Error(t, err)
}

func TestOperationsTool(t *testing.T) {
	input := operationsInput{Spec: specInput{Content: petstoreSpec}}
	result, output, err := handleOperations(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.Total)
	require.Len(t, output.Operations, 2)

	assert.Equal(t, "/pets", output.Operations[0].Path)
	assert.Equal(t, "get", output.Operations[0].Method)
	require.Len(t, output.Operations[0].Parameters, 1)
	assert.Equal(t, "limit", output.Operations[0].Parameters[0].Name)
	assert.Equal(t, "query", output.Operations[0].Parameters[0].In)
	assert.Equal(t, "integer", output.Operations[0].Parameters[0].Type)

	assert.Equal(t, "/pets/{petId}", output.Operations[1].Path)
	require.Len(t, output.Operations[1].Parameters, 2)
	assert.True(t, output.Operations[1].Parameters[0].Required, "path parameters are required")
}

func TestOperationsTool_BadSpec(t *testing.T) {
	input := operationsInput{Spec: specInput{Content: ""}}
	result, _, err := handleOperations(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExpandTool_AllOperations(t *testing.T) {
	input := expandInput{Spec: specInput{Content: petstoreSpec}}
	result, output, err := handleExpand(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.Total)
}

func TestExpandTool_SelectedOperation(t *testing.T) {
	input := expandInput{
		Spec:   specInput{Content: petstoreSpec},
		Path:   "/pets/{petId}",
		Method: "GET",
	}
	result, output, err := handleExpand(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Equal(t, 1, output.Total)
	op := output.Operations[0]
	assert.Equal(t, "/pets/{petId}", op.Path)

	require.Len(t, op.Parameters, 2)
	assert.Equal(t, "petId", op.Parameters[0].Name)
	assert.Equal(t, 42, op.Parameters[0].Fill)
	assert.True(t, op.Parameters[0].Filled)
	// mode is optional and include_optional was not set
	assert.False(t, op.Parameters[1].Filled)
}

func TestExpandTool_Values(t *testing.T) {
	input := expandInput{
		Spec:            specInput{Content: petstoreSpec},
		Path:            "/pets/{petId}",
		Method:          "get",
		IncludeOptional: true,
		Values: []valuesInput{
			{
				Path: "/pets/{petId}",
				Parameters: []parameterValues{
					{Name: "petId", Values: []any{1, 2}},
					{Name: "mode", Values: []any{"fast", "slow"}},
				},
			},
		},
	}
	result, output, err := handleExpand(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 4, output.Total)
}

func TestExpandTool_SelectorErrors(t *testing.T) {
	tests := []struct {
		name  string
		input expandInput
	}{
		{
			name:  "path without method",
			input: expandInput{Spec: specInput{Content: petstoreSpec}, Path: "/pets"},
		},
		{
			name:  "method without path",
			input: expandInput{Spec: specInput{Content: petstoreSpec}, Method: "get"},
		},
		{
			name:  "unknown operation",
			input: expandInput{Spec: specInput{Content: petstoreSpec}, Path: "/nope", Method: "get"},
		},
		{
			name: "values record without path",
			input: expandInput{
				Spec:   specInput{Content: petstoreSpec},
				Values: []valuesInput{{Parameters: []parameterValues{{Name: "x", Values: []any{1}}}}},
			},
		},
		{
			name: "values parameter without name",
			input: expandInput{
				Spec:   specInput{Content: petstoreSpec},
				Values: []valuesInput{{Path: "/pets", Parameters: []parameterValues{{Values: []any{1}}}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleExpand(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestRepairTool(t *testing.T) {
	input := repairInput{Spec: specInput{Content: petstoreSpec}}
	result, output, err := handleRepair(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	// Only the mode parameter carries a repairable declaration
	require.Equal(t, 1, output.Total)
	assert.Equal(t, "string-format", output.Repairs[0].Type)
	assert.Equal(t, "/pets/{petId}", output.Repairs[0].Path)
	assert.Equal(t, "get", output.Repairs[0].Method)
	assert.Equal(t, "mode", output.Repairs[0].Parameter)
}

func TestRepairTool_CleanSpec(t *testing.T) {
	input := repairInput{Spec: specInput{Content: `swagger: "2.0"
paths:
  /pets:
    get:
      parameters:
        - name: limit
          in: query
          type: integer
`}}
	result, output, err := handleRepair(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 0, output.Total)
	assert.Empty(t, output.Repairs)
}
