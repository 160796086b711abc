package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfill/spec"
)

type operationsInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to list operations of"`
}

type parameterSummary struct {
	Name     string `json:"name"`
	In       string `json:"in,omitempty"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type operationSummary struct {
	Path       string             `json:"path"`
	Method     string             `json:"method"`
	Parameters []parameterSummary `json:"parameters,omitempty"`
}

type operationsOutput struct {
	Total      int                `json:"total"`
	Operations []operationSummary `json:"operations,omitempty"`
}

func handleOperations(_ context.Context, _ *mcp.CallToolRequest, input operationsInput) (*mcp.CallToolResult, operationsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	ops, err := doc.Operations()
	if err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	output := operationsOutput{Total: len(ops)}
	output.Operations = makeSlice[operationSummary](len(ops))
	for _, op := range ops {
		output.Operations = append(output.Operations, summarizeOperation(op))
	}
	return nil, output, nil
}

// summarizeOperation flattens an operation into its listing form.
func summarizeOperation(op *spec.Operation) operationSummary {
	summary := operationSummary{
		Path:       op.Path,
		Method:     op.Method,
		Parameters: makeSlice[parameterSummary](len(op.Params)),
	}
	for _, p := range op.Params {
		paramType, _ := p.Spec["type"].(string)
		summary.Parameters = append(summary.Parameters, parameterSummary{
			Name:     p.Name,
			In:       p.In,
			Type:     paramType,
			Required: p.Required,
		})
	}
	return summary
}
