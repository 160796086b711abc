package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfill/repair"
)

type repairInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to repair"`
}

type repairApplied struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Method      string `json:"method"`
	Parameter   string `json:"parameter"`
	Description string `json:"description"`
}

type repairOutput struct {
	Total   int             `json:"total"`
	Repairs []repairApplied `json:"repairs,omitempty"`
}

func handleRepair(_ context.Context, _ *mcp.CallToolRequest, input repairInput) (*mcp.CallToolResult, repairOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), repairOutput{}, nil
	}

	ops, err := doc.Operations()
	if err != nil {
		return errResult(err), repairOutput{}, nil
	}

	r := repair.New()
	var output repairOutput
	for _, op := range ops {
		for _, rep := range r.RepairOperation(op) {
			output.Repairs = append(output.Repairs, repairApplied{
				Type:        string(rep.Type),
				Path:        op.Path,
				Method:      op.Method,
				Parameter:   rep.Parameter,
				Description: rep.Description,
			})
		}
	}
	output.Total = len(output.Repairs)
	return nil, output, nil
}
