package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfill/fill"
	"github.com/erraggy/oasfill/spec"
)

type expandInput struct {
	Spec            specInput     `json:"spec"                       jsonschema:"The OpenAPI document to expand operations of"`
	Path            string        `json:"path,omitempty"             jsonschema:"Select the operation with this path template (requires method)"`
	Method          string        `json:"method,omitempty"           jsonschema:"Select the operation with this HTTP method (requires path)"`
	IncludeOptional bool          `json:"include_optional,omitempty" jsonschema:"Also fill parameters that are not required"`
	Values          []valuesInput `json:"values,omitempty"           jsonschema:"Candidate values per (path\\, parameter); multiple values multiply the operation into one instance per combination"`
}

type filledParameter struct {
	Name   string `json:"name"`
	In     string `json:"in,omitempty"`
	Fill   any    `json:"fill,omitempty"`
	Filled bool   `json:"filled"`
}

type expandedOperation struct {
	Path       string            `json:"path"`
	Method     string            `json:"method"`
	Parameters []filledParameter `json:"parameters,omitempty"`
}

type expandOutput struct {
	Total      int                 `json:"total"`
	Operations []expandedOperation `json:"operations,omitempty"`
}

func handleExpand(_ context.Context, _ *mcp.CallToolRequest, input expandInput) (*mcp.CallToolResult, expandOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	ops, err := selectOperations(doc, input.Path, input.Method)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	values, err := buildValues(input.Values)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	expander := fill.NewExpander(doc)
	var output expandOutput
	for _, op := range ops {
		expanded, err := expander.Expand(op, input.IncludeOptional, values)
		if err != nil {
			return errResult(err), expandOutput{}, nil
		}
		for _, e := range expanded {
			output.Operations = append(output.Operations, flattenOperation(e))
		}
	}
	output.Total = len(output.Operations)
	return nil, output, nil
}

// selectOperations narrows the document's operations to the requested
// path+method, or returns all of them when no selector was given.
func selectOperations(doc *spec.Document, path, method string) ([]*spec.Operation, error) {
	ops, err := doc.Operations()
	if err != nil {
		return nil, err
	}

	if path == "" && method == "" {
		return ops, nil
	}
	if path == "" || method == "" {
		return nil, fmt.Errorf("path and method must be provided together")
	}

	method = strings.ToLower(method)
	for _, op := range ops {
		if op.Path == path && op.Method == method {
			return []*spec.Operation{op}, nil
		}
	}
	return nil, fmt.Errorf("no operation %s %s in document", strings.ToUpper(method), path)
}

// buildValues converts inline value definitions into a fill.Values store.
func buildValues(inputs []valuesInput) (*fill.Values, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	values := fill.NewValues()
	for _, record := range inputs {
		if record.Path == "" {
			return nil, fmt.Errorf("values record does not have a path")
		}
		for _, param := range record.Parameters {
			if param.Name == "" {
				return nil, fmt.Errorf("values parameter of %s does not have a name", record.Path)
			}
			vals := param.Values
			if vals == nil {
				vals = []any{}
			}
			if err := values.Set(record.Path, param.Name, vals); err != nil {
				return nil, err
			}
		}
	}
	return values, nil
}

// flattenOperation reduces an expanded operation to its fill assignments.
func flattenOperation(op *spec.Operation) expandedOperation {
	out := expandedOperation{
		Path:       op.Path,
		Method:     op.Method,
		Parameters: makeSlice[filledParameter](len(op.Params)),
	}
	for _, p := range op.Params {
		out.Parameters = append(out.Parameters, filledParameter{
			Name:   p.Name,
			In:     p.In,
			Fill:   p.Fill,
			Filled: p.Filled,
		})
	}
	return out
}
