package mcpserver

import (
	"fmt"

	"github.com/erraggy/oasfill/spec"
)

// specInput represents the two ways an OpenAPI document can be provided to
// a tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the document from whichever source was provided.
func (s specInput) resolve() (*spec.Document, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided, not both")
	case s.File != "":
		return spec.Load(s.File)
	case s.Content != "":
		return spec.Parse([]byte(s.Content))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

// valuesInput is the inline form of override value definitions.
type valuesInput struct {
	Path       string            `json:"path"       jsonschema:"The endpoint path the values apply to"`
	Parameters []parameterValues `json:"parameters" jsonschema:"Candidate values per parameter of the endpoint"`
}

type parameterValues struct {
	Name   string `json:"name"   jsonschema:"The parameter name"`
	Values []any  `json:"values" jsonschema:"Ordered candidate values for the parameter"`
}
