package spec

// Parameter is one named input (query/path/header/body) of an Operation.
//
// The Spec mapping aliases the document and must be treated as read-only by
// value resolution; only the repair passes mutate it. Fill is unset until a
// value has been resolved for the parameter.
type Parameter struct {
	// Name is the declared parameter name
	Name string
	// In is the parameter location: "query", "path", "header", "body", "formData"
	In string
	// Required reports whether the parameter must be sent.
	// Path parameters are always required.
	Required bool
	// Spec is the raw parameter mapping from the document
	Spec map[string]any
	// Fill is the concrete value assigned for a synthesized request
	Fill any
	// Filled reports whether Fill has been set. A nil Fill with Filled true
	// is a deliberate null value, not an unset one.
	Filled bool
}

// SetFill assigns the parameter's fill value.
func (p *Parameter) SetFill(v any) {
	p.Fill = v
	p.Filled = true
}

// Default returns the author-supplied default from the raw spec, or nil.
func (p *Parameter) Default() any {
	return p.Spec["default"]
}

// IsHeader reports whether the parameter is a header.
func (p *Parameter) IsHeader() bool {
	return p.In == "header"
}

// HasDefaultOrEnum reports whether the parameter declares a default value or
// a non-empty enum, either directly or under a schema wrapper. Headers that
// do are ones the client would normally send, so they are filled even when
// optional parameters are otherwise skipped.
func (p *Parameter) HasDefaultOrEnum() bool {
	if specHasDefaultOrEnum(p.Spec) {
		return true
	}
	if schema, ok := p.Spec["schema"].(map[string]any); ok {
		return specHasDefaultOrEnum(schema)
	}
	return false
}

// specHasDefaultOrEnum checks one mapping for a default or a non-empty enum.
func specHasDefaultOrEnum(spec map[string]any) bool {
	if spec["default"] != nil {
		return true
	}
	if enum, ok := spec["enum"].([]any); ok {
		return len(enum) > 0
	}
	return false
}
