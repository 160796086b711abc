package spec

import (
	"fmt"
	"sort"
)

// operationMethods lists the HTTP methods that may carry an operation in a
// path item, in the order operations are extracted.
var operationMethods = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// Operation is one path+method combination with its declared parameters.
//
// Operations share the Document they were derived from and alias its raw
// spec mappings, but own their parameter fill-state independently.
type Operation struct {
	// Path is the path template of the operation (e.g. "/pets/{petId}")
	Path string
	// Method is the lowercase HTTP method (e.g. "get")
	Method string
	// Spec is the raw operation mapping from the document
	Spec map[string]any
	// Params holds the declared parameters in declaration order.
	// Path-level parameters come ahead of operation-level ones.
	Params []*Parameter

	doc *Document
}

// Document returns the specification document the operation is bound to.
func (o *Operation) Document() *Document {
	return o.doc
}

// Param returns the declared parameter with the given name, or nil.
func (o *Operation) Param(name string) *Parameter {
	for _, p := range o.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Clone returns a copy of the operation bound to the same Document.
//
// The clone shares the raw spec mappings but owns independent fill-state:
// fill values are deep-copied so that mutating one clone's fill never
// affects another.
func (o *Operation) Clone() *Operation {
	clone := &Operation{
		Path:   o.Path,
		Method: o.Method,
		Spec:   o.Spec,
		Params: make([]*Parameter, 0, len(o.Params)),
		doc:    o.doc,
	}
	for _, p := range o.Params {
		clone.Params = append(clone.Params, &Parameter{
			Name:     p.Name,
			In:       p.In,
			Required: p.Required,
			Spec:     p.Spec,
			Fill:     deepCopyValue(p.Fill),
			Filled:   p.Filled,
		})
	}
	return clone
}

// Operations extracts every path+method combination declared in the
// document, with parameters in declaration order. Path-level parameters are
// included ahead of operation-level ones. Paths are visited in sorted order
// for deterministic output.
func (d *Document) Operations() ([]*Operation, error) {
	pathsAny, ok := d.root["paths"]
	if !ok {
		return nil, nil
	}
	paths, ok := pathsAny.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("spec: paths is not an object (got %T)", pathsAny)
	}

	// Sort path patterns for deterministic order
	patterns := make([]string, 0, len(paths))
	for pattern := range paths {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	var ops []*Operation
	for _, pattern := range patterns {
		pathItem, ok := paths[pattern].(map[string]any)
		if !ok {
			continue
		}

		shared, err := extractParameters(pathItem, pattern)
		if err != nil {
			return nil, err
		}

		for _, method := range operationMethods {
			opSpec, ok := pathItem[method].(map[string]any)
			if !ok {
				continue
			}
			declared, err := extractParameters(opSpec, pattern)
			if err != nil {
				return nil, err
			}

			op := &Operation{
				Path:   pattern,
				Method: method,
				Spec:   opSpec,
				doc:    d,
			}
			op.Params = append(op.Params, cloneParameters(shared)...)
			op.Params = append(op.Params, declared...)
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// extractParameters builds Parameters from the "parameters" list of a path
// item or operation mapping. Declaration order is preserved.
func extractParameters(owner map[string]any, pattern string) ([]*Parameter, error) {
	raw, ok := owner["parameters"]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("spec: parameters of %s is not a list (got %T)", pattern, raw)
	}

	params := make([]*Parameter, 0, len(list))
	for i, entry := range list {
		paramSpec, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("spec: parameter %d of %s is not an object (got %T)", i, pattern, entry)
		}
		name, _ := paramSpec["name"].(string)
		in, _ := paramSpec["in"].(string)
		required, _ := paramSpec["required"].(bool)
		params = append(params, &Parameter{
			Name: name,
			In:   in,
			// Path parameters are always required, declared or not
			Required: required || in == "path",
			Spec:     paramSpec,
		})
	}
	return params, nil
}

// cloneParameters copies parameter structs, including their Spec mappings,
// so that path-level parameters share neither fill-state nor repaired
// declarations across the operations of one path item.
func cloneParameters(params []*Parameter) []*Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]*Parameter, 0, len(params))
	for _, p := range params {
		paramSpec, _ := deepCopyValue(p.Spec).(map[string]any)
		out = append(out, &Parameter{
			Name:     p.Name,
			In:       p.In,
			Required: p.Required,
			Spec:     paramSpec,
		})
	}
	return out
}
