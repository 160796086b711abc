package fill

import (
	"fmt"

	"github.com/erraggy/oasfill/fillerrors"
)

// Dereferencer resolves a reference pointer into the concrete mapping it
// names. *spec.Document satisfies this interface.
type Dereferencer interface {
	Deref(ref string) (map[string]any, error)
}

// SchemaResolver collapses references, composites, and schema wrappers into
// a concrete type description ready for value synthesis.
type SchemaResolver struct {
	doc Dereferencer
}

// NewSchemaResolver creates a resolver bound to a document.
func NewSchemaResolver(doc Dereferencer) *SchemaResolver {
	return &SchemaResolver{doc: doc}
}

// Resolve collapses one level of indirection:
//
//   - a $ref is replaced with its dereferenced definition (single hop; the
//     result is not recursively re-resolved)
//   - an allOf has every member resolved (references and nested composites
//     included) and merged: required lists are concatenated with duplicates
//     allowed, properties merge with last-writer-wins on collision, and the
//     result always reports object type
//   - a schema wrapper is dereferenced when the wrapper is itself a
//     reference, otherwise unwrapped to the inner mapping
//   - anything else is returned unchanged
//
// Dereference failures propagate unmodified: a dangling reference cannot be
// repaired by this engine.
func (r *SchemaResolver) Resolve(s map[string]any) (map[string]any, error) {
	switch Classify(s) {
	case KindReference:
		ref, ok := s["$ref"].(string)
		if !ok {
			return nil, &fillerrors.ReferenceError{
				Message: fmt.Sprintf("$ref is not a string (got %T)", s["$ref"]),
			}
		}
		return r.doc.Deref(ref)

	case KindComposite:
		return r.mergeAllOf(s["allOf"])

	case KindWrapper:
		inner, ok := s["schema"].(map[string]any)
		if !ok {
			return nil, &fillerrors.ShapeError{
				Spec:    s,
				Message: fmt.Sprintf("schema wrapper is not an object (got %T)", s["schema"]),
			}
		}
		if ref, ok := inner["$ref"].(string); ok {
			return r.doc.Deref(ref)
		}
		return inner, nil

	default:
		return s, nil
	}
}

// mergeAllOf resolves every part of an allOf composition and merges them
// into a single object definition.
func (r *SchemaResolver) mergeAllOf(raw any) (map[string]any, error) {
	parts, ok := raw.([]any)
	if !ok {
		return nil, &fillerrors.ShapeError{
			Spec:    raw,
			Message: fmt.Sprintf("allOf is not a list (got %T)", raw),
		}
	}

	merged := map[string]any{
		"required":   []any{},
		"properties": map[string]any{},
		"type":       "object",
	}
	mergedRequired := merged["required"].([]any)
	mergedProperties := merged["properties"].(map[string]any)

	for i, rawPart := range parts {
		part, ok := rawPart.(map[string]any)
		if !ok {
			return nil, &fillerrors.ShapeError{
				Spec:    rawPart,
				Message: fmt.Sprintf("allOf part %d is not an object (got %T)", i, rawPart),
			}
		}

		resolved, err := r.Resolve(part)
		if err != nil {
			return nil, err
		}

		if required, ok := resolved["required"].([]any); ok {
			mergedRequired = append(mergedRequired, required...)
		}
		if properties, ok := resolved["properties"].(map[string]any); ok {
			for name, def := range properties {
				mergedProperties[name] = def
			}
		}
	}

	merged["required"] = mergedRequired
	return merged, nil
}
