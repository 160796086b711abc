package spec

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfill/fillerrors"
)

// Document is an immutable parsed OpenAPI document.
//
// The document is owned by the caller and shared read-only during fill and
// expansion calls. No internal locking is provided: callers must not mutate
// the document concurrently with an in-flight expansion over it.
type Document struct {
	root       map[string]any
	sourcePath string
}

// Parse parses an OpenAPI document from YAML or JSON bytes.
// The YAML parser handles both formats.
func Parse(data []byte) (*Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("spec: failed to parse document: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("spec: document is empty")
	}
	return &Document{root: root}, nil
}

// Load reads and parses an OpenAPI document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spec: failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.sourcePath = path
	return doc, nil
}

// SourcePath returns the file path the document was loaded from, or "" when
// the document was parsed from bytes.
func (d *Document) SourcePath() string {
	return d.sourcePath
}

// Deref resolves a local reference pointer (e.g. "#/definitions/Pet") into
// the concrete mapping it names. Resolution is a single hop: the returned
// mapping is not recursively re-resolved.
//
// A dangling or malformed reference fails with a fillerrors.ReferenceError.
func (d *Document) Deref(ref string) (map[string]any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, &fillerrors.ReferenceError{
			Ref:     ref,
			Message: "only local references are supported",
		}
	}

	trimmed := strings.TrimPrefix(ref, "#")
	if trimmed == "" || trimmed == "/" {
		return d.root, nil
	}

	parts := strings.Split(strings.TrimPrefix(trimmed, "/"), "/")

	// Traverse the document
	current := any(d.root)
	for i, part := range parts {
		// Unescape JSON Pointer tokens
		part = unescapeJSONPointer(part)

		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, &fillerrors.ReferenceError{
					Ref:     ref,
					Message: fmt.Sprintf("reference not found (missing key: %s)", part),
				}
			}
			current = next

		case []any:
			// Handle array indexing per RFC 6901 (JSON Pointer)
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, &fillerrors.ReferenceError{
					Ref:     ref,
					Message: fmt.Sprintf("invalid array index %q (must be a non-negative integer)", part),
				}
			}
			if index < 0 || index >= len(v) {
				return nil, &fillerrors.ReferenceError{
					Ref:     ref,
					Message: fmt.Sprintf("array index %d out of bounds (length %d)", index, len(v)),
				}
			}
			current = v[index]

		default:
			return nil, &fillerrors.ReferenceError{
				Ref:     ref,
				Message: fmt.Sprintf("cannot traverse into type %T at #/%s", v, strings.Join(parts[:i], "/")),
			}
		}
	}

	resolved, ok := current.(map[string]any)
	if !ok {
		return nil, &fillerrors.ReferenceError{
			Ref:     ref,
			Message: fmt.Sprintf("dereferenced value is not an object (got %T)", current),
		}
	}
	return resolved, nil
}

// unescapeJSONPointer unescapes JSON Pointer tokens
// Per RFC 6901, ~1 represents / and ~0 represents ~
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
