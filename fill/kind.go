package fill

// Kind classifies a raw spec mapping into the closed set of shapes the
// engine understands. Classifying once up front avoids re-probing the same
// ad-hoc keys at every consumer.
type Kind int

const (
	// KindUnknown is a mapping with no recognizable shape markers
	KindUnknown Kind = iota
	// KindReference carries a $ref pointer
	KindReference
	// KindComposite carries an allOf composition
	KindComposite
	// KindWrapper carries a schema wrapper around the concrete type
	KindWrapper
	// KindArray declares type array
	KindArray
	// KindObject declares type object or carries properties
	KindObject
	// KindPrimitive declares a non-structural type
	KindPrimitive
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindComposite:
		return "composite"
	case KindWrapper:
		return "wrapper"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Classify determines the shape of a raw spec mapping. Reference beats
// composite beats wrapper, mirroring the order resolution collapses them.
func Classify(spec map[string]any) Kind {
	if _, ok := spec["$ref"]; ok {
		return KindReference
	}
	if _, ok := spec["allOf"]; ok {
		return KindComposite
	}
	if _, ok := spec["schema"]; ok {
		return KindWrapper
	}
	switch t, _ := spec["type"].(string); t {
	case "array":
		return KindArray
	case "object":
		return KindObject
	case "":
		if _, ok := spec["properties"]; ok {
			return KindObject
		}
		return KindUnknown
	default:
		return KindPrimitive
	}
}

// primitiveKind returns the strongest type hint of a spec: the format
// refines the type, so it wins when present.
func primitiveKind(spec map[string]any) string {
	if raw, ok := spec["format"]; ok {
		if format, ok := raw.(string); ok {
			return format
		}
	}
	kind, _ := spec["type"].(string)
	return kind
}

// numericKinds are the type/format values eligible for the ranged-numeric
// synthesis path.
var numericKinds = map[string]bool{
	"integer": true,
	"float":   true,
	"double":  true,
	"int32":   true,
	"int64":   true,
}
