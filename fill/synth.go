package fill

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/erraggy/oasfill/fillerrors"
)

const (
	// rangeSeed seeds the generator on the bounded-numeric path. The seed is
	// fixed so the same spec yields the same value on every call: scan
	// traffic must be reproducible, the value only has to look plausible.
	rangeSeed = 1

	// defaultRangeMin substitutes a missing minimum when a maximum is declared
	defaultRangeMin = 0
	// defaultRangeMax substitutes a missing maximum when a minimum is declared
	defaultRangeMax = 56

	// sampleFilename is the fixed filename handed to the file filler
	sampleFilename = "cat.png"
	// unknownName stands in for string parameters with no declared name
	unknownName = "unknown"
)

// defaultValuesByKind maps a type/format to its fixed fill value.
var defaultValuesByKind = map[string]any{
	"int64":     42,
	"int32":     42,
	"integer":   42,
	"float":     4.2,
	"double":    4.2,
	"date":      "2017-06-30",
	"date-time": "2017-06-30T23:59:45Z",
	"boolean":   true,
}

// StringFiller produces a representative string for a parameter name.
type StringFiller func(name string) string

// FileFiller produces a representative file value for a parameter name and
// a sample filename.
type FileFiller func(name, filename string) any

// RangeInt produces a deterministic integer in [minVal, maxVal] inclusive.
type RangeInt func(minVal, maxVal int64) int64

// Synthesizer produces a representative value for a primitive, array, or
// object parameter spec. The string, file, and bounded-numeric capabilities
// are injected so tests and hosts can substitute them.
type Synthesizer struct {
	// Strings fills string parameters from their name hint.
	// Defaults to SmartFill.
	Strings StringFiller
	// Files fills file parameters. Defaults to SmartFillFile.
	Files FileFiller
	// RangeInt fills bounded numeric parameters. Defaults to a generator
	// seeded with a fixed constant for reproducibility.
	RangeInt RangeInt

	resolver *SchemaResolver
}

// NewSynthesizer creates a synthesizer resolving nested types against doc.
func NewSynthesizer(doc Dereferencer) *Synthesizer {
	return &Synthesizer{
		Strings:  SmartFill,
		Files:    SmartFillFile,
		RangeInt: seededRangeInt,
		resolver: NewSchemaResolver(doc),
	}
}

// seededRangeInt draws from a freshly seeded generator so the same range
// yields the same value on every call, forever.
func seededRangeInt(minVal, maxVal int64) int64 {
	if maxVal <= minVal {
		return minVal
	}
	r := rand.New(rand.NewSource(rangeSeed))
	span := maxVal - minVal + 1
	if span <= 0 {
		// The range is wider than int64 can express, so the span wrapped.
		// Any non-negative offset from the minimum still lands in range.
		return minVal + r.Int63()
	}
	return minVal + r.Int63n(span)
}

// Synthesize produces a representative value for the given parameter spec.
// Precedence, first match wins:
//
//  1. a non-empty enum yields its first entry
//  2. a numeric type/format with a declared minimum or maximum yields a
//     deterministic value from [minimum|0, maximum|56] inclusive
//  3. a type/format with a fixed table value yields it (42, 4.2, fixed
//     calendar constants, true)
//  4. a string delegates to the injected string filler with the parameter
//     name, or "unknown" when the name is absent
//  5. a file delegates to the injected file filler with a fixed sample
//     filename
//  6. an array yields at most one synthesized element (see array rules in
//     the package documentation)
//  7. anything else is treated as an object: resolved, then every declared
//     property is synthesized recursively
//
// A spec that resolves to neither a primitive, an array, nor a proper
// object fails with a fillerrors.ShapeError, except that a spec which
// carried a schema wrapper falls back to the constant 42.
func (s *Synthesizer) Synthesize(spec map[string]any) (any, error) {
	return s.synthesize(spec, false)
}

func (s *Synthesizer) synthesize(spec map[string]any, unwrapped bool) (any, error) {
	// A schema wrapper hides the concrete type one level down.
	if inner, ok := spec["schema"].(map[string]any); ok {
		return s.synthesize(inner, true)
	}

	// An enum can only take a value from its option list; the first listed
	// entry wins over everything else.
	if enum, ok := spec["enum"].([]any); ok && len(enum) > 0 {
		return enum[0], nil
	}

	kind := primitiveKind(spec)

	if numericKinds[kind] {
		minVal, hasMin := boundField(spec, "minimum", math.Ceil)
		maxVal, hasMax := boundField(spec, "maximum", math.Floor)
		if hasMin || hasMax {
			if !hasMin {
				minVal = defaultRangeMin
			}
			if !hasMax {
				maxVal = defaultRangeMax
			}
			return s.RangeInt(minVal, maxVal), nil
		}
	}

	if value, ok := defaultValuesByKind[kind]; ok {
		return value, nil
	}

	if kind == "string" {
		return s.Strings(nameHint(spec)), nil
	}

	if kind == "file" {
		return s.Files(nameHint(spec), sampleFilename), nil
	}

	if Classify(spec) == KindArray {
		return s.synthesizeArray(spec)
	}

	// No recognizable type or format: resolve and treat as an object.
	resolved, err := s.resolver.Resolve(spec)
	if err != nil {
		return nil, err
	}
	if isObjectShaped(resolved) {
		return s.synthesizeObject(resolved)
	}

	// A wrapper that unwrapped to nothing recognizable still gets a value.
	if unwrapped {
		return defaultValuesByKind["integer"], nil
	}

	return nil, &fillerrors.ShapeError{
		Spec:    resolved,
		Message: "spec resolves to neither primitive, array, nor object",
	}
}

// synthesizeArray fills an array spec with at most one element:
//
//   - no items declaration yields an empty sequence
//   - an items default yields a one-element sequence containing it
//   - otherwise one item is synthesized through the full pipeline; if the
//     item cannot be classified, the sequence stays empty
func (s *Synthesizer) synthesizeArray(spec map[string]any) (any, error) {
	items, ok := spec["items"].(map[string]any)
	if !ok {
		// Potentially invalid array specification, fill with an empty sequence
		return []any{}, nil
	}

	if itemDefault, ok := items["default"]; ok {
		return []any{itemDefault}, nil
	}

	value, err := s.synthesize(items, false)
	if err != nil {
		if errors.Is(err, fillerrors.ErrShape) {
			return []any{}, nil
		}
		return nil, err
	}
	return []any{value}, nil
}

// synthesizeObject assembles a name->value mapping for every declared
// property, recursing through the full pipeline. The property name is
// injected into a copy of the nested spec so string synthesis can use it;
// the document itself is never mutated.
func (s *Synthesizer) synthesizeObject(resolved map[string]any) (any, error) {
	properties, _ := resolved["properties"].(map[string]any)

	object := make(map[string]any, len(properties))
	for name, raw := range properties {
		propSpec, ok := raw.(map[string]any)
		if !ok {
			return nil, &fillerrors.ShapeError{
				Parameter: name,
				Spec:      raw,
				Message:   fmt.Sprintf("property is not an object (got %T)", raw),
			}
		}
		value, err := s.synthesize(withNameHint(propSpec, name), false)
		if err != nil {
			return nil, err
		}
		object[name] = value
	}
	return object, nil
}

// withNameHint returns a shallow copy of the property spec carrying the
// property name, leaving the original untouched.
func withNameHint(propSpec map[string]any, name string) map[string]any {
	if _, ok := propSpec["name"]; ok {
		return propSpec
	}
	cp := make(map[string]any, len(propSpec)+1)
	for k, v := range propSpec {
		cp[k] = v
	}
	cp["name"] = name
	return cp
}

// isObjectShaped reports whether a resolved spec can be filled as an
// object. Definitions often omit type "object" and declare only properties.
func isObjectShaped(spec map[string]any) bool {
	if t, _ := spec["type"].(string); t == "object" {
		return true
	}
	_, ok := spec["properties"]
	return ok
}

// nameHint returns the declared parameter name, or "unknown" when absent.
func nameHint(spec map[string]any) string {
	if name, ok := spec["name"].(string); ok {
		return name
	}
	return unknownName
}

// boundField reads a numeric bound of a spec, accepting the integer and
// float representations the YAML parser produces. Fractional bounds are
// rounded inward (minimum up, maximum down) so the drawn integer never
// escapes the declared range.
func boundField(spec map[string]any, key string, round func(float64) float64) (int64, bool) {
	switch v := spec[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case float64:
		return int64(round(v)), true
	case float32:
		return int64(round(float64(v))), true
	default:
		return 0, false
	}
}
