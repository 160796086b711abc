package fill

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfill/fillerrors"
)

// valuesKeySeparator joins the endpoint path and the parameter name into a
// store key. It is assumed never to occur in legitimate path or parameter
// names; the store does not enforce this.
const valuesKeySeparator = "|"

// Values is a keyed store of caller-supplied override values for the
// parameters of API endpoints. Overrides are applied after baseline
// synthesis: a single value replaces the synthesized fill, multiple values
// multiply the operation into one instance per value.
type Values struct {
	values map[string][]any
}

// NewValues creates an empty store.
func NewValues() *Values {
	return &Values{values: make(map[string][]any)}
}

// IsEmpty reports whether no parameter values were set.
func (v *Values) IsEmpty() bool {
	return len(v.values) == 0
}

// Set assigns the candidate values for a parameter of an API endpoint.
// The list must not be nil; an empty list is permitted and is treated as
// "no override" during expansion.
func (v *Values) Set(path, name string, values []any) error {
	if values == nil {
		return &fillerrors.ConfigError{
			Option:  "values",
			Message: fmt.Sprintf("values for (%s, %s) must be a non-nil list", path, name),
		}
	}
	v.values[valuesKey(path, name)] = append([]any(nil), values...)
	return nil
}

// Get returns the candidate values for a parameter of an API endpoint, in
// the order they were set. The list is empty when no values were assigned.
func (v *Values) Get(path, name string) []any {
	values := v.values[valuesKey(path, name)]
	if len(values) == 0 {
		return nil
	}
	return append([]any(nil), values...)
}

// valuesKey derives the store key for a (path, parameter) pair.
func valuesKey(path, name string) string {
	return path + valuesKeySeparator + name
}

// LoadValuesFromFile loads override value definitions from a YAML file.
func LoadValuesFromFile(path string) (*Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fill: failed to read %s: %w", path, err)
	}
	return ParseValues(data)
}

// ParseValues parses override value definitions from YAML:
//
//	- path: /pets/{petId}
//	  parameters:
//	    - name: petId
//	      values: [1, 2]
//	    - name: verbose
//	      values: [true, false]
//
// A record missing path or parameters, a parameter missing name or values,
// and a non-list values field each fail with a fillerrors.OverrideError.
func ParseValues(data []byte) (*Values, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &fillerrors.OverrideError{
			Index:   -1,
			Message: "invalid YAML",
			Cause:   err,
		}
	}

	records, ok := root.([]any)
	if !ok {
		return nil, &fillerrors.OverrideError{
			Index:   -1,
			Message: fmt.Sprintf("root is not a list (got %T)", root),
		}
	}

	values := NewValues()
	for i, rawRecord := range records {
		record, ok := rawRecord.(map[string]any)
		if !ok {
			return nil, &fillerrors.OverrideError{
				Index:   i,
				Message: fmt.Sprintf("record is not an object (got %T)", rawRecord),
			}
		}

		path, ok := record["path"].(string)
		if !ok {
			return nil, &fillerrors.OverrideError{
				Index:   i,
				Field:   "path",
				Message: "record does not have a path",
			}
		}

		rawParams, ok := record["parameters"]
		if !ok {
			return nil, &fillerrors.OverrideError{
				Index:   i,
				Field:   "parameters",
				Message: "record does not have parameters",
			}
		}
		params, ok := rawParams.([]any)
		if !ok {
			return nil, &fillerrors.OverrideError{
				Index:   i,
				Field:   "parameters",
				Message: fmt.Sprintf("parameters is not a list (got %T)", rawParams),
			}
		}

		for _, rawParam := range params {
			param, ok := rawParam.(map[string]any)
			if !ok {
				return nil, &fillerrors.OverrideError{
					Index:   i,
					Message: fmt.Sprintf("parameter is not an object (got %T)", rawParam),
				}
			}

			name, ok := param["name"].(string)
			if !ok {
				return nil, &fillerrors.OverrideError{
					Index:   i,
					Field:   "name",
					Message: "parameter does not have a name",
				}
			}

			rawValues, ok := param["values"]
			if !ok {
				return nil, &fillerrors.OverrideError{
					Index:     i,
					Parameter: name,
					Field:     "values",
					Message:   "parameter does not have values",
				}
			}
			paramValues, ok := rawValues.([]any)
			if !ok {
				return nil, &fillerrors.OverrideError{
					Index:     i,
					Parameter: name,
					Field:     "values",
					Message:   fmt.Sprintf("values is not a list (got %T)", rawValues),
				}
			}

			if err := values.Set(path, name, paramValues); err != nil {
				return nil, err
			}
		}
	}

	return values, nil
}
