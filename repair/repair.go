package repair

import (
	"fmt"
	"unicode"

	"github.com/erraggy/oasfill/spec"
)

// RepairType identifies the type of repair applied
type RepairType string

const (
	// RepairTypeStringFormat indicates a format restating type "string" was dropped
	RepairTypeStringFormat RepairType = "string-format"
	// RepairTypeInvalidStringFormat indicates a numeric-family format on a string type was dropped
	RepairTypeInvalidStringFormat RepairType = "invalid-string-format"
	// RepairTypeBadNumericDefault indicates a non-numeric string default on a numeric format was coerced to 0
	RepairTypeBadNumericDefault RepairType = "bad-numeric-default"
)

// invalidStringFormats are the format values that are invalid on a string
// type. The empty string covers declarations like `format: ""`.
var invalidStringFormats = []string{"int32", "int64", "float", "double", ""}

// numericFormats are the formats whose defaults must parse as numbers.
var numericFormats = []string{"double", "float", "int32", "int64"}

// Repair represents a single repair applied to a parameter declaration
type Repair struct {
	// Type identifies the category of repair
	Type RepairType
	// Parameter is the name of the repaired parameter
	Parameter string
	// Description is a human-readable description of the repair
	Description string
	// Before is the value before the repair
	Before any
	// After is the value after the repair (nil when a field was removed)
	After any
}

// Repairer applies the repair passes to an operation's parameter specs.
// The specs are mutated in place; the rest of the document is untouched.
type Repairer struct {
	// EnabledRepairs specifies which repair types to apply.
	// If nil or empty, all repair types are enabled.
	EnabledRepairs []RepairType
}

// New creates a new Repairer instance with all repairs enabled
func New() *Repairer {
	return &Repairer{}
}

// RepairOperation applies the repair passes to every parameter of the
// operation, in a fixed order. Each pass is a full pass over all parameters,
// so later passes observe the results of earlier ones. It never fails;
// non-matching specs pass through unchanged.
func (r *Repairer) RepairOperation(op *spec.Operation) []Repair {
	repairs := make([]Repair, 0)
	if r.isEnabled(RepairTypeStringFormat) {
		r.fixStringFormat(op, &repairs)
	}
	if r.isEnabled(RepairTypeInvalidStringFormat) {
		r.fixInvalidStringFormat(op, &repairs)
	}
	if r.isEnabled(RepairTypeBadNumericDefault) {
		r.fixBadNumericDefault(op, &repairs)
	}
	return repairs
}

// isEnabled checks if a repair type is enabled.
func (r *Repairer) isEnabled(repairType RepairType) bool {
	if len(r.EnabledRepairs) == 0 {
		return true // all repairs enabled by default
	}
	for _, rt := range r.EnabledRepairs {
		if rt == repairType {
			return true
		}
	}
	return false
}

// fixStringFormat drops a format of "string" declared on a string type.
// The format keyword must refine the type, not restate it.
func (r *Repairer) fixStringFormat(op *spec.Operation, repairs *[]Repair) {
	for _, p := range op.Params {
		paramFormat, _ := p.Spec["format"].(string)
		paramType, _ := p.Spec["type"].(string)

		if paramFormat == "string" && paramType == "string" {
			delete(p.Spec, "format")
			*repairs = append(*repairs, Repair{
				Type:        RepairTypeStringFormat,
				Parameter:   p.Name,
				Description: fmt.Sprintf("dropped format %q restating type %q", paramFormat, paramType),
				Before:      paramFormat,
			})
		}
	}
}

// fixInvalidStringFormat drops numeric-family and empty formats declared on
// a string type.
func (r *Repairer) fixInvalidStringFormat(op *spec.Operation, repairs *[]Repair) {
	for _, p := range op.Params {
		rawFormat, ok := p.Spec["format"]
		if !ok {
			continue
		}
		paramFormat, ok := rawFormat.(string)
		if !ok {
			continue
		}
		paramType, _ := p.Spec["type"].(string)

		if paramType == "string" && contains(invalidStringFormats, paramFormat) {
			delete(p.Spec, "format")
			*repairs = append(*repairs, Repair{
				Type:        RepairTypeInvalidStringFormat,
				Parameter:   p.Name,
				Description: fmt.Sprintf("dropped format %q invalid on type %q", paramFormat, paramType),
				Before:      paramFormat,
			})
		}
	}
}

// fixBadNumericDefault coerces to 0 a default declared as a non-numeric
// string on a numeric-family format. Parsing such a default downstream
// would fail, so a neutral value is substituted.
func (r *Repairer) fixBadNumericDefault(op *spec.Operation, repairs *[]Repair) {
	for _, p := range op.Params {
		paramFormat, _ := p.Spec["format"].(string)
		if !contains(numericFormats, paramFormat) {
			continue
		}

		paramDefault, ok := p.Spec["default"].(string)
		if !ok {
			continue
		}
		if isAllDigits(paramDefault) {
			continue
		}

		p.Spec["default"] = 0
		*repairs = append(*repairs, Repair{
			Type:        RepairTypeBadNumericDefault,
			Parameter:   p.Name,
			Description: fmt.Sprintf("coerced default %q to 0 for format %q", paramDefault, paramFormat),
			Before:      paramDefault,
			After:       0,
		})
	}
}

// isAllDigits reports whether s is non-empty and consists only of digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// contains reports whether list includes v.
func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
