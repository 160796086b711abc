// Package fill resolves parameter schemas, synthesizes representative
// values, and expands operations across caller-supplied candidate values.
//
// The engine is built for automated security testing: a scanner working from
// an OpenAPI contract needs concrete request instances, and it needs the
// same instance for the same contract on every run. All synthesis paths are
// deterministic, including the bounded-numeric one, which draws from a
// generator seeded with a fixed constant.
//
// # Components
//
//   - SchemaResolver: collapses $ref, allOf, and schema wrappers into a
//     concrete type description
//   - Synthesizer: produces a representative value for a primitive, array,
//     or object spec
//   - Expander: fills every eligible parameter of an operation and expands
//     it into the cartesian product of override values
//   - Values: keyed store of caller-supplied override values, loadable from
//     a YAML definitions file
//
// # Quick Start
//
//	doc, _ := spec.Load("openapi.yaml")
//	ops, _ := doc.Operations()
//
//	expander := fill.NewExpander(doc)
//	expanded, err := expander.Expand(ops[0], true, nil)
//
// With override values, one operation becomes one operation per value
// combination:
//
//	values := fill.NewValues()
//	_ = values.Set("/pets/{petId}", "petId", []any{1, 2})
//	_ = values.Set("/pets/{petId}", "verbose", []any{true, false})
//
//	expanded, err := expander.Expand(ops[0], true, values)
//	// len(expanded) == 4
//
// Expansion is the single locus of exponential growth: the operation count
// is the product of the override-list sizes. The library does not cap it;
// callers supplying large value sets must bound them.
//
// # Related Packages
//
//   - [github.com/erraggy/oasfill/spec] - Parse documents and extract operations
//   - [github.com/erraggy/oasfill/repair] - Normalize malformed parameter declarations
package fill
