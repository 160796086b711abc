// Package oasfill fills the parameters of OpenAPI operations with synthetic
// values suitable for automated security testing, and expands a single
// operation into every combination of caller-supplied candidate values.
//
// oasfill is built for scanners and fuzzers that work from an abstract API
// contract but need concrete, realistic request instances. Given an OpenAPI
// document it derives operations, repairs the malformed parameter
// declarations commonly found in hand-written or generator-produced specs,
// resolves references and composite schemas into concrete type descriptions,
// and synthesizes a deterministic fill value for every eligible parameter.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - spec: Parse OpenAPI documents and extract operations with their
//     declared parameters
//   - repair: Normalize known-malformed parameter declarations before
//     value resolution
//   - fill: Resolve schemas, synthesize parameter values, and expand
//     operations across caller-supplied override values
//
// Structured error types live in the fillerrors package and support
// errors.Is and errors.As.
//
// # Quick Start
//
// Fill and expand every operation of a document:
//
//	doc, err := spec.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ops, err := doc.Operations()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	expander := fill.NewExpander(doc)
//	for _, op := range ops {
//		expanded, err := expander.Expand(op, true, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, e := range expanded {
//			// e.Params now carry concrete fill values
//		}
//	}
//
// Enumerate combinations of caller-supplied values:
//
//	values := fill.NewValues()
//	_ = values.Set("/pets/{petId}", "petId", []any{1, 2})
//	_ = values.Set("/pets/{petId}", "verbose", []any{true, false})
//
//	expanded, err := expander.Expand(op, true, values)
//	// expanded contains 4 operations, one per combination
//
// # Determinism
//
// Synthesis is a pure function of the parameter specification: the same spec
// always produces the same value, including on the bounded-numeric path,
// which draws from a generator seeded with a fixed constant. This makes scan
// traffic reproducible across runs.
//
// # Command-Line Interface
//
// The oasfill CLI exposes the library over files:
//
//	# List operations of a spec
//	oasfill operations openapi.yaml
//
//	# Fill and expand a single operation
//	oasfill expand -path /pets/{petId} -method get -values values.yaml openapi.yaml
//
//	# Report repairs that apply to a spec
//	oasfill repair openapi.yaml
//
//	# Serve the engine as MCP tools over stdio
//	oasfill mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasfill/cmd/oasfill@latest
//
// # Concurrency
//
// All types are synchronous and carry no internal locking. A spec.Document
// is shared read-only by the operations derived from it; callers must not
// mutate it while an expansion over it is in flight. Expansion cost is the
// product of override-list sizes, and the library does not cap it - callers
// enumerating large value sets must bound them.
package oasfill
