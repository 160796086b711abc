// Package spec parses OpenAPI documents and models the operations and
// parameters that the fill engine works on.
//
// A Document is the immutable root mapping of a parsed specification. It is
// shared read-only by every Operation derived from it: operations own their
// parameter fill-state but alias the document's raw spec mappings, so the
// document must not be mutated while fills are being resolved over it.
//
// # Quick Start
//
// Load a document and list its operations:
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
//	for _, op := range ops {
//		fmt.Printf("%s %s (%d parameters)\n", op.Method, op.Path, len(op.Params))
//	}
//
// Resolve a reference pointer:
//
//	pet, err := doc.Deref("#/definitions/Pet")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Related Packages
//
//   - [github.com/erraggy/oasfill/repair] - Normalize malformed parameter declarations
//   - [github.com/erraggy/oasfill/fill] - Synthesize parameter values and expand operations
package spec
