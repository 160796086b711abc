// Package repair normalizes known-malformed parameter declarations before
// value resolution.
//
// Hand-written specifications, and ones emitted by broken generators, carry
// a few recurring mistakes that would derail value synthesis. The repairer
// applies a fixed sequence of passes over an operation's parameters and
// records every change it makes. It never fails: parameters that do not
// match a pass are left untouched, and applying the repairer twice is the
// same as applying it once.
//
// # Supported Repairs
//
//   - string-format: type "string" declared with format "string". The format
//     must refine the type, not restate it, so the format is dropped.
//   - invalid-string-format: type "string" declared with a numeric-family
//     format (int32, int64, float, double) or an empty format. These formats
//     are invalid on strings and are dropped.
//   - bad-numeric-default: a numeric-family format whose declared default is
//     a string that is not all digits (commonly ""). The default is coerced
//     to 0 to prevent a downstream numeric-parse failure.
//
// # Quick Start
//
//	r := repair.New()
//	repairs := r.RepairOperation(op)
//	for _, rep := range repairs {
//		fmt.Printf("%s: %s\n", rep.Type, rep.Description)
//	}
//
// # Related Packages
//
//   - [github.com/erraggy/oasfill/spec] - Parse documents and extract operations
//   - [github.com/erraggy/oasfill/fill] - Synthesize values after repairing
package repair
