// Package fillerrors provides structured error types for oasfill.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ShapeError: a parameter spec resolved to neither a primitive, an
//     array, nor a proper object
//   - ReferenceError: $ref resolution failures
//   - OverrideError: malformed caller-supplied override value records
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	expanded, err := expander.Expand(op, true, values)
//	if err != nil {
//	    if errors.Is(err, fillerrors.ErrReference) {
//	        // The document contains a dangling $ref; nothing to retry.
//	    }
//	}
package fillerrors
