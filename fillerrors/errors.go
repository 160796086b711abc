package fillerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrShape indicates a spec could not be classified for value synthesis.
	ErrShape = errors.New("shape error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrOverride indicates a malformed override value record.
	ErrOverride = errors.New("override error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ShapeError represents a parameter spec that resolved to neither a
// primitive, an array, nor a proper object. Classification is exhausted and
// no fill value can be produced for the parameter.
type ShapeError struct {
	// Parameter is the name of the parameter being filled ("" if unknown)
	Parameter string
	// Spec is the resolved spec mapping that could not be classified
	Spec any
	// Message describes the classification failure
	Message string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape error"
	if e.Parameter != "" {
		msg += " for parameter " + e.Parameter
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ShapeError has no underlying cause.
func (e *ShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ReferenceError represents a failure to resolve a $ref.
// Dereference failures are fatal: the document cannot be repaired by this
// engine, so the error always propagates unchanged.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// OverrideError represents a malformed override value record, raised by the
// override definitions loader.
type OverrideError struct {
	// Index is the position of the record in the loaded document (-1 if unknown)
	Index int
	// Parameter is the parameter name within the record ("" if unknown)
	Parameter string
	// Field is the missing or malformed field
	Field string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *OverrideError) Error() string {
	msg := "override error"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" in record %d", e.Index)
	}
	if e.Parameter != "" {
		msg += " for parameter " + e.Parameter
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *OverrideError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *OverrideError) Is(target error) bool {
	return target == ErrOverride
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
