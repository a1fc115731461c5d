package record

import (
	"fmt"
)

// ValidationError reports a locally-checkable invariant violated by a
// mutator call. The model is never updated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Field, err.Reason)
}

// ParseError reports that an input document is not well-formed XML or
// contains an element violating a model invariant. A load that fails
// with a ParseError produces no model at all.
type ParseError struct {
	Op  string
	Err error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", err.Op, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// SchemaValidationError carries the structural issues reported by the
// XSD validation phase. It is diagnostic: callers reach it through
// IsValid/Diagnostics rather than as a thrown failure.
type SchemaValidationError struct {
	Errors []string
}

func (err *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema validation issues: %v", err.Errors)
}

// Issue describes a single validation finding in a form suitable for
// caller inspection and JSON rendering.
type Issue struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}
