// Package shared contains the error types shared by all record schemas.
// This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Base validation errors that can be used for error checking with errors.Is().
var (
	// ErrValidation matches every validation failure.
	ErrValidation = errors.New("validation error")

	ErrMissingField    = errors.New("field required")
	ErrExtraField      = errors.New("extra fields not permitted")
	ErrInvalidType     = errors.New("invalid type")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrTooLong         = errors.New("value too long")
	ErrCrossField      = errors.New("cross-field rule violated")
)

// ValidationError reports a rule violated by one field of a record.
type ValidationError struct {
	Path string // e.g. "gpa", "subjects[1].credits", "address.city"
	Rule string // Human-readable rule description
	Kind error  // Base error type for errors.Is() checking
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Rule
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Rule)
}

// Unwrap returns the kind of the violation.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// WithPrefix returns a copy of the error rooted under prefix.
func (e *ValidationError) WithPrefix(prefix string) *ValidationError {
	return &ValidationError{
		Path: JoinPath(prefix, e.Path),
		Rule: e.Rule,
		Kind: e.Kind,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(path string, kind error, rule string) *ValidationError {
	return &ValidationError{Path: path, Rule: rule, Kind: kind}
}

// Missing reports an absent required field.
func Missing(path string) *ValidationError {
	return NewValidationError(path, ErrMissingField, "field required")
}

// Extra reports a field the schema does not declare.
func Extra(path string) *ValidationError {
	return NewValidationError(path, ErrExtraField, "extra fields not permitted")
}

// InvalidType reports a value of the wrong type, e.g. a string for an integer.
func InvalidType(path, want string) *ValidationError {
	return NewValidationError(path, ErrInvalidType, "invalid type: expected "+want)
}

// OutOfRange reports a numeric value outside its inclusive bounds.
func OutOfRange(path string, min, max any) *ValidationError {
	return NewValidationError(path, ErrValueOutOfRange,
		fmt.Sprintf("ensure this value is between %v and %v", min, max))
}

// AsValidation extracts a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Reroot prefixes the path of a validation error and leaves other errors untouched.
func Reroot(prefix string, err error) error {
	if ve, ok := AsValidation(err); ok {
		return ve.WithPrefix(prefix)
	}
	return err
}

// JoinPath joins two field paths. Index segments ("[2]") attach without a dot.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

// Index returns the path of the i-th element of a list field.
func Index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
