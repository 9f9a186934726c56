package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an application error.
type Code int

const (
	CodeValidation Code = iota + 1
	CodeConflict
	CodeNotFound
	CodeConcurrency
	CodeInternal
)

// Error is the application error carried across service boundaries.
// Validation errors collect every violated rule so callers see them together.
type Error struct {
	Code       Code     `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
	Err        error    `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation reports one or more domain rule violations.
func NewValidation(violations ...string) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    strings.Join(violations, " "),
		Violations: violations,
	}
}

// NewConflict reports a duplicate key or a delete blocked by a dependency.
func NewConflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// NewNotFound reports a missing (or, for soft-deleted entities, inactive) record.
func NewNotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewConcurrency reports a record that changed or vanished between read and write.
func NewConcurrency(message string, err error) *Error {
	return &Error{Code: CodeConcurrency, Message: message, Err: err}
}

// NewInternal wraps a storage or transport fault.
func NewInternal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// CodeOf extracts the classification of err; unclassified errors are internal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// ViolationsOf returns the collected violations of a validation error, if any.
func ViolationsOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Violations
	}
	return nil
}
