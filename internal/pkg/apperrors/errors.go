package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)
