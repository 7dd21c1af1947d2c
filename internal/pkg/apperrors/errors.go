package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("access token required")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upload errors
	ErrUploadFailed = errors.New("file upload failed")
)

// Domain errors
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrCourseNotFound        = errors.New("course not found")
	ErrEnrollmentNotFound    = errors.New("enrollment not found")
	ErrSingletonIncomplete   = errors.New("missing required fields to create content")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// FieldError names a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field-level errors of a rejected request
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add appends a field error
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field error was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	return fmt.Sprintf("%s: %s %s", ErrValidationFailed, e.Fields[0].Field, e.Fields[0].Message)
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// UploadError reports a rejected file upload (size or type)
type UploadError struct {
	Field   string
	Message string
}

// NewUploadError creates an UploadError
func NewUploadError(field, format string, args ...interface{}) *UploadError {
	return &UploadError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *UploadError) Error() string {
	return e.Message
}

// Unwrap makes errors.Is(err, ErrUploadFailed) hold
func (e *UploadError) Unwrap() error {
	return ErrUploadFailed
}

// IsNotFound reports whether err means the requested row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}
