package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Pipeline specific errors
	CodeUpstream            ErrorCode = "UPSTREAM_ERROR"
	CodeSynthesis           ErrorCode = "SYNTHESIS_ERROR"
	CodeInsufficientOptions ErrorCode = "INSUFFICIENT_OPTIONS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair for logging and error responses
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewUpstreamError wraps a failure from one of the generative backends.
// The stage name tells the caller which backend call failed.
func NewUpstreamError(stage string, cause error) *DomainError {
	return NewError(CodeUpstream, fmt.Sprintf("Generation backend failed during %s", stage), cause).
		WithContext("stage", stage)
}

// NewSynthesisError reports an unparsable quiz synthesis response. There is
// no safe structural fallback for a quiz, so this aborts the request.
func NewSynthesisError(cause error) *DomainError {
	return NewError(CodeSynthesis, "Synthesis backend returned unparsable quiz content", cause)
}

// NewInsufficientOptionsError reports a draft that arrived with fewer than
// two answer options, which breaks the synthesis contract.
func NewInsufficientOptionsError(count int) *DomainError {
	return NewError(CodeInsufficientOptions, "Synthesis backend did not return enough options", nil).
		WithContext("option_count", count)
}

// ValidationError represents a single invalid request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all invalid fields of a request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid value %q", value)}
}
