package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	// ErrCodeUnrecognizedIntent: the router has no mapping for the intent
	// the platform sent.
	ErrCodeUnrecognizedIntent = "UNRECOGNIZED_INTENT"
	// ErrCodeInvalidKey: a parameter value fell outside the fixed enum
	// domains (unknown loan type or query field), or was missing entirely.
	ErrCodeInvalidKey = "INVALID_KEY"
	// ErrCodeNotFound: valid key but no knowledge entry behind it. This is
	// a configuration defect, not a user error.
	ErrCodeNotFound = "NOT_FOUND"

	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Router errors
var (
	ErrUnrecognizedIntent = NewDomainError(ErrCodeUnrecognizedIntent, "intent is not handled by this webhook")
)

// Key errors
var (
	ErrInvalidLoanType   = NewDomainError(ErrCodeInvalidKey, "loan type is outside the supported set")
	ErrInvalidQueryField = NewDomainError(ErrCodeInvalidKey, "query field is outside the supported set")
	ErrMissingLoanType   = NewDomainError(ErrCodeInvalidKey, "loan type parameter is missing")
)

// Knowledge base errors
var (
	ErrEntryNotFound = NewDomainError(ErrCodeNotFound, "no knowledge entry for this loan type and field")
)
