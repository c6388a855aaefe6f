package apperrors

import "errors"

// Sentinel errors for the product pipeline. Handlers and services return
// these (possibly wrapped); the central HTTP error handler maps each one
// to its status code and never leaks anything else to the caller.
var (
	// ErrInvalidProductID - the identifier does not match the store's id format (400).
	ErrInvalidProductID = errors.New("product id is not in a valid format")
	// ErrProductNotFound - no product exists with the given id (404).
	ErrProductNotFound = errors.New("product does not exist")
	// ErrDuplicateName - another product already uses the name (400).
	ErrDuplicateName = errors.New("a product with this name is already registered")
	// ErrPasswordMismatch - the supplied password does not authorize the mutation (401).
	ErrPasswordMismatch = errors.New("password does not match")
)

// ValidationError carries the first field-level failure produced by the
// request validator. Message is already human readable and specific to the
// field and rule that failed.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
