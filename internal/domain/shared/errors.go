package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error carrying structured details
func (e *DomainError) WithDetails(details map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrConflict            = NewDomainError("CONFLICT", "Operation conflicts with existing references")
	ErrCapacityExceeded    = NewDomainError("CAPACITY_EXCEEDED", "Not enough seats remaining on this flight")
	ErrDuplicatePayment    = NewDomainError("DUPLICATE_PAYMENT", "Reservation has already been paid")
)

// NewCapacityExceededError builds a capacity rejection carrying the number of
// seats still available at the time the request was evaluated.
func NewCapacityExceededError(requested, remaining int) *DomainError {
	return &DomainError{
		Code:    ErrCapacityExceeded.Code,
		Message: fmt.Sprintf("Requested %d seat(s) but only %d remaining", requested, remaining),
		Details: map[string]interface{}{
			"requested": requested,
			"remaining": remaining,
		},
	}
}
