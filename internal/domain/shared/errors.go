package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
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

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrDuplicateEntry     = NewDomainError("DUPLICATE_ENTRY", "Duplicate entry. Record already exists.")
	ErrReferenceViolation = NewDomainError("REFERENCE_VIOLATION", "Referenced record does not exist.")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	ErrValidation         = NewDomainError("VALIDATION_ERROR", "Validation failed")
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "An unexpected error occurred")
)

// NotFoundError builds a NOT_FOUND error naming the resource, e.g. "Customer not found"
func NotFoundError(resource string) *DomainError {
	return NewDomainError("NOT_FOUND", resource+" not found")
}

// ValidationError builds a VALIDATION_ERROR with a specific message
func ValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_ERROR", message)
}
