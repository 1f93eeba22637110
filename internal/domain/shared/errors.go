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

// NewValidationError creates a domain error for invariant-violating input
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// Domain error codes
const (
	ErrCodeValidation           = "VALIDATION"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeAlreadyExists        = "ALREADY_EXISTS"
	ErrCodeInvalidState         = "INVALID_STATE"
	ErrCodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(ErrCodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(ErrCodeAlreadyExists, "Resource already exists")
	ErrInvalidState  = NewDomainError(ErrCodeInvalidState, "Operation not allowed in current state")
	ErrUnauthorized  = NewDomainError(ErrCodeUnauthorized, "Not authorized to perform this action")
)
