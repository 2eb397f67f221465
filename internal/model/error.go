package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-logic failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

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
	// Identity failures are deliberately opaque: a malformed token and an
	// unknown account produce the same error so callers cannot probe for
	// existing accounts.
	ErrMissingCallerID = NewDomainError(ErrCodeUnauthenticated, "Provide the X-USER-ID header or the user_id query parameter")
	ErrUnknownCaller   = NewDomainError(ErrCodeUnauthenticated, "Unknown caller identity")

	ErrNotListOwner = NewDomainError(ErrCodeForbidden, "You cannot modify another user's shopping list")

	ErrUserNotFound    = NewDomainError(ErrCodeNotFound, "User not found")
	ErrProductNotFound = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrListNotFound    = NewDomainError(ErrCodeNotFound, "Shopping list not found")
	ErrItemNotFound    = NewDomainError(ErrCodeNotFound, "Shopping list item not found")

	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidArgument, "Quantity must be at least 1")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidArgument, "Unit price cannot be negative")
	ErrInvalidBudget   = NewDomainError(ErrCodeInvalidArgument, "Budget cannot be negative")

	ErrDuplicateEmail       = NewDomainError(ErrCodeConflict, "A user with this email already exists")
	ErrDuplicateSKU         = NewDomainError(ErrCodeConflict, "A product with this SKU already exists")
	ErrDuplicateListItem    = NewDomainError(ErrCodeConflict, "This product is already on the shopping list")
	ErrDuplicateDefaultList = NewDomainError(ErrCodeConflict, "The user already has a default shopping list")
)
