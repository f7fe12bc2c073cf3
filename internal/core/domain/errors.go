package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNoUpdates          = errors.New("at least one field must be provided for update")
)

// ValidationError carries the joined, human-readable field messages produced
// by request validation. It maps to 400 at the HTTP boundary.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError wraps a joined message list into a ValidationError.
func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}
