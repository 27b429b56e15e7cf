package services

import "errors"

// Error variables
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotFound           = errors.New("not found")
	ErrSubmission         = errors.New("submission failed")
	ErrFetch              = errors.New("fetch failed")
)

// ValidationError reports locally detected bad input. Its message is shown
// to the user verbatim; validation never reaches the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given user-facing message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
