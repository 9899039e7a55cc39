package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrUnauthenticated is returned when CreatePost is reached without a
	// resolved user. The auth middleware should reject these earlier; this
	// is the service-level backstop.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrAuthorNotFound is returned when a listed post's author has no
	// directory record. A post without a resolvable author is a consistency
	// fault, so the whole list call fails rather than returning a partial
	// result.
	ErrAuthorNotFound = errors.New("author for post not found")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
