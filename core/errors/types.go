// ABOUTME: Typed errors shared across the pipeline and the API layer
// ABOUTME: Lets handlers map failure classes to HTTP statuses without string matching

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing resource, e.g. an article ID that the
// current aggregate does not contain.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError reports a rejected input value, e.g. an unknown sort
// mode or category in a query string.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ExternalAPIError reports a failure talking to an upstream origin (the
// search endpoint, the relay proxy, a crawled site).
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.API, e.StatusCode, e.Message)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI reports whether err wraps an ExternalAPIError.
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError adds context while keeping the wrapped error's class
// recoverable through errors.As.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
