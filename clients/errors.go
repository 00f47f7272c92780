package clients

import (
	"errors"
	"net/http"
	"strings"
)

const genericErrorMessage = "an unexpected error occurred"

// APIError is the normalized failure shape every resource client re-raises.
// Status is the HTTP status code, or 0 for transport failures. Errors holds
// the field-level validation messages of a 400 response.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	return e.Message
}

// JoinedErrors renders the field-level messages for display, one per line.
func (e *APIError) JoinedErrors() string {
	return strings.Join(e.Errors, "\n")
}

// IsValidation reports whether err is a field-level validation failure. The
// form stays editable and shows the messages verbatim.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// IsUnauthorized reports whether err is an auth failure. By the time the
// caller sees it the session has already been torn down.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
