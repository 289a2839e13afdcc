package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a structured failure response from the backend.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Unauthorized reports whether the failure was an auth rejection, typically a
// stale or revoked token from a restored session.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// decodeError builds an *Error from a non-2xx response. A body that is not
// the standard {message, details} shape degrades to the HTTP status text.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
