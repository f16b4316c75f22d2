package datasource

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch is returned when the request never produced an HTTP response
	ErrFetch = errors.New("failed to fetch weather data")

	// ErrMalformedResponse is returned when an essential field is missing or mistyped
	ErrMalformedResponse = errors.New("malformed weather response")
)

// APIError is a non-200 answer from the provider
type APIError struct {
	StatusCode int
	Code       int // provider specific, 0 when the body carried none
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("API error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
