package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/company-scraper/internal/fetch"
)

// ErrUnauthorized indicates a missing or wrong Authorization header
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "unauthorized"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	var unauthorized *ErrUnauthorized
	if errors.As(err, &unauthorized) {
		return http.StatusUnauthorized
	}

	var validation *ErrValidation
	if errors.As(err, &validation) {
		return http.StatusUnprocessableEntity
	}

	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case fetch.KindTimeout:
			return http.StatusRequestTimeout
		case fetch.KindConnection:
			return http.StatusServiceUnavailable
		case fetch.KindInvalidURL:
			return http.StatusUnprocessableEntity
		case fetch.KindHTTPStatus:
			return upstreamStatus(fetchErr.StatusCode)
		}
	}

	return http.StatusInternalServerError
}

// upstreamStatus propagates 4xx/5xx statuses; anything else becomes 502.
func upstreamStatus(code int) int {
	if code >= 400 && code <= 599 {
		return code
	}
	return http.StatusBadGateway
}

// ErrorMessage returns the client-facing message for an error
func ErrorMessage(err error) string {
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case fetch.KindTimeout:
			return fmt.Sprintf("Request to %s timed out", fetchErr.URL)
		case fetch.KindConnection:
			return fmt.Sprintf("Failed to connect to %s", fetchErr.URL)
		case fetch.KindInvalidURL:
			return fmt.Sprintf("Invalid URL: %s", fetchErr.URL)
		case fetch.KindHTTPStatus:
			return fmt.Sprintf("Upstream %s returned HTTP %d", fetchErr.URL, fetchErr.StatusCode)
		}
	}

	switch HTTPStatus(err) {
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusUnprocessableEntity:
		return err.Error()
	}

	return "An unexpected error occurred: " + err.Error()
}
