package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/company-scraper/internal/fetch"
	"github.com/jonathan/company-scraper/internal/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "url", Message: "must be a valid http or https URL"}
	assert.Equal(t, "validation error: url - must be a valid http or https URL", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrUnauthorized",
			err:      &ErrUnauthorized{},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "fetch timeout",
			err:      &fetch.Error{Kind: fetch.KindTimeout},
			expected: http.StatusRequestTimeout,
		},
		{
			name:     "fetch connection failure",
			err:      &fetch.Error{Kind: fetch.KindConnection},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "fetch invalid URL",
			err:      &fetch.Error{Kind: fetch.KindInvalidURL},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "upstream 404",
			err:      &fetch.Error{Kind: fetch.KindHTTPStatus, StatusCode: 404},
			expected: http.StatusNotFound,
		},
		{
			name:     "upstream 503",
			err:      &fetch.Error{Kind: fetch.KindHTTPStatus, StatusCode: 503},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "upstream redirect not followed",
			err:      &fetch.Error{Kind: fetch.KindHTTPStatus, StatusCode: 304},
			expected: http.StatusBadGateway,
		},
		{
			name:     "wrapped fetch error",
			err:      fmt.Errorf("scrape: %w", &fetch.Error{Kind: fetch.KindTimeout}),
			expected: http.StatusRequestTimeout,
		},
		{
			name:     "extraction error",
			err:      &pipeline.ExtractionError{Stage: pipeline.StageAnalyze, Message: "boom"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Request to https://slow.example timed out",
		ErrorMessage(&fetch.Error{URL: "https://slow.example", Kind: fetch.KindTimeout}))
	assert.Equal(t, "Failed to connect to https://down.example",
		ErrorMessage(&fetch.Error{URL: "https://down.example", Kind: fetch.KindConnection}))
	assert.Equal(t, "Upstream https://acme.com returned HTTP 403",
		ErrorMessage(&fetch.Error{URL: "https://acme.com", Kind: fetch.KindHTTPStatus, StatusCode: 403}))
	assert.Equal(t, "Unauthorized", ErrorMessage(&ErrUnauthorized{}))
	assert.Equal(t, "An unexpected error occurred: analyze: entity analysis failed",
		ErrorMessage(&pipeline.ExtractionError{Stage: "analyze", Message: "entity analysis failed"}))
}
