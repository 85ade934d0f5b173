package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/company-scraper/internal/pipeline"
	"github.com/jonathan/company-scraper/internal/types"
)

// maxRequestBytes caps the size of a scrape request body.
const maxRequestBytes = 1 << 20

// handleScrape scrapes a company homepage and returns its profile
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runScrape(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, result.Profile)
}

// handleScrapeDiagnostics returns the profile together with the signals behind it
func (s *Server) handleScrapeDiagnostics(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runScrape(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ScrapeDiagnosticsResponse{
		Profile:     result.Profile,
		Diagnostics: result.Diagnostics,
	})
}

// runScrape decodes and validates the request, then runs the pipeline. On
// failure it writes the error response and returns false.
func (s *Server) runScrape(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	var req types.ScrapeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "url", Message: "must be a valid http or https URL"}
		s.errorResponse(w, HTTPStatus(verr), ErrorMessage(verr))
		return nil, false
	}

	entry := s.requestLog(r).WithField("url", req.URL)

	// The scrape runs to completion even if the client disconnects; only the
	// fetch and geocode timeouts bound it.
	ctx := context.WithoutCancel(r.Context())
	result, err := s.scraper.Run(ctx, req.URL)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			entry.WithError(err).Error("scrape failed")
		} else {
			entry.WithError(err).WithField("status", status).Info("scrape rejected")
		}
		s.errorResponse(w, status, ErrorMessage(err))
		return nil, false
	}

	return result, true
}
