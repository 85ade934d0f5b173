package types

import "github.com/go-playground/validator/v10"

// ScrapeRequest is the body of POST /scrape.
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}

// Validate validates the ScrapeRequest using the validator.
func (r *ScrapeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScrapeDiagnosticsResponse is the body returned by POST /scrape/diagnostics.
type ScrapeDiagnosticsResponse struct {
	Profile     *CompanyProfile `json:"profile"`
	Diagnostics *Diagnostics    `json:"diagnostics"`
}
