package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenCage forward geocoding endpoint.
const DefaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 5 * time.Second

// Options configures the OpenCage client.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	Language string // language of returned names, e.g. "en"
}

// DefaultOptions returns sensible defaults for OpenCage lookups.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		Language: "en",
	}
}

// OpenCageClient resolves places with the OpenCage geocoding API.
type OpenCageClient struct {
	apiKey     string
	options    *Options
	httpClient *http.Client
}

// NewOpenCageClient creates a client. It is safe for concurrent use.
func NewOpenCageClient(apiKey string, opts *Options) (*OpenCageClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenCage API key is required")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &OpenCageClient{
		apiKey:     apiKey,
		options:    opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}, nil
}

type openCageResponse struct {
	Results []struct {
		Components Components `json:"components"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// Resolve implements Resolver using the best-ranked OpenCage result.
func (c *OpenCageClient) Resolve(ctx context.Context, place string) (*Components, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("q", place)
	query.Set("key", c.apiKey)
	query.Set("limit", "1")
	query.Set("no_annotations", "1")
	if c.options.Language != "" {
		query.Set("language", c.options.Language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &Error{Place: place, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Place: place, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Place: place, Message: "failed to read response", StatusCode: resp.StatusCode, Cause: err}
	}

	var decoded openCageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &Error{Place: place, Message: "invalid response body", StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.Status.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Place: place, Message: msg, StatusCode: resp.StatusCode}
	}

	if len(decoded.Results) == 0 {
		return nil, nil
	}
	components := decoded.Results[0].Components
	return &components, nil
}
