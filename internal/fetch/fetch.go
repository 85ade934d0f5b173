// Package fetch provides URL fetching and HTML-to-text processing for company pages.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CompanyScraper/1.0)"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
	Rendered    bool // HTML came from the headless browser
}

// Kind classifies why a fetch failed.
type Kind string

const (
	// KindInvalidURL means the URL could not be parsed or lacks scheme/host
	KindInvalidURL Kind = "invalid_url"
	// KindTimeout means the upstream did not answer within the timeout
	KindTimeout Kind = "timeout"
	// KindConnection means the upstream host could not be reached
	KindConnection Kind = "connection"
	// KindHTTPStatus means the upstream answered with a non-2xx status
	KindHTTPStatus Kind = "http_status"
)

// Error represents an error during URL fetching.
type Error struct {
	URL        string
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	Headers      map[string]string
	MaxBodyBytes int64
	UseBrowser   bool // render thin pages with chromedp
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// URL retrieves HTML content from a URL. On a non-2xx status the partial
// result is returned together with an *Error of KindHTTPStatus.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Kind:    KindInvalidURL,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    KindInvalidURL,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    classifyTransportError(err),
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	limit := opts.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Kind:    classifyTransportError(err),
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &Error{
			URL:        urlStr,
			Kind:       KindHTTPStatus,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return result, nil
}

// classifyTransportError separates timeouts from other transport failures.
func classifyTransportError(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindConnection
}

// Fetcher retrieves a page and produces its cleaned text, optionally
// re-rendering JavaScript-heavy pages in a headless browser.
type Fetcher struct {
	options *Options
	log     *logrus.Logger
	render  func(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// NewFetcher creates a Fetcher. A nil logger discards browser fallback warnings.
func NewFetcher(opts *Options, log *logrus.Logger) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Fetcher{
		options: opts,
		log:     log,
		render:  WithBrowser,
	}
}

// Fetch retrieves the URL and fills Result.Text with the cleaned page text.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, err := CleanText(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to clean page text: %w", err)
	}
	result.Text = text

	if f.options.UseBrowser && ShouldUseBrowser(text) {
		f.rerender(ctx, result)
	}

	return result, nil
}

// rerender replaces the result with browser-rendered markup. Failures keep the HTTP result.
func (f *Fetcher) rerender(ctx context.Context, result *Result) {
	entry := f.log.WithField("url", result.URL)
	entry.Debug("page text is thin, rendering with headless browser")

	html, err := f.render(ctx, result.URL, f.options.Timeout)
	if err != nil {
		entry.WithError(err).Warn("browser rendering failed, keeping HTTP response")
		return
	}

	text, err := CleanText(html)
	if err != nil {
		entry.WithError(err).Warn("failed to clean rendered page, keeping HTTP response")
		return
	}

	result.HTML = html
	result.Text = text
	result.Rendered = true
}
