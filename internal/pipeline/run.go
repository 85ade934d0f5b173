// Package pipeline orchestrates a single scrape: fetch the page, analyze its
// text, run the extractors and assemble the company profile.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/company-scraper/internal/extract"
	"github.com/jonathan/company-scraper/internal/fetch"
	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/schemas"
	"github.com/jonathan/company-scraper/internal/types"
	"github.com/sirupsen/logrus"
)

// Stage names reported in progress events and errors.
const (
	StageFetch    = "fetch"
	StageAnalyze  = "analyze"
	StageExtract  = "extract"
	StageAssemble = "assemble"
)

// ProgressEvent represents a progress update during a scrape
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Fetcher retrieves a page and its cleaned text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Analyzer turns cleaned text into an analyzed document.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*nlp.Document, error)
}

// Result is the outcome of one scrape.
type Result struct {
	Profile     *types.CompanyProfile
	Diagnostics *types.Diagnostics
}

// Pipeline wires the fetcher, analyzer and extractors. It holds no per-request
// state and is safe for concurrent use.
type Pipeline struct {
	fetcher  Fetcher
	analyzer Analyzer
	lexicon  *extract.Lexicon
	locator  *extract.Locator
	log      *logrus.Logger

	// OnProgress, when set, receives an event as each stage completes.
	OnProgress ProgressCallback
}

// New creates a Pipeline. A nil logger discards pipeline logs.
func New(fetcher Fetcher, analyzer Analyzer, lexicon *extract.Lexicon, locator *extract.Locator, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Pipeline{
		fetcher:  fetcher,
		analyzer: analyzer,
		lexicon:  lexicon,
		locator:  locator,
		log:      log,
	}
}

// Run scrapes url. Fetch failures are returned as *fetch.Error; every other
// failure is an *ExtractionError. No partial profile is returned on error.
func (p *Pipeline) Run(ctx context.Context, url string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ExtractionError{Stage: StageExtract, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	entry := p.log.WithField("url", url)
	start := time.Now()

	page, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		entry.WithError(err).Info("fetch failed")
		return nil, err
	}
	p.emit(StageFetch, url, fmt.Sprintf("fetched %d bytes (status %d)", len(page.HTML), page.StatusCode))

	doc, err := p.analyzer.Analyze(ctx, page.Text)
	if err != nil {
		return nil, &ExtractionError{Stage: StageAnalyze, Message: "entity analysis failed", Cause: err}
	}
	p.emit(StageAnalyze, url, fmt.Sprintf("found %d entities", len(doc.Entities)))

	markup, err := extract.NewPage(page.HTML)
	if err != nil {
		return nil, &ExtractionError{Stage: StageExtract, Message: "failed to parse markup", Cause: err}
	}

	industry := extract.ClassifyIndustry(doc, p.lexicon)
	profile := &types.CompanyProfile{
		CompanyName:  extract.ExtractName(doc, markup.Title(), p.lexicon),
		Locations:    p.locator.Locate(ctx, doc),
		Industry:     industry.Label,
		IndustrySize: extract.ExtractSize(doc),
		ContactInfo:  extract.ExtractContact(markup),
		Tagline:      extract.ExtractTagline(markup, p.lexicon),
	}
	p.emit(StageExtract, url, fmt.Sprintf("extracted profile for %s", profile.CompanyName))

	if err := schemas.ValidateCompanyProfile(profile); err != nil {
		return nil, &ExtractionError{Stage: StageAssemble, Message: "assembled profile is invalid", Cause: err}
	}

	diagnostics := &types.Diagnostics{
		IndustryScores: industry.Scores,
		Entities:       doc.Entities,
		Language:       doc.Language,
		StatusCode:     page.StatusCode,
		Rendered:       page.Rendered,
	}
	if diagnostics.Entities == nil {
		diagnostics.Entities = []types.Entity{}
	}
	if meta, err := fetch.ReadMetadata(page.HTML, page.URL); err != nil {
		entry.WithError(err).Debug("readability metadata unavailable")
	} else {
		diagnostics.SiteName = meta.SiteName
		diagnostics.Excerpt = meta.Excerpt
		if diagnostics.Language == "" {
			diagnostics.Language = meta.Language
		}
	}
	p.emit(StageAssemble, url, "profile assembled")

	entry.WithFields(logrus.Fields{
		"company":     profile.CompanyName,
		"industry":    profile.Industry,
		"locations":   len(profile.Locations),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("scrape completed")

	return &Result{Profile: profile, Diagnostics: diagnostics}, nil
}

func (p *Pipeline) emit(stage, url, message string) {
	if p.OnProgress != nil {
		p.OnProgress(ProgressEvent{Stage: stage, Message: message, URL: url})
	}
}
