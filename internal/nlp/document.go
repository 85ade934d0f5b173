// Package nlp turns cleaned page text into an analyzed document: tokens,
// typed entity spans and a detected language.
package nlp

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/company-scraper/internal/types"
	"github.com/sirupsen/logrus"
)

// Tagger recognizes typed entity spans in text, in text order.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]types.Entity, error)
}

// LanguageDetector returns the ISO 639-1 code of the text's language, or "" if unsure.
type LanguageDetector interface {
	Detect(text string) string
}

// Document is the analyzed form of a page. It is built once per request and
// never modified afterwards.
type Document struct {
	Text     string
	Tokens   []Token
	Entities []types.Entity
	Language string
}

// EntitiesWithLabel returns the text of every entity with the given label, in order.
func (d *Document) EntitiesWithLabel(label string) []string {
	var out []string
	for _, e := range d.Entities {
		if e.Label == label {
			out = append(out, e.Text)
		}
	}
	return out
}

// Analyzer builds Documents from cleaned text.
type Analyzer struct {
	tagger   Tagger
	detector LanguageDetector
	log      *logrus.Logger
}

// NewAnalyzer creates an Analyzer. The detector and logger may be nil.
func NewAnalyzer(tagger Tagger, detector LanguageDetector, log *logrus.Logger) *Analyzer {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Analyzer{tagger: tagger, detector: detector, log: log}
}

// Analyze tokenizes and tags text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Document, error) {
	entities, err := a.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entity tagging failed: %w", err)
	}

	doc := &Document{
		Text:     text,
		Tokens:   Tokenize(text),
		Entities: entities,
	}

	if a.detector != nil {
		doc.Language = a.detector.Detect(text)
		if doc.Language != "" && doc.Language != "en" {
			a.log.WithField("language", doc.Language).Warn("page is not in English, extraction heuristics may miss signals")
		}
	}

	return doc, nil
}
