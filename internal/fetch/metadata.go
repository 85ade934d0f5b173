package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// PageMetadata holds site-level signals read from a page's markup.
type PageMetadata struct {
	Title    string
	SiteName string
	Excerpt  string
	Language string // declared by the page, e.g. <html lang>
}

// ReadMetadata runs readability over the markup to collect site metadata.
func ReadMetadata(htmlContent, pageURL string) (*PageMetadata, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(htmlContent), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("readability failed: %w", err)
	}

	return &PageMetadata{
		Title:    strings.TrimSpace(article.Title),
		SiteName: strings.TrimSpace(article.SiteName),
		Excerpt:  strings.TrimSpace(article.Excerpt),
		Language: strings.TrimSpace(article.Language),
	}, nil
}
