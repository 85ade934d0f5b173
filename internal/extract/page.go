package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the parsed markup of a fetched page.
type Page struct {
	doc *goquery.Document
}

// NewPage parses raw HTML.
func NewPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Title returns the whitespace-normalized text of the first <title>.
func (p *Page) Title() string {
	return normalizeSpace(p.doc.Find("title").First().Text())
}

// MetaDescription returns the trimmed content of <meta name="description">.
func (p *Page) MetaDescription() string {
	content, _ := p.doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
