package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/company-scraper/internal/types"
)

// ExtractTagline returns the first descriptive h1-h3 header, else the page
// title, else the meta description, else Unknown.
func ExtractTagline(page *Page, lex *Lexicon) string {
	var tagline string
	page.doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalizeSpace(s.Text())
		if isTagline(text, lex.GenericHeaders) {
			tagline = text
			return false
		}
		return true
	})
	if tagline != "" {
		return tagline
	}

	if title := page.Title(); isTagline(title, lex.GenericHeaders) {
		return title
	}

	if desc := page.MetaDescription(); desc != "" {
		return desc
	}

	return types.Unknown
}

// isTagline rejects generic single-word headers such as "Home".
func isTagline(text string, generic map[string]bool) bool {
	if generic[strings.ToLower(text)] {
		return false
	}
	return len(strings.Fields(text)) > 1
}
