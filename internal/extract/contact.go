package extract

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/company-scraper/internal/types"
)

const (
	mailtoScheme = "mailto:"
	telScheme    = "tel:"
)

// ExtractContact collects mailto and tel links with the scheme stripped and the
// rest kept verbatim. Each set is deduplicated and sorted.
func ExtractContact(page *Page) types.ContactInfo {
	emails := make(map[string]bool)
	phones := make(map[string]bool)

	page.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		lower := strings.ToLower(href)

		switch {
		case strings.HasPrefix(lower, mailtoScheme):
			if addr := strings.TrimSpace(href[len(mailtoScheme):]); addr != "" {
				emails[addr] = true
			}
		case strings.HasPrefix(lower, telScheme):
			if phone := strings.TrimSpace(href[len(telScheme):]); phone != "" {
				phones[phone] = true
			}
		}
	})

	return types.ContactInfo{
		Emails: sortedKeys(emails),
		Phones: sortedKeys(phones),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
