package extract

import (
	"strings"

	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/types"
)

// Score boosts for organization candidates.
const (
	titleBoost   = 5
	companyBoost = 3
)

// titleSeparators split a page title into segments; the first one names the site.
const titleSeparators = "|-:–•"

// CleanTitle returns the first separator-delimited segment of a page title.
func CleanTitle(title string) string {
	if i := strings.IndexAny(title, titleSeparators); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// NameCandidate is an organization entity and its accumulated score.
type NameCandidate struct {
	Text  string
	Score int
}

// ExtractName picks the company name from ORG entities, falling back to the
// cleaned page title and then to Unknown.
func ExtractName(doc *nlp.Document, title string, lex *Lexicon) string {
	cleanTitle := CleanTitle(title)

	candidates := ScoreNames(doc, cleanTitle, lex)
	if len(candidates) == 0 {
		if cleanTitle == "" {
			return types.Unknown
		}
		return cleanTitle
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best.Text
}

// ScoreNames scores each distinct non-blacklisted ORG entity, in first-seen order.
func ScoreNames(doc *nlp.Document, cleanTitle string, lex *Lexicon) []NameCandidate {
	counts := make(map[string]int)
	var order []string
	for _, org := range doc.EntitiesWithLabel(types.LabelOrg) {
		if isBlacklisted(org, lex.NameBlacklist) {
			continue
		}
		if counts[org] == 0 {
			order = append(order, org)
		}
		counts[org]++
	}

	lowerTitle := strings.ToLower(cleanTitle)
	mentionsCompany := strings.Contains(doc.Text, "company")

	candidates := make([]NameCandidate, 0, len(order))
	for _, org := range order {
		score := counts[org]
		if strings.Contains(lowerTitle, strings.ToLower(org)) {
			score += titleBoost
		}
		if mentionsCompany && strings.Contains(doc.Text, org) {
			score += companyBoost
		}
		candidates = append(candidates, NameCandidate{Text: org, Score: score})
	}
	return candidates
}

func isBlacklisted(org string, blacklist []string) bool {
	lower := strings.ToLower(org)
	for _, term := range blacklist {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
