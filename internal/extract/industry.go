package extract

import (
	"sort"
	"strings"

	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/types"
)

// Industry scoring weights.
const (
	keywordPoints = 1
	anchorPoints  = 2
	orgPoints     = 3
)

// IndustryResult is the classifier's label and the scores behind it.
type IndustryResult struct {
	Label  string
	Scores []types.IndustryScore // score > 0 only, highest first, ties in table order
}

// ClassifyIndustry scores every industry in the lexicon's keyword table
// against the page text and ORG entities.
func ClassifyIndustry(doc *nlp.Document, lex *Lexicon) IndustryResult {
	text := strings.ToLower(doc.Text)
	orgs := doc.EntitiesWithLabel(types.LabelOrg)
	lowerOrgs := make([]string, len(orgs))
	for i, org := range orgs {
		lowerOrgs[i] = strings.ToLower(org)
	}

	var scores []types.IndustryScore
	for _, ind := range lex.Keywords.Industries {
		score := 0
		for _, kw := range ind.Keywords {
			if strings.Contains(text, kw) {
				score += keywordPoints
				for _, anchor := range lex.ContextAnchors {
					if strings.Contains(text, anchor+" "+kw) || strings.Contains(text, kw+" "+anchor) {
						score += anchorPoints
					}
				}
			}
			for _, org := range lowerOrgs {
				if strings.Contains(org, kw) {
					score += orgPoints
				}
			}
		}
		if score > 0 {
			scores = append(scores, types.IndustryScore{Industry: ind.Name, Score: score})
		}
	}

	if len(scores) == 0 {
		return IndustryResult{Label: types.Unknown, Scores: []types.IndustryScore{}}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	top := []string{scores[0].Industry}
	for _, s := range scores[1:] {
		if s.Score != scores[0].Score {
			break
		}
		top = append(top, s.Industry)
	}

	return IndustryResult{Label: strings.Join(top, ", "), Scores: scores}
}
