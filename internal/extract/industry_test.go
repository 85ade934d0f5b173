package extract

import (
	"testing"

	"github.com/jonathan/company-scraper/internal/types"
	"github.com/stretchr/testify/assert"
)

func smallLexicon() *Lexicon {
	return NewLexicon(&KeywordTable{Industries: []Industry{
		{Name: "Technology", Keywords: []string{"software", "cloud"}},
		{Name: "Finance", Keywords: []string{"banking", "payments"}},
		{Name: "Retail", Keywords: []string{"shopping"}},
	}})
}

func TestClassifyIndustry_AnchorBoost(t *testing.T) {
	doc := newDoc("We build cloud software for the Banking industry.")

	result := ClassifyIndustry(doc, smallLexicon())

	assert.Equal(t, "Finance", result.Label)
	assert.Equal(t, []types.IndustryScore{
		{Industry: "Finance", Score: keywordPoints + anchorPoints},
		{Industry: "Technology", Score: 2 * keywordPoints},
	}, result.Scores)
}

func TestClassifyIndustry_AnchorBeforeKeyword(t *testing.T) {
	doc := newDoc("Trusted solutions for payments. Some software too.")

	result := ClassifyIndustry(doc, smallLexicon())

	assert.Equal(t, "Finance", result.Label)
	assert.Equal(t, 3, result.Scores[0].Score)
}

func TestClassifyIndustry_OrgEntityBoost(t *testing.T) {
	doc := newDoc("Initech Payments loves software and cloud tools.", org("Initech Payments"))

	result := ClassifyIndustry(doc, smallLexicon())

	assert.Equal(t, "Finance", result.Label)
	assert.Equal(t, keywordPoints+orgPoints, result.Scores[0].Score)
}

func TestClassifyIndustry_OrgBoostPerOccurrence(t *testing.T) {
	doc := newDoc("Nothing here", org("Hooli Cloud"), org("Hooli Cloud"))

	result := ClassifyIndustry(doc, smallLexicon())

	assert.Equal(t, []types.IndustryScore{{Industry: "Technology", Score: 2 * orgPoints}}, result.Scores)
}

func TestClassifyIndustry_TieJoinsInTableOrder(t *testing.T) {
	doc := newDoc("Shopping, banking and software.")

	result := ClassifyIndustry(doc, smallLexicon())

	assert.Equal(t, "Technology, Finance, Retail", result.Label)
	assert.Len(t, result.Scores, 3)
}

func TestClassifyIndustry_AllZero(t *testing.T) {
	result := ClassifyIndustry(newDoc("We make widgets.", org("Widget Co")), smallLexicon())

	assert.Equal(t, types.Unknown, result.Label)
	assert.Empty(t, result.Scores)
	assert.NotNil(t, result.Scores)
}

func TestClassifyIndustry_DefaultTable(t *testing.T) {
	doc := newDoc("Acme is a SaaS platform offering cloud software and analytics to hospitals.")

	result := ClassifyIndustry(doc, testLexicon(t))

	assert.Equal(t, "Technology", result.Label)
}
