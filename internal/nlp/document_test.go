package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/company-scraper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTagger struct {
	entities []types.Entity
	err      error
}

func (s *stubTagger) Tag(context.Context, string) ([]types.Entity, error) {
	return s.entities, s.err
}

type stubDetector string

func (s stubDetector) Detect(string) string { return string(s) }

func TestAnalyzer_Analyze(t *testing.T) {
	tagger := &stubTagger{entities: []types.Entity{
		{Text: "Acme Corp", Label: types.LabelOrg},
		{Text: "Paris", Label: types.LabelGPE},
		{Text: "Acme Corp", Label: types.LabelOrg},
	}}
	analyzer := NewAnalyzer(tagger, stubDetector("en"), nil)

	doc, err := analyzer.Analyze(context.Background(), "Acme Corp is in Paris. Acme Corp rocks.")
	require.NoError(t, err)

	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, []string{"Acme Corp", "Acme Corp"}, doc.EntitiesWithLabel(types.LabelOrg))
	assert.Equal(t, []string{"Paris"}, doc.EntitiesWithLabel(types.LabelGPE))
	assert.NotEmpty(t, doc.Tokens)
}

func TestAnalyzer_TaggerError(t *testing.T) {
	analyzer := NewAnalyzer(&stubTagger{err: errors.New("quota exceeded")}, nil, nil)

	_, err := analyzer.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyzer_NoDetector(t *testing.T) {
	doc, err := NewAnalyzer(&stubTagger{}, nil, nil).Analyze(context.Background(), "text")
	require.NoError(t, err)
	assert.Empty(t, doc.Language)
}
