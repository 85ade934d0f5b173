package extract

import (
	"testing"

	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/types"
	"github.com/stretchr/testify/require"
)

func newDoc(text string, entities ...types.Entity) *nlp.Document {
	return &nlp.Document{
		Text:     text,
		Tokens:   nlp.Tokenize(text),
		Entities: entities,
	}
}

func org(text string) types.Entity { return types.Entity{Text: text, Label: types.LabelOrg} }

func gpe(text string) types.Entity { return types.Entity{Text: text, Label: types.LabelGPE} }

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	return lex
}

func mustPage(t *testing.T, html string) *Page {
	t.Helper()
	page, err := NewPage(html)
	require.NoError(t, err)
	return page
}
