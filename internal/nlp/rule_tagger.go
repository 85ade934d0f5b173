package nlp

import (
	"context"
	"strings"
	"unicode"

	"github.com/jonathan/company-scraper/internal/types"
)

// maxPlaceTokens is the longest gazetteer entry in tokens.
const maxPlaceTokens = 3

// maxOrgWords bounds how many capitalized words may precede an org suffix.
const maxOrgWords = 4

// leadingStopwords are capitalized sentence openers that never start an org name.
var leadingStopwords = map[string]bool{
	"The": true, "A": true, "An": true, "Our": true, "We": true, "At": true, "In": true,
	"By": true, "For": true, "With": true, "And": true, "Of": true, "To": true,
	"Welcome": true, "About": true, "Contact": true, "Home": true, "Join": true,
}

// RuleTagger is a dependency-free tagger: GPE spans come from a gazetteer and
// ORG spans are capitalized word runs closed by a corporate suffix ("Acme Corp",
// "Globex Technologies"). It is used when no LLM key is configured.
type RuleTagger struct {
	places   map[string]bool
	suffixes map[string]bool
}

// NewRuleTagger creates a RuleTagger with the built-in gazetteer.
func NewRuleTagger() *RuleTagger {
	t := &RuleTagger{
		places:   make(map[string]bool, len(places)),
		suffixes: make(map[string]bool, len(orgSuffixes)),
	}
	for _, p := range places {
		t.places[p] = true
	}
	for _, s := range orgSuffixes {
		t.suffixes[s] = true
	}
	return t
}

// Tag implements Tagger.
func (t *RuleTagger) Tag(_ context.Context, text string) ([]types.Entity, error) {
	tokens := Tokenize(text)
	var entities []types.Entity

	for i := 0; i < len(tokens); {
		if n := t.matchPlace(tokens, i); n > 0 {
			entities = append(entities, types.Entity{Text: joinTokens(tokens[i : i+n]), Label: types.LabelGPE})
			i += n
			continue
		}
		if n := t.matchOrg(tokens, i); n > 0 {
			entities = append(entities, types.Entity{Text: joinTokens(tokens[i : i+n]), Label: types.LabelOrg})
			i += n
			continue
		}
		i++
	}

	return entities, nil
}

// matchPlace returns the token length of the longest gazetteer entry starting at i.
func (t *RuleTagger) matchPlace(tokens []Token, i int) int {
	for n := min(maxPlaceTokens, len(tokens)-i); n > 0; n-- {
		if t.places[joinTokens(tokens[i:i+n])] {
			return n
		}
	}
	return 0
}

// matchOrg returns the token length of "<Capitalized>{1,4} <Suffix>" starting at i.
func (t *RuleTagger) matchOrg(tokens []Token, i int) int {
	if !isCapitalized(tokens[i].Text) || leadingStopwords[tokens[i].Text] {
		return 0
	}
	end := i
	for end < len(tokens) && end-i <= maxOrgWords && (isCapitalized(tokens[end].Text) || tokens[end].Text == "&") {
		end++
	}
	// find the last suffix inside the run, leaving at least one word before it
	for j := end - 1; j > i; j-- {
		if t.suffixes[tokens[j].Text] && tokens[j-1].Text != "&" {
			return j - i + 1
		}
	}
	return 0
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
