package extract

import (
	"errors"
	"strconv"

	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/types"
)

// phrase is a sequence of lowercase tokens.
type phrase []string

// sizeMatcher matches "<lead> <number> <trail>" where lead and trail are each
// one of several alternative phrases. An empty lead means the match starts at
// the number.
type sizeMatcher struct {
	name  string
	lead  []phrase
	trail []phrase
}

var (
	staffNouns  = []phrase{{"employees"}, {"people"}, {"staff"}}
	upperBounds = []phrase{{"fewer", "than"}, {"less", "than"}, {"under"}}
)

// sizeMatchers are tried in order at every token position.
var sizeMatchers = []sizeMatcher{
	{name: "team_of", lead: []phrase{{"team", "of"}}, trail: []phrase{{"people"}, {"employees"}, {"members"}}},
	{name: "over", lead: []phrase{{"over"}, {"more", "than"}}, trail: staffNouns},
	{name: "under", lead: upperBounds, trail: staffNouns},
	{name: "plus_employees", trail: []phrase{{"+", "employees"}}},
	{name: "employees", trail: []phrase{{"employees"}}},
	{name: "staff", trail: []phrase{{"staff"}}},
	{name: "team_members", trail: []phrase{{"team", "members"}}},
}

// SizeMatch is the first staff-count phrase found in a document.
type SizeMatch struct {
	Matcher string
	Count   int
	Start   int // token index
}

// ExtractSize buckets the first stated staff count. Pages without one are
// Unknown; a count too large for an int is Large.
func ExtractSize(doc *nlp.Document) types.SizeBucket {
	match, ok, err := FindSize(doc.Tokens)
	if !ok {
		return types.SizeUnknown
	}
	if errors.Is(err, strconv.ErrRange) {
		return types.SizeLarge
	}
	if err != nil {
		return types.SizeUnknown
	}
	return types.BucketForCount(match.Count)
}

// FindSize scans tokens in order and returns the first matcher hit.
func FindSize(tokens []nlp.Token) (SizeMatch, bool, error) {
	for i := range tokens {
		for _, m := range sizeMatchers {
			digits, ok := m.match(tokens, i)
			if !ok {
				continue
			}
			count, err := strconv.Atoi(digits)
			if err != nil {
				return SizeMatch{}, true, err
			}
			return SizeMatch{Matcher: m.name, Count: count, Start: i}, true, nil
		}
	}
	return SizeMatch{}, false, nil
}

// match reports whether the matcher matches at tokens[start:], returning the
// digits of the captured number.
func (m sizeMatcher) match(tokens []nlp.Token, start int) (string, bool) {
	pos := start
	if len(m.lead) > 0 {
		n, ok := matchAny(tokens, pos, m.lead)
		if !ok {
			return "", false
		}
		pos += n
	}

	digits := ""
	for pos < len(tokens) && tokens[pos].Numeric {
		digits += nlp.DigitsOnly(tokens[pos].Text)
		pos++
	}
	if digits == "" {
		return "", false
	}

	if _, ok := matchAny(tokens, pos, m.trail); !ok {
		return "", false
	}
	return digits, true
}

// matchAny returns the length of the first alternative matching at pos.
func matchAny(tokens []nlp.Token, pos int, alternatives []phrase) (int, bool) {
	for _, p := range alternatives {
		if matchPhrase(tokens, pos, p) {
			return len(p), true
		}
	}
	return 0, false
}

func matchPhrase(tokens []nlp.Token, pos int, p phrase) bool {
	if pos+len(p) > len(tokens) {
		return false
	}
	for i, word := range p {
		if tokens[pos+i].Lower != word {
			return false
		}
	}
	return true
}
