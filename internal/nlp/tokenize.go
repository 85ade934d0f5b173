package nlp

import (
	"strings"
	"unicode"
)

// Token is a single word, number or punctuation mark from page text.
type Token struct {
	Text    string
	Lower   string
	Numeric bool // digits, optionally grouped with ',' or '.'
}

// Tokenize splits text into word, number and punctuation tokens in text order.
// Apostrophes and hyphens inside words, and ',' or '.' between digits, stay
// part of the token, so "1,000" and "Tomorrow's" are single tokens.
func Tokenize(text string) []Token {
	runes := []rune(text)
	tokens := make([]Token, 0, len(runes)/4)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			i++
			for i < len(runes) {
				if isWordRune(runes[i]) {
					i++
					continue
				}
				if i+1 < len(runes) && joinsWord(runes[i-1], runes[i], runes[i+1]) {
					i += 2
					continue
				}
				break
			}
			tokens = append(tokens, newToken(string(runes[start:i])))
		default:
			tokens = append(tokens, newToken(string(r)))
			i++
		}
	}

	return tokens
}

func newToken(text string) Token {
	return Token{
		Text:    text,
		Lower:   strings.ToLower(text),
		Numeric: isNumeric(text),
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// joinsWord reports whether mid, between prev and next, belongs inside a token.
func joinsWord(prev, mid, next rune) bool {
	switch mid {
	case ',', '.':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	case '\'', '’', '-':
		return unicode.IsLetter(prev) && unicode.IsLetter(next)
	}
	return false
}

func isNumeric(text string) bool {
	hasDigit := false
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ',' || r == '.':
		default:
			return false
		}
	}
	return hasDigit
}

// DigitsOnly keeps the ASCII digits of s.
func DigitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
