package nlp

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// supportedLanguages keeps the lingua models small; anything else is reported as its closest match.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// LinguaDetector detects page language with lingua-go.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector. Model loading is lazy and happens on first use.
func NewLinguaDetector() *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(supportedLanguages...).
		WithLowAccuracyMode().
		Build()
	return &LinguaDetector{detector: detector}
}

// Detect returns the lowercase ISO 639-1 code, or "" when the text is too ambiguous.
func (d *LinguaDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
