package extract

// Lexicon holds the static word lists shared by the extractors. It is built
// once at startup and only read afterwards.
type Lexicon struct {
	Keywords *KeywordTable
	// NameBlacklist drops ORG entities containing any of these terms (case-insensitive).
	NameBlacklist []string
	// GenericHeaders are lowercase header texts that never make a tagline.
	GenericHeaders map[string]bool
	// ContextAnchors boost a keyword when they sit directly next to it.
	ContextAnchors []string
}

var defaultNameBlacklist = []string{
	"Financial",
	"Solutions",
	"Database",
	"Services",
	"Privacy",
	"Cookie",
	"Copyright",
	"Terms",
	"LinkedIn",
	"Facebook",
	"Twitter",
	"Instagram",
	"YouTube",
}

var defaultGenericHeaders = []string{"home", "welcome", "contact", "about"}

var defaultContextAnchors = []string{"industry", "sector", "solutions for", "services for", "leader in"}

// NewLexicon builds a Lexicon around a keyword table with the default word lists.
func NewLexicon(table *KeywordTable) *Lexicon {
	generic := make(map[string]bool, len(defaultGenericHeaders))
	for _, w := range defaultGenericHeaders {
		generic[w] = true
	}
	return &Lexicon{
		Keywords:       table,
		NameBlacklist:  append([]string(nil), defaultNameBlacklist...),
		GenericHeaders: generic,
		ContextAnchors: append([]string(nil), defaultContextAnchors...),
	}
}

// DefaultLexicon builds a Lexicon around the built-in keyword table.
func DefaultLexicon() (*Lexicon, error) {
	table, err := DefaultKeywordTable()
	if err != nil {
		return nil, err
	}
	return NewLexicon(table), nil
}
