// Package extract derives company profile fields from a fetched page and its
// analyzed text.
package extract

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/company-scraper/internal/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// Industry is one row of the keyword table.
type Industry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTable maps industries to the keywords that signal them. The order of
// Industries is the tie-break order for classification.
type KeywordTable struct {
	Industries []Industry `yaml:"industries"`
}

// KeywordTableError represents a keyword table that could not be loaded.
type KeywordTableError struct {
	Source  string
	Message string
	Cause   error
}

func (e *KeywordTableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keyword table %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("keyword table %s: %s", e.Source, e.Message)
}

func (e *KeywordTableError) Unwrap() error {
	return e.Cause
}

// DefaultKeywordTable returns the built-in keyword table.
func DefaultKeywordTable() (*KeywordTable, error) {
	return ParseKeywordTable("embedded", defaultKeywordsYAML)
}

// LoadKeywordTable reads a keyword table from a YAML file.
func LoadKeywordTable(path string) (*KeywordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &KeywordTableError{Source: path, Message: "failed to read file", Cause: err}
	}
	return ParseKeywordTable(path, data)
}

// ParseKeywordTable decodes YAML, validates it against the keyword table schema
// and normalizes keywords to lowercase.
func ParseKeywordTable(source string, data []byte) (*KeywordTable, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &KeywordTableError{Source: source, Message: "invalid YAML", Cause: err}
	}
	if err := schemas.ValidateKeywordTable(raw); err != nil {
		return nil, &KeywordTableError{Source: source, Message: "schema validation failed", Cause: err}
	}

	var table KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &KeywordTableError{Source: source, Message: "invalid YAML", Cause: err}
	}

	seen := make(map[string]bool, len(table.Industries))
	for i := range table.Industries {
		ind := &table.Industries[i]
		ind.Name = strings.TrimSpace(ind.Name)
		if seen[ind.Name] {
			return nil, &KeywordTableError{Source: source, Message: fmt.Sprintf("duplicate industry %q", ind.Name)}
		}
		seen[ind.Name] = true
		for j, kw := range ind.Keywords {
			ind.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}

	return &table, nil
}
