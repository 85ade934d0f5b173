package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/company-scraper/internal/llm"
	"github.com/jonathan/company-scraper/internal/types"
)

// LLMTagger tags entities by prompting an LLM with the entity extraction schema.
type LLMTagger struct {
	client        llm.Client
	maxInputChars int
}

// NewLLMTagger creates a tagger backed by client. Text beyond maxInputChars is not sent.
func NewLLMTagger(client llm.Client, maxInputChars int) *LLMTagger {
	return &LLMTagger{client: client, maxInputChars: maxInputChars}
}

type entityResponse struct {
	Entities []types.Entity `json:"entities"`
}

// Tag implements Tagger.
func (t *LLMTagger) Tag(ctx context.Context, text string) ([]types.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt := llm.BuildExtractionPrompt(llm.EntitySchema(), llm.Truncate(text, t.maxInputChars))
	raw, err := t.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM entity extraction failed: %w", err)
	}

	var resp entityResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse LLM entity response: %w", err)
	}

	entities := make([]types.Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		e.Text = strings.TrimSpace(e.Text)
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Text == "" || e.Label == "" {
			continue
		}
		entities = append(entities, e)
	}
	return entities, nil
}
