// Package llm provides the LLM client abstraction used for entity tagging.
package llm

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultMaxInputChars bounds how much page text is sent in one prompt.
const DefaultMaxInputChars = 20000

// Config holds the model configuration for entity tagging
type Config struct {
	Provider      Provider
	Model         string
	Temperature   float32
	MaxInputChars int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:      ProviderGemini,
		Model:         "gemini-2.5-flash-lite",
		Temperature:   0,
		MaxInputChars: DefaultMaxInputChars,
	}
}

// WithModel returns a copy of the Config using the given model
func (c *Config) WithModel(model string) *Config {
	cp := *c
	cp.Model = model
	return &cp
}
