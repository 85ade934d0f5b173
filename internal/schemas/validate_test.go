package schemas

import (
	"errors"
	"testing"

	"github.com/jonathan/company-scraper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "Acme"}`))

	err := ValidateJSONString(schema, `{"name": 42}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 1)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateKeywordTable(t *testing.T) {
	valid := map[string]any{
		"industries": []any{
			map[string]any{"name": "Technology", "keywords": []any{"software", "cloud"}},
		},
	}
	assert.NoError(t, ValidateKeywordTable(valid))

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"missing industries", map[string]any{}},
		{"empty industries", map[string]any{"industries": []any{}}},
		{"empty keywords", map[string]any{"industries": []any{
			map[string]any{"name": "Technology", "keywords": []any{}},
		}}},
		{"duplicate keywords", map[string]any{"industries": []any{
			map[string]any{"name": "Technology", "keywords": []any{"cloud", "cloud"}},
		}}},
		{"unknown field", map[string]any{"industries": []any{
			map[string]any{"name": "Technology", "keywords": []any{"cloud"}, "weight": 2},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeywordTable(tt.doc)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateCompanyProfile(t *testing.T) {
	city := "Berlin"
	profile := types.CompanyProfile{
		CompanyName:  "Acme Corp",
		Locations:    []types.StructuredLocation{{City: &city, Country: "Germany"}, {Country: "France"}},
		Industry:     "Technology",
		IndustrySize: types.SizeSmall,
		ContactInfo:  types.ContactInfo{Emails: []string{"hi@acme.com"}, Phones: []string{}},
		Tagline:      "Rockets for everyone",
	}
	assert.NoError(t, ValidateCompanyProfile(profile))

	profile.IndustrySize = "Huge"
	assert.Error(t, ValidateCompanyProfile(profile))
}

func TestValidateCompanyProfile_RawJSON(t *testing.T) {
	raw := []byte(`{"company_name": "Acme", "locations": [{"city": "Paris"}], "industry": "Unknown",
		"industry_size": "Unknown", "contact_info": {"emails": [], "phones": []}, "tagline": "Unknown"}`)

	err := ValidateCompanyProfile(raw)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "country")
}
