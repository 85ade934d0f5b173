package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketForCount_Boundaries(t *testing.T) {
	tests := []struct {
		count int
		want  SizeBucket
	}{
		{0, SizeSmall},
		{1, SizeSmall},
		{49, SizeSmall},
		{50, SizeMedium},
		{120, SizeMedium},
		{499, SizeMedium},
		{500, SizeLarge},
		{25000, SizeLarge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketForCount(tt.count), "count %d", tt.count)
	}
}

func TestCompanyProfile_JSONFieldNames(t *testing.T) {
	city := "Berlin"
	profile := CompanyProfile{
		CompanyName:  "Acme Corp",
		Locations:    []StructuredLocation{{City: &city, Country: "Germany"}, {Country: "France"}},
		Industry:     "Technology",
		IndustrySize: SizeMedium,
		ContactInfo:  ContactInfo{Emails: []string{"hello@acme.com"}, Phones: []string{}},
		Tagline:      "Building Tomorrow's Cloud",
	}

	jsonBytes, err := json.Marshal(profile)
	require.NoError(t, err)

	s := string(jsonBytes)
	assert.Contains(t, s, `"company_name":"Acme Corp"`)
	assert.Contains(t, s, `"industry_size":"Medium"`)
	assert.Contains(t, s, `"contact_info":{"emails":["hello@acme.com"],"phones":[]}`)
	assert.Contains(t, s, `{"city":"Berlin","country":"Germany"}`)
	assert.Contains(t, s, `{"city":null,"country":"France"}`)
}

func TestScrapeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://acme.com", false},
		{"http with path", "http://acme.com/about", false},
		{"empty", "", true},
		{"no scheme", "acme.com", true},
		{"ftp scheme", "ftp://acme.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ScrapeRequest{URL: tt.url}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
