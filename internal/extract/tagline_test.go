package extract

import (
	"testing"

	"github.com/jonathan/company-scraper/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractTagline(t *testing.T) {
	lex := testLexicon(t)

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "skips generic header",
			html: `<h1>Welcome</h1><h1>Building Tomorrow's Cloud</h1>`,
			want: "Building Tomorrow's Cloud",
		},
		{
			name: "document order across levels",
			html: `<h3>Trusted by   thousands</h3><h1>Rockets for everyone</h1>`,
			want: "Trusted by thousands",
		},
		{
			name: "single word header is skipped",
			html: `<h1>Acme</h1><h2>About</h2><h2>Reusable rockets</h2>`,
			want: "Reusable rockets",
		},
		{
			name: "h4 is ignored",
			html: `<head><title>Acme Rockets</title></head><h4>Deep header text</h4>`,
			want: "Acme Rockets",
		},
		{
			name: "title under the same filter",
			html: `<head><title>Home</title><meta name="description" content=" Rockets for all. "></head><h1>Contact</h1>`,
			want: "Rockets for all.",
		},
		{
			name: "description is unfiltered",
			html: `<head><meta name="description" content="About"></head>`,
			want: "About",
		},
		{
			name: "unknown",
			html: `<head><title>Acme</title></head><h1>Home</h1>`,
			want: types.Unknown,
		},
		{
			name: "generic check is case insensitive",
			html: `<h1>WELCOME</h1><head><title>welcome</title></head>`,
			want: types.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTagline(mustPage(t, tt.html), lex))
		})
	}
}

func TestPage_Title(t *testing.T) {
	page := mustPage(t, "<title>\n  Acme   Corp | Home\n</title>")
	assert.Equal(t, "Acme Corp | Home", page.Title())
	assert.Equal(t, "", page.MetaDescription())
}
