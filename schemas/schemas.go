// Package schemas embeds the JSON Schemas for the keyword table and company profiles.
package schemas

import _ "embed"

// KeywordTable is the schema for the industry keyword table.
//
//go:embed keyword_table.schema.json
var KeywordTable string

// CompanyProfile is the schema for a scraped company profile.
//
//go:embed company_profile.schema.json
var CompanyProfile string
