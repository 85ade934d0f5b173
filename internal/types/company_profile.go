// Package types provides type definitions for structured data used throughout the company scraper.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SizeBucket is the employee-count bucket reported for a company.
type SizeBucket string

const (
	// SizeSmall is fewer than 50 employees
	SizeSmall SizeBucket = "Small"
	// SizeMedium is 50 to 499 employees
	SizeMedium SizeBucket = "Medium"
	// SizeLarge is 500 employees or more
	SizeLarge SizeBucket = "Large"
	// SizeUnknown is reported when the page states no staff count
	SizeUnknown SizeBucket = "Unknown"
)

// Unknown is the default value for string fields that could not be extracted.
const Unknown = "Unknown"

// Small and Medium are exclusive upper bounds for their buckets.
const (
	SmallUpperBound  = 50
	MediumUpperBound = 500
)

// BucketForCount maps a staff count to its size bucket.
func BucketForCount(count int) SizeBucket {
	switch {
	case count < SmallUpperBound:
		return SizeSmall
	case count < MediumUpperBound:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// StructuredLocation is a geocoded place. Country is always set; City is best-effort.
type StructuredLocation struct {
	City    *string `json:"city"`
	Country string  `json:"country"`
}

// ContactInfo holds deduplicated contact links found on a page.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// CompanyProfile is the structured result of scraping a company homepage.
type CompanyProfile struct {
	CompanyName  string               `json:"company_name"`
	Locations    []StructuredLocation `json:"locations"`
	Industry     string               `json:"industry"`
	IndustrySize SizeBucket           `json:"industry_size"`
	ContactInfo  ContactInfo          `json:"contact_info"`
	Tagline      string               `json:"tagline"`
}

// IndustryScore is the accumulated score of one industry for a page.
type IndustryScore struct {
	Industry string `json:"industry"`
	Score    int    `json:"score"`
}

// Diagnostics carries intermediate signals that are not part of the profile.
type Diagnostics struct {
	IndustryScores []IndustryScore `json:"industry_scores"`
	Entities       []Entity        `json:"entities"`
	Language       string          `json:"language,omitempty"`
	SiteName       string          `json:"site_name,omitempty"`
	Excerpt        string          `json:"excerpt,omitempty"`
	StatusCode     int             `json:"status_code"`
	Rendered       bool            `json:"rendered"`
}
