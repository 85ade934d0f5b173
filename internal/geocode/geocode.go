// Package geocode resolves free-text place names into structured address components.
package geocode

import (
	"context"
	"fmt"
)

// Components are the address parts a geocoder returns for a place.
type Components struct {
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Locality returns the first non-empty of city, town and village.
func (c *Components) Locality() string {
	for _, v := range []string{c.City, c.Town, c.Village} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Resolver maps a place name to components. A nil result with a nil error means no match.
type Resolver interface {
	Resolve(ctx context.Context, place string) (*Components, error)
}

// Error represents a failed geocoding lookup.
type Error struct {
	Place      string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("geocode error for %q: %s: %v", e.Place, e.Message, e.Cause)
	}
	return fmt.Sprintf("geocode error for %q: %s", e.Place, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
