// Package schemas provides JSON Schema validation for configuration data and scraped profiles.
package schemas

import (
	"fmt"
	"strings"

	embedded "github.com/jonathan/company-scraper/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)", gojsonschema.NewStringLoader(schemaContent), gojsonschema.NewStringLoader(jsonContent))
}

// ValidateKeywordTable validates a decoded keyword table document (maps, slices, strings).
func ValidateKeywordTable(doc any) error {
	return validate("keyword_table", gojsonschema.NewStringLoader(embedded.KeywordTable), gojsonschema.NewGoLoader(doc))
}

// ValidateCompanyProfile validates a profile, either as a Go value or raw JSON bytes.
func ValidateCompanyProfile(profile any) error {
	var docLoader gojsonschema.JSONLoader
	switch p := profile.(type) {
	case []byte:
		docLoader = gojsonschema.NewBytesLoader(p)
	case string:
		docLoader = gojsonschema.NewStringLoader(p)
	default:
		docLoader = gojsonschema.NewGoLoader(p)
	}
	return validate("company_profile", gojsonschema.NewStringLoader(embedded.CompanyProfile), docLoader)
}

func validate(name string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
