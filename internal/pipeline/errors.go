package pipeline

import "fmt"

// ExtractionError represents an unexpected failure after the page was fetched.
type ExtractionError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
