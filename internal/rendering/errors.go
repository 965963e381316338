// Package rendering writes the campaign plan, keyword expansion and bid artifacts as CSV
// sheets and JSON documents.
package rendering

import "fmt"

// RenderError represents a failure to write an artifact
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
