// Package planning merges normalized keyword sources into the classified, deduplicated and
// filtered keyword plan.
package planning

import "fmt"

// Error represents a plan assembly failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("planning error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("planning error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
