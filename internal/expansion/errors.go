// Package expansion generates theme keywords from seeds and modifiers, filters blocked
// terms and optionally ranks candidates with a keyword planner export.
package expansion

import "fmt"

// Error represents a keyword generation failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("expansion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("expansion error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
