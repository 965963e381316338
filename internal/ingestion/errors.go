// Package ingestion normalizes keyword planner exports of unknown encoding, delimiter and
// column naming into canonical keyword records.
package ingestion

import "fmt"

// HeaderNotFoundError is returned when no line in the scan window looks like a table header
type HeaderNotFoundError struct {
	ScannedLines int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("ingestion error: no header line found in first %d lines", e.ScannedLines)
}

// TooFewColumnsError is returned when the located table has fewer than two columns
type TooFewColumnsError struct {
	Columns int
}

func (e *TooFewColumnsError) Error() string {
	return fmt.Sprintf("ingestion error: table has %d column(s), need at least 2", e.Columns)
}

// NoRowsError is returned when a table parses but yields no non-empty keyword
type NoRowsError struct{}

func (e *NoRowsError) Error() string {
	return "ingestion error: no keyword rows found"
}

// DecodeError wraps a failure to transcode the raw bytes
type DecodeError struct {
	Encoding string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: decode as %s: %v", e.Encoding, e.Cause)
	}
	return fmt.Sprintf("ingestion error: decode as %s", e.Encoding)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
