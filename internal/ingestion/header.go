package ingestion

import "strings"

// headerScanLimit bounds how many leading lines may be preamble before the header
const headerScanLimit = 600

var headerMarkers = []string{"keyword", "keyword text", "search term", "plan keyword", "search keyword"}

// candidateDelimiters is also the tie-break order for the frequency fallback
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// splitLines normalizes line endings and splits text into lines
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// findHeader returns the index of the first line carrying both a header marker and a delimiter
func findHeader(lines []string) (int, error) {
	limit := len(lines)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		if isHeaderLine(lines[i]) {
			return i, nil
		}
	}
	return -1, &HeaderNotFoundError{ScannedLines: limit}
}

func isHeaderLine(line string) bool {
	if !strings.ContainsAny(line, ",;\t|") {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, m := range headerMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
