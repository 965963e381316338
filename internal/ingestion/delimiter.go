package ingestion

import (
	"regexp"
	"strings"
)

var (
	quotedThenDelimiter = regexp.MustCompile(`"[^"]*"\s*([,;\t|])`)
	quotedField         = regexp.MustCompile(`"[^"]*"`)
)

// sniffDelimiter guesses the delimiter of a header line. It reports false when the
// line is ambiguous.
func sniffDelimiter(header string) (rune, bool) {
	if m := quotedThenDelimiter.FindStringSubmatch(header); m != nil {
		return rune(m[1][0]), true
	}

	unquoted := quotedField.ReplaceAllString(header, "")
	var found []rune
	for _, d := range candidateDelimiters {
		if strings.ContainsRune(unquoted, d) {
			found = append(found, d)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return 0, false
}

// mostFrequentDelimiter picks the candidate occurring most often, earliest candidate on ties
func mostFrequentDelimiter(header string) rune {
	best, bestCount := candidateDelimiters[0], -1
	for _, d := range candidateDelimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// detectDelimiter sniffs the header line, falling back to frequency counting
func detectDelimiter(header string) rune {
	if d, ok := sniffDelimiter(header); ok {
		return d
	}
	return mostFrequentDelimiter(header)
}
