package expansion

import (
	"os"
	"strings"
)

// Norm lower-cases, collapses whitespace and trims surrounding punctuation
func Norm(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.Trim(s, ".,;:-")
}

// NormAll normalizes every value and drops the empty ones
func NormAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := Norm(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Expand combines each seed with the heads (prefixed), qualifiers and long-tail modifiers
// (suffixed). The seed itself comes first. Duplicates keep their first position.
func Expand(seeds, heads, qualifiers, tails []string) []string {
	var candidates []string
	for _, seed := range seeds {
		candidates = append(candidates, Norm(seed))
		for _, h := range heads {
			candidates = append(candidates, Norm(h+" "+seed))
		}
		for _, q := range qualifiers {
			candidates = append(candidates, Norm(seed+" "+q))
		}
		for _, t := range tails {
			candidates = append(candidates, Norm(seed+" "+t))
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Filter drops candidates containing any blocked term as a substring. Empty terms block nothing.
func Filter(candidates []string, blocked ...[]string) []string {
	var terms []string
	for _, list := range blocked {
		for _, t := range list {
			if t != "" {
				terms = append(terms, t)
			}
		}
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !containsAny(c, terms) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// ReadTermsFile reads comma-separated terms from every line of a file, lower-cased and
// unquoted. A missing file yields no terms.
func ReadTermsFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Message: "failed to read terms file " + path, Cause: err}
	}

	text := strings.ReplaceAll(strings.ToValidUTF8(string(data), ""), "\uFEFF", "")
	seen := make(map[string]struct{})
	var terms []string
	for _, line := range strings.Split(text, "\n") {
		for _, tok := range strings.Split(strings.TrimSpace(line), ",") {
			t := strings.ToLower(strings.Trim(strings.TrimSpace(tok), `"`))
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			terms = append(terms, t)
		}
	}
	return terms, nil
}
