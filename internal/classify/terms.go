package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/campaign-planner/internal/config"
)

// Terms are the configured brand, competitor and location vocabularies
type Terms struct {
	Locations []string
	// Aliases maps a colloquial city name to its canonical target city
	Aliases map[string]string

	brand      []*regexp.Regexp
	competitor []*regexp.Regexp
	aliasKeys  []string
}

// NewTerms compiles whole-word matchers for the brand and competitor terms.
// Empty terms are ignored.
func NewTerms(brand, competitor, locations []string, aliases map[string]string) *Terms {
	t := &Terms{
		Locations:  locations,
		Aliases:    make(map[string]string, len(aliases)),
		brand:      wordMatchers(brand),
		competitor: wordMatchers(competitor),
	}
	for k, v := range aliases {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		t.Aliases[key] = v
		t.aliasKeys = append(t.aliasKeys, key)
	}
	sort.Strings(t.aliasKeys)
	return t
}

// TermsFromConfig builds Terms from the plan configuration
func TermsFromConfig(cfg *config.PlanConfig) *Terms {
	return NewTerms(
		cfg.Brand.AllTerms(),
		cfg.Competitor.AllTerms(),
		cfg.Targeting.Locations,
		cfg.Targeting.LocationAliases,
	)
}

// HasBrand reports whether the keyword contains a brand term as a whole word
func (t *Terms) HasBrand(keyword string) bool {
	return anyMatch(t.brand, keyword)
}

// HasCompetitor reports whether the keyword contains a competitor term as a whole word
func (t *Terms) HasCompetitor(keyword string) bool {
	return anyMatch(t.competitor, keyword)
}

// HasLocation reports whether the keyword mentions a configured city or a city alias
func (t *Terms) HasLocation(keyword string) bool {
	for _, city := range t.Locations {
		if c := strings.ToLower(city); c != "" && strings.Contains(keyword, c) {
			return true
		}
	}
	for _, alias := range t.aliasKeys {
		if strings.Contains(keyword, alias) {
			return true
		}
	}
	return false
}

// CityFor returns the city used in a location ad group label: the first configured
// city found in the keyword, else the canonical city of the first alias found.
func (t *Terms) CityFor(keyword string) (string, bool) {
	for _, city := range t.Locations {
		if c := strings.ToLower(city); c != "" && strings.Contains(keyword, c) {
			return city, true
		}
	}
	for _, alias := range t.aliasKeys {
		if strings.Contains(keyword, alias) {
			return t.Aliases[alias], true
		}
	}
	return "", false
}

// ConfiguredCityIn returns the first configured city mentioned in the keyword directly
// or through an alias that resolves to it. Aliases whose city is not configured are ignored.
func (t *Terms) ConfiguredCityIn(keyword string) (string, bool) {
	for _, city := range t.Locations {
		c := strings.ToLower(city)
		if c == "" {
			continue
		}
		if strings.Contains(keyword, c) {
			return city, true
		}
		for _, alias := range t.aliasKeys {
			if strings.ToLower(t.Aliases[alias]) == c && strings.Contains(keyword, alias) {
				return city, true
			}
		}
	}
	return "", false
}

func wordMatchers(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		out = append(out, regexp.MustCompile(`(^|[^a-z0-9])`+regexp.QuoteMeta(term)+`([^a-z0-9]|$)`))
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
