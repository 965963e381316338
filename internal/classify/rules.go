// Package classify assigns intent, category, ad group, campaign, match type and bid
// suggestions to normalized keywords using fixed, ordered rule tables.
package classify

import (
	"regexp"

	"github.com/jonathan/campaign-planner/internal/types"
)

// CPCRange is a default cost-per-click range in INR
type CPCRange struct {
	Low  float64
	High float64
}

// Midpoint returns the middle of the range
func (r CPCRange) Midpoint() float64 {
	return (r.Low + r.High) / 2
}

// Category is a product category and the patterns that place a keyword in it
type Category struct {
	Name     string
	Patterns []*regexp.Regexp
}

// BucketOther is the category bucket for keywords matching no category
const BucketOther = "Other"

// Rules holds the static tables the classifier, assembler and forecaster read.
// A Rules value is never mutated after DefaultRules returns it.
type Rules struct {
	DefaultCPC            map[types.Intent]CPCRange
	Categories            []Category
	LongTailTriggers      []*regexp.Regexp
	NegativeSeeds         []string
	FallbackSeeds         []string
	FallbackLocationRoots []string
}

// DefaultRules returns the built-in rule tables
func DefaultRules() *Rules {
	return &Rules{
		DefaultCPC: map[types.Intent]CPCRange{
			types.IntentBrand:      {Low: 3, High: 8},
			types.IntentCategory:   {Low: 12, High: 35},
			types.IntentCompetitor: {Low: 10, High: 28},
			types.IntentLocation:   {Low: 12, High: 30},
			types.IntentLongTail:   {Low: 5, High: 15},
		},
		Categories: []Category{
			category("Protein/Whey", `\bwhey\b`, `\bprotein\b`, `\bprotein powder\b`, `\bwhey isolate\b`),
			category("Creatine", `\bcreatine\b`),
			category("Mass Gainer", `\bmass gainer\b`, `\bweight gainer\b`),
			category("Pre Workout", `\bpre[- ]?workout\b`),
			category("BCAA", `\bbcaa\b`),
			category("Multivitamin", `\bmultivitamin\b`),
			category("Omega 3 / Fish Oil", `\bomega ?3\b`, `\bfish oil\b`),
			category("Fat Burner", `\bfat burner\b`),
			category("Sports Nutrition", `\bsports nutrition\b`, `\bbuy supplements online\b`),
		},
		LongTailTriggers: compileAll(
			`\bhow to\b`,
			`\bwhat is\b`,
			`\bvs\b`,
			`\bbenefits?\b`,
			`\bbest\b`,
			`\bfor (men|women|beginners|weight loss)\b`,
			`\bis .* safe\b`,
		),
		NegativeSeeds: []string{
			"job", "jobs", "career", "salary", "wholesale", "distributor", "free", "download",
			"pdf", "ppt", "torrent", "recipe", "how to make", "side effects", "amazon", "flipkart",
			"meesho", "temu", "coupon code", "fake", "scam", "used", "olx", "quora", "reddit",
			"govt", "notes", "ban", "banned",
		},
		FallbackSeeds: []string{
			"whey protein", "protein powder", "creatine monohydrate", "mass gainer",
			"pre workout", "bcaa", "multivitamin", "fish oil",
		},
		FallbackLocationRoots: []string{"whey protein", "protein powder", "supplements store"},
	}
}

// CPCFor returns the default CPC range for an intent, using the Category range for unknown intents
func (r *Rules) CPCFor(intent types.Intent) CPCRange {
	if rng, ok := r.DefaultCPC[intent]; ok {
		return rng
	}
	return r.DefaultCPC[types.IntentCategory]
}

// Negatives returns a copy of the negative keyword seed list
func (r *Rules) Negatives() []string {
	return append([]string(nil), r.NegativeSeeds...)
}

func category(name string, patterns ...string) Category {
	return Category{Name: name, Patterns: compileAll(patterns...)}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
