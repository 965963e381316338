package planning

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/classify"
	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/types"
)

// Option configures plan assembly
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for assembly diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build assembles the keyword plan from sources given in precedence order:
// merge, fallback when empty, dedup, classify, volume filter, per-group cap and
// location back-fill. The inputs are not modified.
func Build(sources [][]types.KeywordRecord, cfg *config.PlanConfig, rules *classify.Rules, opts ...Option) ([]types.ClassifiedRecord, error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	if cfg == nil {
		return nil, &Error{Message: "configuration is nil"}
	}
	if cfg.Filters == nil {
		return nil, &Error{Message: "configuration has no filters", Cause: &config.MissingKeyError{Key: "filters"}}
	}
	if rules == nil {
		rules = classify.DefaultRules()
	}

	merged := Merge(sources)
	if len(merged) == 0 {
		merged = FallbackRecords(cfg.Targeting.Locations, rules)
		o.logger.Info("no keywords in inputs, using fallback seeds", zap.Int("seeds", len(merged)))
	}

	unique := Dedup(merged)
	terms := classify.TermsFromConfig(cfg)

	records := make([]types.ClassifiedRecord, 0, len(unique))
	for _, rec := range unique {
		records = append(records, rules.Classify(rec, terms))
	}

	minVolume := 0.0
	if cfg.Filters.MinSearchVolume != nil {
		minVolume = *cfg.Filters.MinSearchVolume
	}
	filtered := FilterByVolume(records, minVolume)
	capped := CapPerGroup(filtered, cfg.Filters.MaxKeywordsPerGroup)
	BackfillLocations(capped, terms, cfg.Targeting.DefaultLocationLabel)

	o.logger.Info("plan assembled",
		zap.Int("merged", len(merged)),
		zap.Int("unique", len(unique)),
		zap.Int("after_volume_filter", len(filtered)),
		zap.Int("records", len(capped)))

	return capped, nil
}

// Merge concatenates the sources in order
func Merge(sources [][]types.KeywordRecord) []types.KeywordRecord {
	var merged []types.KeywordRecord
	for _, src := range sources {
		merged = append(merged, src...)
	}
	return merged
}

// FallbackRecords returns the generic seed set: category seeds with no location, then
// each location root suffixed with every target city
func FallbackRecords(locations []string, rules *classify.Rules) []types.KeywordRecord {
	var out []types.KeywordRecord
	for _, kw := range rules.FallbackSeeds {
		out = append(out, types.KeywordRecord{Keyword: kw, Source: types.SourceFallback})
	}
	for _, city := range locations {
		for _, root := range rules.FallbackLocationRoots {
			out = append(out, types.KeywordRecord{
				Keyword:  strings.ToLower(root + " " + city),
				Location: city,
				Source:   types.SourceFallback,
			})
		}
	}
	return out
}

// Dedup keeps the first record for each keyword
func Dedup(records []types.KeywordRecord) []types.KeywordRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]types.KeywordRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Keyword]; ok {
			continue
		}
		seen[rec.Keyword] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// FilterByVolume drops records whose known volume is below minVolume. Records with
// unknown volume are kept, and nothing is dropped when no record has a known volume.
func FilterByVolume(records []types.ClassifiedRecord, minVolume float64) []types.ClassifiedRecord {
	anyKnown := false
	for i := range records {
		if _, ok := records[i].Volume(); ok {
			anyKnown = true
			break
		}
	}
	if !anyKnown {
		return records
	}

	out := make([]types.ClassifiedRecord, 0, len(records))
	for _, rec := range records {
		if v, ok := rec.Volume(); ok && v < minVolume {
			continue
		}
		out = append(out, rec)
	}
	return out
}

type groupKey struct {
	campaign string
	adGroup  string
}

// CapPerGroup keeps at most limit records per (campaign, ad_group), highest volume first
// with unknown volume last and input order among ties. Groups come out in ascending
// (campaign, ad_group) order. A limit of zero or less disables the cap.
func CapPerGroup(records []types.ClassifiedRecord, limit int) []types.ClassifiedRecord {
	if limit <= 0 {
		return records
	}

	groups := make(map[groupKey][]types.ClassifiedRecord)
	var keys []groupKey
	for _, rec := range records {
		k := groupKey{campaign: rec.Campaign, adGroup: rec.AdGroup}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], rec)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].campaign != keys[j].campaign {
			return keys[i].campaign < keys[j].campaign
		}
		return keys[i].adGroup < keys[j].adGroup
	})

	out := make([]types.ClassifiedRecord, 0, len(records))
	for _, k := range keys {
		group := groups[k]
		sort.SliceStable(group, func(i, j int) bool {
			return volumeBefore(&group[i], &group[j])
		})
		if len(group) > limit {
			group = group[:limit]
		}
		out = append(out, group...)
	}
	return out
}

// volumeBefore orders by descending volume with unknown volume last
func volumeBefore(a, b *types.ClassifiedRecord) bool {
	va, okA := a.Volume()
	vb, okB := b.Volume()
	switch {
	case okA && okB:
		return va > vb
	case okA:
		return true
	default:
		return false
	}
}

// BackfillLocations sets a location on every record that has none: the configured city
// named in the keyword, else defaultLabel
func BackfillLocations(records []types.ClassifiedRecord, terms *classify.Terms, defaultLabel string) {
	if defaultLabel == "" {
		defaultLabel = config.DefaultLocationLabel
	}
	for i := range records {
		if strings.TrimSpace(records[i].Location) != "" {
			continue
		}
		if city, ok := terms.ConfiguredCityIn(strings.ToLower(records[i].Keyword)); ok {
			records[i].Location = city
			continue
		}
		records[i].Location = defaultLabel
	}
}

// Summarize counts records per (campaign, ad_group), sorted by campaign then ad group
func Summarize(records []types.ClassifiedRecord) []types.GroupSummary {
	counts := make(map[groupKey]int)
	for _, rec := range records {
		counts[groupKey{campaign: rec.Campaign, adGroup: rec.AdGroup}]++
	}

	out := make([]types.GroupSummary, 0, len(counts))
	for k, n := range counts {
		out = append(out, types.GroupSummary{Campaign: k.campaign, AdGroup: k.adGroup, Keywords: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Campaign != out[j].Campaign {
			return out[i].Campaign < out[j].Campaign
		}
		return out[i].AdGroup < out[j].AdGroup
	})
	return out
}
