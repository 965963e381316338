package expansion

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/types"
)

// audienceSignalKeywords is how many top keywords join the seeds as audience signals
const audienceSignalKeywords = 10

// Generator expands the configured themes into keywords and asset groups
type Generator struct {
	cfg        *config.ExpansionConfig
	heads      []string
	qualifiers []string
	tails      []string
	blocked    [][]string
	ranking    Ranking
	logger     *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger used for generation diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRanking uses the given ranking instead of loading one from the configured file
func WithRanking(r Ranking) Option {
	return func(g *Generator) {
		g.ranking = r
	}
}

// NewGenerator prepares modifiers, blocked terms and the ranking for cfg
func NewGenerator(cfg *config.ExpansionConfig, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, &Error{Message: "configuration is nil"}
	}

	g := &Generator{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	mods := cfg.Modifiers
	g.heads = NormAll(mods.Heads)
	g.qualifiers = NormAll(mods.Qualifiers)
	g.tails = NormAll(mods.LongTail)

	brandFile, err := ReadTermsFile(cfg.Terms.BrandCSV)
	if err != nil {
		return nil, err
	}
	competitorFile, err := ReadTermsFile(cfg.Terms.CompetitorCSV)
	if err != nil {
		return nil, err
	}
	g.blocked = [][]string{
		NormAll(mods.Negatives),
		NormAll(mods.Banned),
		NormAll(mods.BrandTerms),
		brandFile,
		competitorFile,
	}

	if g.ranking == nil {
		g.ranking = Ranking{}
		if cfg.GKP.IsEnabled() {
			g.ranking = LoadRanking(cfg.GKP.CSVPath, cfg.GKP.SearchDir, g.logger)
		}
	}

	return g, nil
}

// Generate expands every theme. Themes without a name or seeds are skipped; a later theme
// with the same name replaces the earlier asset group in place.
func (g *Generator) Generate() (*types.ExpansionResult, error) {
	entries := g.cfg.Themes.Ordered()
	if len(entries) == 0 {
		return nil, &Error{Message: "no themes found in config"}
	}

	minVolume := config.DefaultGKPMinVolume
	if g.cfg.GKP.MinVolume != nil {
		minVolume = *g.cfg.GKP.MinVolume
	}
	limit := g.cfg.Generation.MaxKeywordsPerTheme
	if limit <= 0 {
		limit = config.DefaultMaxKeywordsPerTheme
	}

	result := &types.ExpansionResult{}
	groupIndex := make(map[string]int)
	for _, entry := range entries {
		item := entry.Item
		name := strings.TrimSpace(item.Name)
		seeds := NormAll(item.Seeds)
		if name == "" || len(seeds) == 0 {
			g.logger.Debug("skipping theme without name or seeds", zap.String("theme_type", entry.Type))
			continue
		}

		candidates := Filter(Expand(seeds, g.heads, g.qualifiers, g.tails), g.blocked...)
		top := candidates
		if len(g.ranking) > 0 {
			if ranked := g.ranking.Rank(candidates, minVolume); len(ranked) > 0 {
				top = ranked
			}
		}
		if len(top) > limit {
			top = top[:limit]
		}

		url := strings.TrimSpace(item.LandingURL)
		priority := strings.ToLower(strings.TrimSpace(item.Priority))
		if priority == "" {
			priority = config.DefaultThemePriority
		}
		for _, kw := range top {
			for _, mt := range g.cfg.Generation.MatchTypes {
				result.Keywords = append(result.Keywords, types.KeywordRow{
					ThemeType:  entry.Type,
					ThemeName:  name,
					Keyword:    kw,
					MatchType:  mt,
					LandingURL: url,
					Priority:   priority,
				})
			}
		}

		group := types.AssetGroup{
			Name:            name,
			ThemeType:       entry.Type,
			LandingURL:      url,
			Priority:        priority,
			AudienceSignals: audienceSignals(seeds, top),
		}
		if i, ok := groupIndex[name]; ok {
			result.AssetGroups[i] = group
		} else {
			groupIndex[name] = len(result.AssetGroups)
			result.AssetGroups = append(result.AssetGroups, group)
		}

		g.logger.Debug("theme expanded",
			zap.String("theme", name),
			zap.Int("candidates", len(candidates)),
			zap.Int("kept", len(top)))
	}

	return result, nil
}

// audienceSignals is the seeds followed by the top keywords, without duplicates
func audienceSignals(seeds, top []string) []string {
	if len(top) > audienceSignalKeywords {
		top = top[:audienceSignalKeywords]
	}
	seen := make(map[string]struct{})
	var out []string
	for _, s := range append(append([]string{}, seeds...), top...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
