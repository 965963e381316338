package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpansionConfig is the configuration of the keyword expansion generator
type ExpansionConfig struct {
	Modifiers  Modifiers  `yaml:"modifiers"`
	Generation Generation `yaml:"generation"`
	GKP        GKP        `yaml:"gkp"`
	Themes     Themes     `yaml:"themes"`
	Terms      TermFiles  `yaml:"terms"`
}

// Modifiers are the words combined with theme seeds, and the terms that block candidates
type Modifiers struct {
	Heads      []string `yaml:"heads"`
	Qualifiers []string `yaml:"qualifiers"`
	LongTail   []string `yaml:"long_tail"`
	Negatives  []string `yaml:"negatives"`
	BrandTerms []string `yaml:"brand_terms"`
	Banned     []string `yaml:"banned_terms"`
}

// Generation controls how many keywords are emitted per theme and in which match types
type Generation struct {
	MatchTypes          []string `yaml:"match_types"`
	MaxKeywordsPerTheme int      `yaml:"max_keywords_per_theme" validate:"gte=0"`
}

// GKP configures the optional ranking file
type GKP struct {
	Enabled   *bool  `yaml:"enabled"`
	CSVPath   string `yaml:"csv_path"`
	MinVolume *int   `yaml:"min_volume" validate:"omitempty,gte=0"`
	SearchDir string `yaml:"search_dir"`
}

// IsEnabled reports whether the ranking file should be used (default true)
func (g GKP) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// TermFiles points at comma-separated term lists merged into the blocked terms
type TermFiles struct {
	BrandCSV      string `yaml:"brand_csv"`
	CompetitorCSV string `yaml:"competitor_csv"`
}

// Themes groups theme items by theme type
type Themes struct {
	ProductCategories []ThemeItem `yaml:"product_categories"`
	UseCases          []ThemeItem `yaml:"use_cases"`
	Demographics      []ThemeItem `yaml:"demographics"`
	Seasonal          []ThemeItem `yaml:"seasonal"`
}

// ThemeEntry is a theme item tagged with its theme type
type ThemeEntry struct {
	Type string
	Item ThemeItem
}

// Ordered returns every theme item in theme-type order
func (t Themes) Ordered() []ThemeEntry {
	groups := []struct {
		name  string
		items []ThemeItem
	}{
		{"product_categories", t.ProductCategories},
		{"use_cases", t.UseCases},
		{"demographics", t.Demographics},
		{"seasonal", t.Seasonal},
	}

	var entries []ThemeEntry
	for _, g := range groups {
		for _, item := range g.items {
			entries = append(entries, ThemeEntry{Type: g.name, Item: item})
		}
	}
	return entries
}

// ThemeItem is one theme. A bare string is shorthand for a theme whose only seed is its name.
type ThemeItem struct {
	Name       string   `yaml:"name"`
	Seeds      []string `yaml:"seeds"`
	LandingURL string   `yaml:"landing_url"`
	Priority   string   `yaml:"priority"`
}

// UnmarshalYAML accepts either a mapping or a scalar theme name
func (t *ThemeItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Name = node.Value
		t.Seeds = []string{node.Value}
		return nil
	}

	type plain ThemeItem
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = ThemeItem(p)
	return nil
}

// Expansion defaults
const (
	DefaultMaxKeywordsPerTheme = 120
	DefaultGKPMinVolume        = 500
	DefaultThemePriority       = "medium"
)

// LoadExpansionConfig loads the keyword expansion configuration from a YAML file
func LoadExpansionConfig(path string) (*ExpansionConfig, error) {
	var cfg ExpansionConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validateStruct(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Themes.Ordered()) == 0 {
		return nil, fmt.Errorf("config error: no themes found in config")
	}

	return &cfg, nil
}

func (c *ExpansionConfig) applyDefaults() {
	if len(c.Generation.MatchTypes) == 0 {
		c.Generation.MatchTypes = []string{"exact", "phrase"}
	}
	if c.Generation.MaxKeywordsPerTheme == 0 {
		c.Generation.MaxKeywordsPerTheme = DefaultMaxKeywordsPerTheme
	}
	if c.GKP.MinVolume == nil {
		v := DefaultGKPMinVolume
		c.GKP.MinVolume = &v
	}
	if c.GKP.SearchDir == "" {
		c.GKP.SearchDir = "."
	}
	if c.Terms.BrandCSV == "" {
		c.Terms.BrandCSV = "brand_keywords.csv"
	}
	if c.Terms.CompetitorCSV == "" {
		c.Terms.CompetitorCSV = "competitor_keywords.csv"
	}
	for _, items := range [][]ThemeItem{c.Themes.ProductCategories, c.Themes.UseCases, c.Themes.Demographics, c.Themes.Seasonal} {
		for i := range items {
			items[i].Priority = strings.ToLower(strings.TrimSpace(items[i].Priority))
			if items[i].Priority == "" {
				items[i].Priority = DefaultThemePriority
			}
		}
	}
}
