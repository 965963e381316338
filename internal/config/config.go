// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding keys are absent
const (
	DefaultLocationLabel  = "India"
	DefaultConversionRate = 0.02
	DefaultOutputDir      = "deliverables/1"
)

// DefaultLocationAliases maps colloquial city names to their canonical target city
var DefaultLocationAliases = map[string]string{
	"bangalore": "Bengaluru",
}

// PlanConfig is the configuration of the campaign plan builder.
// It is loaded once and treated as read-only afterwards.
type PlanConfig struct {
	Inputs     Inputs     `yaml:"inputs"`
	Brand      Brand      `yaml:"brand"`
	Competitor Competitor `yaml:"competitor"`
	Targeting  Targeting  `yaml:"targeting"`
	Budgets    *Budgets   `yaml:"budgets"`
	Filters    *Filters   `yaml:"filters"`
	Output     Output     `yaml:"output"`
}

// Inputs lists the keyword export files to read, in precedence order
type Inputs struct {
	BrandCSV      string   `yaml:"brand_csv"`
	CompetitorCSV string   `yaml:"competitor_csv"`
	ExtraCSV      []string `yaml:"extra_csv"`
}

// InputFile is one configured export path with its provenance label
type InputFile struct {
	Path   string
	Source string
}

// Files returns the configured inputs in the order they are merged
func (in Inputs) Files() []InputFile {
	files := []InputFile{
		{Path: in.BrandCSV, Source: "brand"},
		{Path: in.CompetitorCSV, Source: "competitor"},
	}
	for _, p := range in.ExtraCSV {
		files = append(files, InputFile{Path: p, Source: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))})
	}
	return files
}

// Brand describes the advertiser's own brand
type Brand struct {
	Name  string   `yaml:"name" validate:"required"`
	Terms []string `yaml:"brand_terms"`
}

// AllTerms returns the brand name followed by the extra brand terms
func (b Brand) AllTerms() []string {
	return append([]string{b.Name}, b.Terms...)
}

// Competitor describes the competitor whose terms are bid on separately
type Competitor struct {
	Name  string   `yaml:"name" validate:"required"`
	Terms []string `yaml:"competitor_terms"`
}

// AllTerms returns the competitor name followed by the extra competitor terms
func (c Competitor) AllTerms() []string {
	return append([]string{c.Name}, c.Terms...)
}

// Targeting holds the geographic targeting settings
type Targeting struct {
	Locations            []string          `yaml:"locations"`
	DefaultLocationLabel string            `yaml:"default_location_label"`
	LocationAliases      map[string]string `yaml:"location_aliases"`
}

// Budgets holds the monthly channel budgets and economics assumptions
type Budgets struct {
	SearchMonthlyINR   float64 `yaml:"search_monthly_inr" validate:"gte=0"`
	ShoppingMonthlyINR float64 `yaml:"shopping_monthly_inr" validate:"gte=0"`
	PMaxMonthlyINR     float64 `yaml:"pmax_monthly_inr" validate:"gte=0"`
	AOVINR             float64 `yaml:"aov_inr" validate:"gte=0"`
	ConversionRate     float64 `yaml:"conversion_rate" validate:"gte=0,lte=1"`
}

// Filters holds the keyword volume filter and per-group cap
type Filters struct {
	MinSearchVolume     *float64 `yaml:"min_search_volume" validate:"required,gte=0"`
	MaxKeywordsPerGroup int      `yaml:"max_keywords_per_group" validate:"gte=0"`
}

// Output holds where the plan artifacts are written
type Output struct {
	Dir string `yaml:"dir"`
}

// LoadPlanConfig loads and validates the plan builder configuration from a YAML file.
// Returns an error if the file cannot be read or parsed, or a required key is absent.
func LoadPlanConfig(path string) (*PlanConfig, error) {
	var cfg PlanConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParsePlanConfig parses and validates plan builder configuration from YAML content
func ParsePlanConfig(data []byte) (*PlanConfig, error) {
	var cfg PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *PlanConfig) applyDefaults() {
	if c.Targeting.DefaultLocationLabel == "" {
		c.Targeting.DefaultLocationLabel = DefaultLocationLabel
	}
	if c.Targeting.LocationAliases == nil {
		c.Targeting.LocationAliases = make(map[string]string, len(DefaultLocationAliases))
		for k, v := range DefaultLocationAliases {
			c.Targeting.LocationAliases[k] = v
		}
	}
	if c.Budgets != nil && c.Budgets.ConversionRate == 0 {
		c.Budgets.ConversionRate = DefaultConversionRate
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}

// Validate checks that required sections are present and values are in range.
// A missing budgets or filters section is a hard failure; channel budgets are never guessed.
func (c *PlanConfig) Validate() error {
	if c.Budgets == nil {
		return &MissingKeyError{Key: "budgets"}
	}
	if c.Filters == nil {
		return &MissingKeyError{Key: "filters"}
	}
	return validateStruct(c)
}

// loadYAML reads a YAML file into out
func loadYAML(path string, out any) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// validateStruct runs struct-tag validation and converts the first failure into a config error
func validateStruct(s any) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("config error: %w", err)
	}

	fe := validationErrs[0]
	key := fe.Namespace()
	if idx := strings.Index(key, "."); idx >= 0 {
		key = key[idx+1:]
	}

	if fe.Tag() == "required" {
		return &MissingKeyError{Key: key}
	}
	return &InvalidValueError{
		Key:     key,
		Message: fmt.Sprintf("failed '%s' check (value %v)", fe.Tag(), fe.Value()),
	}
}
