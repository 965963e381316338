package config

import (
	"os"
	"strconv"
)

// Environment variables that override file configuration
const (
	EnvConfigPath          = "CAMPAIGN_PLANNER_CONFIG"
	EnvOutputDir           = "CAMPAIGN_PLANNER_OUTPUT_DIR"
	EnvMaxKeywordsPerGroup = "CAMPAIGN_PLANNER_MAX_KEYWORDS_PER_GROUP"
)

// ConfigPathFromEnv returns the config path from CAMPAIGN_PLANNER_CONFIG, or fallback when unset.
func ConfigPathFromEnv(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}

// ApplyEnv overrides output and filter settings from the environment.
// Unparsable numeric overrides are ignored.
func ApplyEnv(cfg *PlanConfig) {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.Output.Dir = dir
	}

	capStr := os.Getenv(EnvMaxKeywordsPerGroup)
	if capStr == "" || cfg.Filters == nil {
		return
	}
	if n, err := strconv.Atoi(capStr); err == nil && n >= 0 {
		cfg.Filters.MaxKeywordsPerGroup = n
	}
}
