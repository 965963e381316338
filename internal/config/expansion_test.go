package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExpansionConfig_ScalarAndMappingThemes(t *testing.T) {
	content := `
modifiers:
  heads: [best]
  qualifiers: [online]
themes:
  product_categories:
    - name: Whey
      seeds: [whey protein]
      landing_url: https://example.com/whey
      priority: HIGH
    - Creatine
  seasonal:
    - name: Summer
      seeds: [summer shred]
`
	cfg, err := LoadExpansionConfig(writeConfig(t, content))
	require.NoError(t, err)

	entries := cfg.Themes.Ordered()
	require.Len(t, entries, 3)

	assert.Equal(t, "product_categories", entries[0].Type)
	assert.Equal(t, "Whey", entries[0].Item.Name)
	assert.Equal(t, "high", entries[0].Item.Priority)

	assert.Equal(t, "Creatine", entries[1].Item.Name)
	assert.Equal(t, []string{"Creatine"}, entries[1].Item.Seeds)
	assert.Equal(t, DefaultThemePriority, entries[1].Item.Priority)

	assert.Equal(t, "seasonal", entries[2].Type)
}

func TestLoadExpansionConfig_Defaults(t *testing.T) {
	cfg, err := LoadExpansionConfig(writeConfig(t, "themes:\n  use_cases: [recovery]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"exact", "phrase"}, cfg.Generation.MatchTypes)
	assert.Equal(t, DefaultMaxKeywordsPerTheme, cfg.Generation.MaxKeywordsPerTheme)
	assert.True(t, cfg.GKP.IsEnabled())
	require.NotNil(t, cfg.GKP.MinVolume)
	assert.Equal(t, DefaultGKPMinVolume, *cfg.GKP.MinVolume)
	assert.Equal(t, "brand_keywords.csv", cfg.Terms.BrandCSV)
}

func TestLoadExpansionConfig_NoThemes(t *testing.T) {
	_, err := LoadExpansionConfig(writeConfig(t, "modifiers:\n  heads: [best]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no themes")
}

func TestGKP_IsEnabledExplicitFalse(t *testing.T) {
	disabled := false
	assert.False(t, GKP{Enabled: &disabled}.IsEnabled())
}
