package types

// KeywordRow is one generated keyword in one match type
type KeywordRow struct {
	ThemeType  string `json:"theme_type"`
	ThemeName  string `json:"theme_name"`
	Keyword    string `json:"keyword"`
	MatchType  string `json:"match_type"`
	LandingURL string `json:"landing_url"`
	Priority   string `json:"priority"`
}

// AssetGroup is the broad-match asset group generated for one theme
type AssetGroup struct {
	Name            string   `json:"-"`
	ThemeType       string   `json:"theme_type"`
	LandingURL      string   `json:"landing_url"`
	Priority        string   `json:"priority"`
	AudienceSignals []string `json:"audience_signals"`
}

// ExpansionResult is the output of the keyword expansion generator.
// AssetGroups keeps theme order; names are unique.
type ExpansionResult struct {
	Keywords    []KeywordRow
	AssetGroups []AssetGroup
}
