package rendering

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/campaign-planner/internal/schemas"
	"github.com/jonathan/campaign-planner/internal/types"
	planschemas "github.com/jonathan/campaign-planner/schemas"
)

// Expansion artifact file names
const (
	KeywordsFile        = "keywords.csv"
	AssetGroupsJSONFile = "asset_groups.json"
)

// WriteExpansion writes keywords.csv and asset_groups.json into dir
func WriteExpansion(dir string, result *types.ExpansionResult) ([]string, error) {
	if result == nil {
		return nil, &RenderError{Message: "expansion result is nil"}
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(result.Keywords))
	for _, k := range result.Keywords {
		rows = append(rows, []string{k.ThemeType, k.ThemeName, k.Keyword, k.MatchType, k.LandingURL, k.Priority})
	}
	keywordsPath, err := writeCSV(dir, KeywordsFile,
		[]string{"theme_type", "theme_name", "keyword", "match_type", "landing_url", "priority"}, rows)
	if err != nil {
		return nil, err
	}

	data, err := MarshalAssetGroups(result.AssetGroups)
	if err != nil {
		return []string{keywordsPath}, err
	}
	if err := schemas.ValidateJSONString(planschemas.AssetGroups, string(data)); err != nil {
		return []string{keywordsPath}, &RenderError{Message: "asset groups failed schema validation", Cause: err}
	}
	groupsPath, err := writeFile(dir, AssetGroupsJSONFile, append(data, '\n'))
	if err != nil {
		return []string{keywordsPath}, err
	}
	return []string{keywordsPath, groupsPath}, nil
}

// MarshalAssetGroups renders asset groups as a JSON object keyed by theme name, keeping
// the given order
func MarshalAssetGroups(groups []types.AssetGroup) ([]byte, error) {
	if len(groups) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, g := range groups {
		key, err := json.Marshal(g.Name)
		if err != nil {
			return nil, &RenderError{Message: "failed to marshal asset group name", Cause: err}
		}
		value, err := marshalJSON(g, "  ")
		if err != nil {
			return nil, &RenderError{Message: "failed to marshal asset group " + g.Name, Cause: err}
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(groups)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
