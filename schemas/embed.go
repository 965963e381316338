// Package schemas embeds the JSON schemas of the artifacts the planner writes.
package schemas

import _ "embed"

// CampaignPlan is the schema of campaign_plan.json
//
//go:embed campaign_plan.schema.json
var CampaignPlan string

// AssetGroups is the schema of asset_groups.json
//
//go:embed asset_groups.schema.json
var AssetGroups string
