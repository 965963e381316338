package config

// BidConfig is the configuration of the suggested-bid calculator
type BidConfig struct {
	Global       BidGlobal     `yaml:"global"`
	ShoppingBids []ShoppingBid `yaml:"shopping_bids" validate:"dive"`
}

// BidGlobal holds the account-wide economics targets
type BidGlobal struct {
	CVR        *float64 `yaml:"cvr" validate:"omitempty,gt=0,lte=1"`
	AOV        *float64 `yaml:"aov" validate:"omitempty,gte=0"`
	TargetROAS *float64 `yaml:"target_roas" validate:"omitempty,gt=0"`
	TargetCPA  *float64 `yaml:"target_cpa" validate:"omitempty,gte=0"`
}

// ShoppingBid is one product group's observed bid range and daily budget
type ShoppingBid struct {
	ProductGroup  string  `yaml:"product_group"`
	TopOfPageLow  float64 `yaml:"top_of_page_low" validate:"gte=0"`
	TopOfPageHigh float64 `yaml:"top_of_page_high" validate:"gte=0"`
	Competition   string  `yaml:"competition"`
	DailyBudget   float64 `yaml:"daily_budget" validate:"gte=0"`
}

// Bid calculator defaults
const (
	DefaultCVR         = 0.02
	DefaultAOV         = 45.0
	DefaultTargetROAS  = 3.0
	DefaultCompetition = "Medium"
)

// LoadBidConfig loads the suggested-bid calculator configuration from a YAML file
func LoadBidConfig(path string) (*BidConfig, error) {
	var cfg BidConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validateStruct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *BidConfig) applyDefaults() {
	if c.Global.CVR == nil {
		c.Global.CVR = floatPtr(DefaultCVR)
	}
	if c.Global.AOV == nil {
		c.Global.AOV = floatPtr(DefaultAOV)
	}
	if c.Global.TargetROAS == nil {
		c.Global.TargetROAS = floatPtr(DefaultTargetROAS)
	}
	if c.Global.TargetCPA == nil && *c.Global.TargetROAS > 0 {
		c.Global.TargetCPA = floatPtr(*c.Global.AOV / *c.Global.TargetROAS)
	}
	for i := range c.ShoppingBids {
		if c.ShoppingBids[i].Competition == "" {
			c.ShoppingBids[i].Competition = DefaultCompetition
		}
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
