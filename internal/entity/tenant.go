package entity

import (
	"github.com/mitchellh/mapstructure"
)

// Config keys this service understands. Anything else in the bag belongs to
// the downstream engine and passes through untouched.
const (
	ConfigKeyShopPatterns = "shop_patterns"
	ConfigKeyPrizes       = "prizes"
)

// Tenant is the configuration and state record of one Facebook Page running
// the bot. The counters are written by the game engine, never by this
// service.
type Tenant struct {
	Base

	ShopName    string
	AccessToken string
	IsActive    bool
	Config      Map `gorm:"type:text"`

	TotalSpins  int64
	TotalPrizes int64
	TotalUsers  int64
}

// Prize is one weighted outcome of a page's draw table. Rate is a probability
// weight; the whole table must sum to 1.0 within the configured tolerance.
type Prize struct {
	Name        string  `json:"name" mapstructure:"name"`
	Rate        float64 `json:"rate" mapstructure:"rate"`
	Emoji       string  `json:"emoji" mapstructure:"emoji"`
	Instruction string  `json:"instruction" mapstructure:"instruction"`
}

// TenantConfig is the typed view of the recognized keys of the config bag.
// Remain keeps forward-compatible keys this service does not understand.
type TenantConfig struct {
	ShopPatterns []string `json:"shop_patterns" mapstructure:"shop_patterns"`
	Prizes       []Prize  `json:"prizes" mapstructure:"prizes"`

	Remain map[string]any `json:"-" mapstructure:",remain"`
}

func DecodeTenantConfig(bag Map) (TenantConfig, error) {
	var cfg TenantConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return TenantConfig{}, err
	}

	if err := decoder.Decode(map[string]any(bag)); err != nil {
		return TenantConfig{}, err
	}

	return cfg, nil
}
