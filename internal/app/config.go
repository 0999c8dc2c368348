package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML catalog files.
type Config struct {
	Catalog CatalogConfig
}

// CatalogConfig declares the inventory and the promotions attached to it.
// An empty catalog falls back to the built-in default inventory.
type CatalogConfig struct {
	Products   []ProductConfig
	Promotions []PromotionConfig
}

// ProductConfig declares a single catalog entry.
type ProductConfig struct {
	Kind        string  `usage:"product kind: standard, unlimited or capped"`
	Name        string  `usage:"product name"`
	Price       float64 `usage:"unit price"`
	Quantity    int     `usage:"initial stock (ignored for unlimited products)"`
	MaxPerOrder int     `usage:"per-purchase maximum (capped products only)" flag:"max-per-order"`
	Promotion   string  `usage:"name of an attached promotion, if any"`
}

// PromotionConfig declares a promotion available to catalog entries.
type PromotionConfig struct {
	Type    string  `usage:"promotion type: percent, second_half_price or third_free"`
	Name    string  `usage:"promotion display name"`
	Percent float64 `usage:"discount percentage (percent type only)"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// catalog files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"catalog.yaml", "/etc/bestbuy/catalog.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
