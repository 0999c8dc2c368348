package app

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/Berliner09/bestbuy2/internal/domain/product"
	"github.com/Berliner09/bestbuy2/internal/domain/promo"
	"github.com/Berliner09/bestbuy2/internal/domain/store"
)

// Product kinds accepted in the catalog configuration.
const (
	KindStandard  = "standard"
	KindUnlimited = "unlimited"
	KindCapped    = "capped"
)

// Promotion types accepted in the catalog configuration.
const (
	PromoPercent         = "percent"
	PromoSecondHalfPrice = "second_half_price"
	PromoThirdFree       = "third_free"
)

// BuildStore constructs the store described by the catalog configuration:
// promotions first, then products with their promotion assignments resolved
// by name. An empty catalog falls back to DefaultCatalog.
func BuildStore(cfg CatalogConfig) (*store.Store, error) {
	if len(cfg.Products) == 0 {
		cfg = DefaultCatalog()
	}

	promotions := make(map[string]promo.Promotion, len(cfg.Promotions))
	for _, pc := range cfg.Promotions {
		p, err := buildPromotion(pc)
		if err != nil {
			return nil, errors.Wrapf(err, "promotion %q", pc.Name)
		}
		promotions[p.Name()] = p
	}

	products := make([]product.Product, 0, len(cfg.Products))
	for _, pc := range cfg.Products {
		p, err := buildProduct(pc)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q", pc.Name)
		}
		if pc.Promotion != "" {
			attached, ok := promotions[pc.Promotion]
			if !ok {
				return nil, errors.Errorf("product %q references unknown promotion %q",
					pc.Name, pc.Promotion)
			}
			p.SetPromotion(attached)
		}
		products = append(products, p)
	}

	return store.New(products...)
}

func buildPromotion(pc PromotionConfig) (promo.Promotion, error) {
	switch pc.Type {
	case PromoPercent:
		return promo.NewPercentDiscount(pc.Name, pc.Percent)
	case PromoSecondHalfPrice:
		return promo.NewSecondUnitHalfPrice(pc.Name)
	case PromoThirdFree:
		return promo.NewEveryThirdUnitFree(pc.Name)
	default:
		return nil, errors.Errorf("unsupported promotion type: %q", pc.Type)
	}
}

func buildProduct(pc ProductConfig) (product.Product, error) {
	price := decimal.NewFromFloat(pc.Price)
	switch pc.Kind {
	case KindStandard:
		return product.NewStandard(pc.Name, price, pc.Quantity)
	case KindUnlimited:
		return product.NewUnlimited(pc.Name, price)
	case KindCapped:
		return product.NewCapped(pc.Name, price, pc.Quantity, pc.MaxPerOrder)
	default:
		return nil, errors.Errorf("unsupported product kind: %q", pc.Kind)
	}
}

// DefaultCatalog is the inventory the store opens with when no catalog file
// is provided.
func DefaultCatalog() CatalogConfig {
	return CatalogConfig{
		Promotions: []PromotionConfig{
			{Type: PromoSecondHalfPrice, Name: "Second Half price!"},
			{Type: PromoThirdFree, Name: "Third One Free!"},
			{Type: PromoPercent, Name: "30% off!", Percent: 30},
		},
		Products: []ProductConfig{
			{Kind: KindStandard, Name: "MacBook Air M2", Price: 1450, Quantity: 100, Promotion: "Second Half price!"},
			{Kind: KindStandard, Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500, Promotion: "Third One Free!"},
			{Kind: KindStandard, Name: "Google Pixel 7", Price: 500, Quantity: 250},
			{Kind: KindUnlimited, Name: "Windows License", Price: 125, Promotion: "30% off!"},
			{Kind: KindCapped, Name: "Shipping", Price: 10, Quantity: 250, MaxPerOrder: 1},
		},
	}
}
