// Package product implements the catalog item variants. Every variant shares
// one capability set (buy, describe, quantity, active status); the variant set
// is closed. Active status is always derived from the variant rule and the
// current quantity, never stored independently.
package product

import (
	"github.com/shopspring/decimal"

	"github.com/Berliner09/bestbuy2/internal/domain/promo"
)

// Product is the capability shared by all catalog item variants.
//
// A product keeps at most one promotion reference. The promotion is shared,
// not owned: the same promotion may be attached to many products, and
// SetPromotion(nil) clears it without affecting the promotion itself.
type Product interface {
	Name() string
	Price() decimal.Decimal
	Quantity() int
	// SetQuantity replaces the quantity on hand. Negative values are rejected
	// and leave the product unchanged. Active status follows the new value.
	SetQuantity(quantity int) error
	// IsActive reports whether the product is currently purchasable.
	IsActive() bool
	Promotion() promo.Promotion
	SetPromotion(p promo.Promotion)
	// Buy purchases the given quantity and returns the total price, priced
	// through the attached promotion when one is set. Stock is decremented on
	// success; on failure no state changes.
	Buy(quantity int) (decimal.Decimal, error)
	// Describe returns a one-line human-readable summary.
	Describe() string
}

// base carries the state shared by every product variant.
type base struct {
	name      string
	price     decimal.Decimal
	quantity  int
	promotion promo.Promotion
}

func newBase(name string, price decimal.Decimal, quantity int) (base, error) {
	if name == "" {
		return base{}, ErrEmptyName
	}
	if price.IsNegative() {
		return base{}, ErrNegativePrice
	}
	if quantity < 0 {
		return base{}, ErrNegativeQuantity
	}
	return base{name: name, price: price, quantity: quantity}, nil
}

// Name returns the product name.
func (b *base) Name() string { return b.name }

// Price returns the unit price.
func (b *base) Price() decimal.Decimal { return b.price }

// Quantity returns the quantity on hand.
func (b *base) Quantity() int { return b.quantity }

// Promotion returns the attached promotion, or nil.
func (b *base) Promotion() promo.Promotion { return b.promotion }

// SetPromotion attaches a promotion; nil clears it.
func (b *base) SetPromotion(p promo.Promotion) { b.promotion = p }

// totalFor prices a purchase of quantity units, delegating to the attached
// promotion when one is set.
func (b *base) totalFor(quantity int) decimal.Decimal {
	if b.promotion != nil {
		return b.promotion.Apply(b.price, quantity)
	}
	return b.price.Mul(decimal.NewFromInt(int64(quantity)))
}

// promotionSuffix is the ", Promotion: ..." fragment for Describe.
func (b *base) promotionSuffix() string {
	if b.promotion == nil {
		return ""
	}
	return ", Promotion: " + b.promotion.Name()
}
