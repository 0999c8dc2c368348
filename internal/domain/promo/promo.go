// Package promo implements the pricing rules that can be attached to catalog
// products. A promotion is a pure pricing function: given a unit price and a
// purchase quantity it computes the total, never exceeding the undiscounted
// price. The variant set is closed.
package promo

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Sentinel errors for promotion construction.
var (
	// ErrEmptyName is returned when a promotion is created without a name.
	ErrEmptyName = errors.New("promotion name cannot be empty")
	// ErrPercentOutOfRange is returned when a percentage discount is created
	// with a value outside [0, 100].
	ErrPercentOutOfRange = errors.New("percent must be between 0 and 100")
)

// Promotion computes a possibly discounted total price for a purchase.
//
// Apply is pure: it has no side effects and no failure modes beyond
// construction-time validation. Callers pass a non-negative unit price and a
// positive quantity; the result never exceeds unitPrice * quantity.
type Promotion interface {
	Name() string
	Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal
}

// PercentDiscount reduces the whole purchase by a fixed percentage.
type PercentDiscount struct {
	name    string
	percent decimal.Decimal
}

// NewPercentDiscount creates a percentage discount. The percent must be
// within [0, 100].
func NewPercentDiscount(name string, percent float64) (*PercentDiscount, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if percent < 0 || percent > 100 {
		return nil, ErrPercentOutOfRange
	}
	return &PercentDiscount{name: name, percent: decimal.NewFromFloat(percent)}, nil
}

// Name returns the promotion's display name.
func (p *PercentDiscount) Name() string { return p.name }

// Apply returns unitPrice * quantity * (1 - percent/100).
func (p *PercentDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return subtotal.Mul(hundred.Sub(p.percent)).Div(hundred)
}

// SecondUnitHalfPrice charges full price for the odd units and half price for
// every second unit in a pair.
type SecondUnitHalfPrice struct {
	name string
}

// NewSecondUnitHalfPrice creates a second-unit-half-price promotion.
func NewSecondUnitHalfPrice(name string) (*SecondUnitHalfPrice, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &SecondUnitHalfPrice{name: name}, nil
}

// Name returns the promotion's display name.
func (p *SecondUnitHalfPrice) Name() string { return p.name }

// Apply charges ceil(quantity/2) units at full price and floor(quantity/2)
// units at half price.
func (p *SecondUnitHalfPrice) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	fullUnits := decimal.NewFromInt(int64((quantity + 1) / 2))
	halfUnits := decimal.NewFromInt(int64(quantity / 2))

	full := unitPrice.Mul(fullUnits)
	half := unitPrice.Mul(halfUnits).Div(two)
	return full.Add(half)
}

// EveryThirdUnitFree makes every third unit in the purchase free.
type EveryThirdUnitFree struct {
	name string
}

// NewEveryThirdUnitFree creates an every-third-unit-free promotion.
func NewEveryThirdUnitFree(name string) (*EveryThirdUnitFree, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &EveryThirdUnitFree{name: name}, nil
}

// Name returns the promotion's display name.
func (p *EveryThirdUnitFree) Name() string { return p.name }

// Apply charges quantity - floor(quantity/3) units at full price.
func (p *EveryThirdUnitFree) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	paidUnits := quantity - quantity/3
	return unitPrice.Mul(decimal.NewFromInt(int64(paidUnits)))
}
