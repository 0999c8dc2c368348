package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Capped is a stocked product with a per-purchase maximum, such as a shipping
// fee that may only be bought once per order.
type Capped struct {
	Standard
	maxPerOrder int
}

var _ Product = (*Capped)(nil)

// NewCapped creates a stocked product that allows at most maxPerOrder units
// in a single purchase. The maximum must be positive and is fixed for the
// product's lifetime.
func NewCapped(name string, price decimal.Decimal, quantity, maxPerOrder int) (*Capped, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if maxPerOrder <= 0 {
		return nil, ErrInvalidMaximum
	}
	return &Capped{Standard: Standard{base: b}, maxPerOrder: maxPerOrder}, nil
}

// MaxPerOrder returns the maximum quantity permitted in a single purchase.
func (p *Capped) MaxPerOrder() int { return p.maxPerOrder }

// Buy enforces the per-purchase maximum before any stock or active check,
// then purchases like a standard product.
func (p *Capped) Buy(quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &InvalidQuantityError{Name: p.name}
	}
	if quantity > p.maxPerOrder {
		return decimal.Zero, &PurchaseLimitError{
			Name:      p.name,
			Max:       p.maxPerOrder,
			Requested: quantity,
		}
	}
	return p.Standard.Buy(quantity)
}

// Describe returns a one-line summary including the per-purchase maximum.
func (p *Capped) Describe() string {
	return fmt.Sprintf("%s, Price: $%s, Quantity: %d, Maximum per order: %d%s",
		p.name, p.price, p.quantity, p.maxPerOrder, p.promotionSuffix())
}
