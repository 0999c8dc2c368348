package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unlimited is a non-stocked product such as a license or a service. It
// tracks no inventory: the quantity is pinned at zero, the product is always
// active, and purchases never mutate it.
type Unlimited struct {
	base
}

var _ Product = (*Unlimited)(nil)

// NewUnlimited creates a non-stocked product with the given name and price.
func NewUnlimited(name string, price decimal.Decimal) (*Unlimited, error) {
	b, err := newBase(name, price, 0)
	if err != nil {
		return nil, err
	}
	return &Unlimited{base: b}, nil
}

// IsActive always reports true: a non-stocked product is always purchasable.
func (p *Unlimited) IsActive() bool { return true }

// SetQuantity ignores the new value; a non-stocked product has no inventory
// to set. Negative values are still rejected to keep the setter contract
// uniform across variants.
func (p *Unlimited) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Buy prices the purchase without touching any stock.
func (p *Unlimited) Buy(quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &InvalidQuantityError{Name: p.name}
	}
	return p.totalFor(quantity), nil
}

// Describe returns a one-line summary marking the product as non-stocked.
func (p *Unlimited) Describe() string {
	return fmt.Sprintf("%s, Price: $%s, Quantity: Unlimited%s",
		p.name, p.price, p.promotionSuffix())
}
