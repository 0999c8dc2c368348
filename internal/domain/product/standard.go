package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Standard is a stocked product: active while stock remains, each purchase
// decrements the quantity on hand.
type Standard struct {
	base
}

var _ Product = (*Standard)(nil)

// NewStandard creates a stocked product. The name must be non-empty, the
// price non-negative and the initial quantity non-negative.
func NewStandard(name string, price decimal.Decimal, quantity int) (*Standard, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	return &Standard{base: b}, nil
}

// IsActive reports whether any stock remains.
func (p *Standard) IsActive() bool { return p.quantity > 0 }

// SetQuantity replaces the stock on hand. Setting it to zero makes the
// product inactive; setting it above zero makes it active again.
func (p *Standard) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	p.quantity = quantity
	return nil
}

// Buy purchases quantity units and returns the total price. The full amount
// is transacted or nothing is: on any failure the stock is untouched.
func (p *Standard) Buy(quantity int) (decimal.Decimal, error) {
	if err := p.checkPurchase(quantity); err != nil {
		return decimal.Zero, err
	}
	total := p.totalFor(quantity)
	p.quantity -= quantity
	return total, nil
}

func (p *Standard) checkPurchase(quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Name: p.name}
	}
	if !p.IsActive() {
		return &InactiveError{Name: p.name}
	}
	if quantity > p.quantity {
		return &InsufficientStockError{
			Name:      p.name,
			Available: p.quantity,
			Requested: quantity,
		}
	}
	return nil
}

// Describe returns a one-line summary of the product.
func (p *Standard) Describe() string {
	return fmt.Sprintf("%s, Price: $%s, Quantity: %d%s",
		p.name, p.price, p.quantity, p.promotionSuffix())
}
