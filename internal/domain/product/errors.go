package product

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for constructor and setter validation.
var (
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrNegativeQuantity = errors.New("product quantity cannot be negative")
	ErrInvalidMaximum   = errors.New("per-purchase maximum must be positive")
)

// InvalidQuantityError indicates a purchase was requested with a
// non-positive quantity.
type InvalidQuantityError struct {
	Name string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity to buy must be positive for %q", e.Name)
}

// InactiveError indicates a purchase was attempted on an inactive product.
type InactiveError struct {
	Name string
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("cannot buy %q, product is inactive", e.Name)
}

// InsufficientStockError indicates the requested quantity exceeds the stock
// on hand.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: available %d, requested %d",
		e.Name, e.Available, e.Requested)
}

// PurchaseLimitError indicates the requested quantity exceeds a capped
// product's per-purchase maximum.
type PurchaseLimitError struct {
	Name      string
	Max       int
	Requested int
}

func (e *PurchaseLimitError) Error() string {
	return fmt.Sprintf("cannot buy %d of %q: maximum %d per purchase",
		e.Requested, e.Name, e.Max)
}
