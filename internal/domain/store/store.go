// Package store implements the inventory aggregate: an ordered product
// catalog that answers listing queries and processes multi-line orders.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Berliner09/bestbuy2/internal/domain/product"
)

// Sentinel errors for store operations.
var (
	// ErrNilProduct is returned when a nil reference is passed where a
	// product is required.
	ErrNilProduct = errors.New("product reference is required")
	// ErrEmptyOrder is returned when an order contains no lines.
	ErrEmptyOrder = errors.New("order must contain at least one line")
)

// NotFoundError indicates a removal target is not held by the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found in store", e.Name)
}

// OrderError wraps a purchase failure with the offending product's name.
type OrderError struct {
	ProductName string
	Err         error
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order failed for %q: %s", e.ProductName, e.Err)
}

func (e *OrderError) Unwrap() error { return e.Err }

// Line is a single (product, quantity) entry in an order.
type Line struct {
	Product  product.Product
	Quantity int
}

// Receipt records a completed order.
type Receipt struct {
	ID       string
	Lines    []Line
	Total    decimal.Decimal
	PlacedAt time.Time
}

// Store holds an ordered product sequence and processes orders against it.
// Insertion order is preserved and duplicate references are allowed.
//
// Every operation holds the store's lock, so each appears atomic to
// concurrent callers; there is no per-product locking.
type Store struct {
	mu       sync.Mutex
	products []product.Product
	receipts []Receipt
	now      func() time.Time
}

// New creates a store holding the given products in order.
func New(products ...product.Product) (*Store, error) {
	for _, p := range products {
		if p == nil {
			return nil, ErrNilProduct
		}
	}
	s := &Store{now: time.Now}
	s.products = append(s.products, products...)
	return s, nil
}

// AddProduct appends a product to the catalog.
func (s *Store) AddProduct(p product.Product) error {
	if p == nil {
		return ErrNilProduct
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return nil
}

// RemoveProduct removes the first occurrence of the given product reference.
func (s *Store) RemoveProduct(p product.Product) error {
	if p == nil {
		return ErrNilProduct
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, held := range s.products {
		if held == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Name: p.Name()}
}

// Contains reports whether the store holds the given product reference.
func (s *Store) Contains(p product.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, held := range s.products {
		if held == p {
			return true
		}
	}
	return false
}

// TotalQuantity returns the summed stock across all held products.
// Non-stocked products contribute zero.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the currently purchasable products in insertion
// order. This is a filtered view; nothing is removed from the store.
func (s *Store) ActiveProducts() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Merge returns a new store holding this store's products followed by the
// other store's. Product references are shared, not copied.
func (s *Store) Merge(other *Store) (*Store, error) {
	if other == nil {
		return nil, errors.New("store reference is required")
	}
	s.mu.Lock()
	combined := append([]product.Product(nil), s.products...)
	s.mu.Unlock()

	other.mu.Lock()
	combined = append(combined, other.products...)
	other.mu.Unlock()

	return New(combined...)
}

// Order processes the given lines strictly in order, buying each line's
// quantity from its product and accumulating the total price.
//
// There is no rollback: when a line fails mid-order, earlier lines stay
// applied, the failure is wrapped with the offending product's name, and no
// further lines are processed. A successful order is recorded as a receipt
// and its total, rounded to 2 decimal places, is returned.
func (s *Store) Order(lines []Line) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(lines) == 0 {
		return decimal.Zero, ErrEmptyOrder
	}
	// The whole list is validated before any purchase mutates stock.
	for _, l := range lines {
		if l.Product == nil {
			return decimal.Zero, ErrNilProduct
		}
		if l.Quantity <= 0 {
			return decimal.Zero, &product.InvalidQuantityError{Name: l.Product.Name()}
		}
	}

	total := decimal.Zero
	for _, l := range lines {
		price, err := l.Product.Buy(l.Quantity)
		if err != nil {
			return decimal.Zero, &OrderError{ProductName: l.Product.Name(), Err: err}
		}
		total = total.Add(price)
	}

	total = total.Round(2)
	s.receipts = append(s.receipts, Receipt{
		ID:       uuid.New().String(),
		Lines:    append([]Line(nil), lines...),
		Total:    total,
		PlacedAt: s.now(),
	})
	return total, nil
}

// Receipts returns a copy of the completed-order log in placement order.
func (s *Store) Receipts() []Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Receipt(nil), s.receipts...)
}
