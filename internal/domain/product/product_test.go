package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Berliner09/bestbuy2/internal/domain/promo"
)

func TestNewStandard(t *testing.T) {
	t.Run("valid product starts active when stocked", func(t *testing.T) {
		p, err := NewStandard("MacBook Air M2", decimal.NewFromInt(1450), 100)
		require.NoError(t, err)

		assert.Equal(t, "MacBook Air M2", p.Name())
		assert.True(t, p.Price().Equal(decimal.NewFromInt(1450)))
		assert.Equal(t, 100, p.Quantity())
		assert.True(t, p.IsActive())
	})

	t.Run("zero quantity starts inactive", func(t *testing.T) {
		p, err := NewStandard("Sold Out", decimal.NewFromInt(10), 0)
		require.NoError(t, err)
		assert.False(t, p.IsActive())
	})

	tests := []struct {
		name     string
		product  string
		price    decimal.Decimal
		quantity int
		wantErr  error
	}{
		{"empty name", "", decimal.NewFromInt(10), 5, ErrEmptyName},
		{"negative price", "Widget", decimal.NewFromInt(-10), 5, ErrNegativePrice},
		{"negative quantity", "Widget", decimal.NewFromInt(10), -5, ErrNegativeQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStandard(tt.product, tt.price, tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStandard_SetQuantity(t *testing.T) {
	p, err := NewStandard("Widget", decimal.NewFromInt(10), 5)
	require.NoError(t, err)

	require.NoError(t, p.SetQuantity(0))
	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive(), "draining stock deactivates the product")

	require.NoError(t, p.SetQuantity(3))
	assert.Equal(t, 3, p.Quantity())
	assert.True(t, p.IsActive(), "restocking reactivates the product")

	require.ErrorIs(t, p.SetQuantity(-1), ErrNegativeQuantity)
	assert.Equal(t, 3, p.Quantity(), "failed set must not change state")
	assert.True(t, p.IsActive())
}

func TestStandard_Buy(t *testing.T) {
	t.Run("decrements stock and returns the total", func(t *testing.T) {
		p, err := NewStandard("Widget", decimal.NewFromInt(25), 10)
		require.NoError(t, err)

		total, err := p.Buy(3)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(75)))
		assert.Equal(t, 7, p.Quantity())
		assert.True(t, p.IsActive())
	})

	t.Run("buying the last unit deactivates", func(t *testing.T) {
		p, err := NewStandard("Last One", decimal.NewFromInt(10), 1)
		require.NoError(t, err)

		_, err = p.Buy(1)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity())
		assert.False(t, p.IsActive())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		p, err := NewStandard("Widget", decimal.NewFromInt(10), 5)
		require.NoError(t, err)

		for _, q := range []int{0, -2} {
			_, err = p.Buy(q)
			var iqErr *InvalidQuantityError
			require.ErrorAs(t, err, &iqErr)
			assert.Equal(t, "Widget", iqErr.Name)
		}
		assert.Equal(t, 5, p.Quantity())
	})

	t.Run("inactive product cannot be bought", func(t *testing.T) {
		p, err := NewStandard("Empty", decimal.NewFromInt(10), 0)
		require.NoError(t, err)

		_, err = p.Buy(1)
		var inactiveErr *InactiveError
		require.ErrorAs(t, err, &inactiveErr)
		assert.Equal(t, "Empty", inactiveErr.Name)
	})

	t.Run("insufficient stock leaves state unchanged", func(t *testing.T) {
		p, err := NewStandard("Scarce", decimal.NewFromInt(50), 5)
		require.NoError(t, err)

		_, err = p.Buy(6)
		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, p.Quantity())
		assert.True(t, p.IsActive())
	})

	t.Run("promotion prices the purchase", func(t *testing.T) {
		p, err := NewStandard("Widget", decimal.NewFromInt(10), 10)
		require.NoError(t, err)

		thirty, err := promo.NewPercentDiscount("30% off!", 30)
		require.NoError(t, err)
		p.SetPromotion(thirty)

		total, err := p.Buy(2)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(14)), "got %s", total)
		assert.Equal(t, 8, p.Quantity(), "promotion must not change the decrement")
	})
}

func TestUnlimited(t *testing.T) {
	p, err := NewUnlimited("Windows License", decimal.NewFromInt(125))
	require.NoError(t, err)

	assert.True(t, p.IsActive())
	assert.Equal(t, 0, p.Quantity())

	t.Run("buy never mutates quantity", func(t *testing.T) {
		total, err := p.Buy(4)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, 0, p.Quantity())
		assert.True(t, p.IsActive())
	})

	t.Run("setter is a no-op", func(t *testing.T) {
		require.NoError(t, p.SetQuantity(50))
		assert.Equal(t, 0, p.Quantity())

		require.ErrorIs(t, p.SetQuantity(-1), ErrNegativeQuantity)
		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("validation still applies", func(t *testing.T) {
		_, err := NewUnlimited("", decimal.NewFromInt(10))
		require.ErrorIs(t, err, ErrEmptyName)

		_, err = p.Buy(0)
		var iqErr *InvalidQuantityError
		require.ErrorAs(t, err, &iqErr)
	})

	t.Run("promotion applies to non-stocked purchases", func(t *testing.T) {
		thirty, err := promo.NewPercentDiscount("30% off!", 30)
		require.NoError(t, err)
		p.SetPromotion(thirty)
		defer p.SetPromotion(nil)

		total, err := p.Buy(1)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("87.5")), "got %s", total)
	})
}

func TestCapped(t *testing.T) {
	t.Run("constructor requires positive maximum", func(t *testing.T) {
		_, err := NewCapped("Shipping", decimal.NewFromInt(10), 250, 0)
		require.ErrorIs(t, err, ErrInvalidMaximum)

		_, err = NewCapped("Shipping", decimal.NewFromInt(10), 250, -1)
		require.ErrorIs(t, err, ErrInvalidMaximum)
	})

	t.Run("buy within the limit behaves like standard", func(t *testing.T) {
		p, err := NewCapped("Shipping", decimal.NewFromInt(10), 250, 1)
		require.NoError(t, err)

		total, err := p.Buy(1)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, 249, p.Quantity())
	})

	t.Run("limit exceeded fails without mutation", func(t *testing.T) {
		p, err := NewCapped("Shipping", decimal.NewFromInt(10), 250, 1)
		require.NoError(t, err)

		_, err = p.Buy(2)
		var limitErr *PurchaseLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, 1, limitErr.Max)
		assert.Equal(t, 2, limitErr.Requested)
		assert.Equal(t, 250, p.Quantity())
	})

	t.Run("limit checked before stock", func(t *testing.T) {
		// Only 1 in stock, maximum 3: asking for 5 must hit the limit first.
		p, err := NewCapped("Rare", decimal.NewFromInt(10), 1, 3)
		require.NoError(t, err)

		_, err = p.Buy(5)
		var limitErr *PurchaseLimitError
		require.ErrorAs(t, err, &limitErr)
	})

	t.Run("limit checked before active", func(t *testing.T) {
		p, err := NewCapped("Gone", decimal.NewFromInt(10), 0, 3)
		require.NoError(t, err)
		require.False(t, p.IsActive())

		_, err = p.Buy(5)
		var limitErr *PurchaseLimitError
		require.ErrorAs(t, err, &limitErr)

		_, err = p.Buy(2)
		var inactiveErr *InactiveError
		require.ErrorAs(t, err, &inactiveErr)
	})
}

func TestSetPromotion_SharedReference(t *testing.T) {
	thirty, err := promo.NewPercentDiscount("30% off!", 30)
	require.NoError(t, err)

	a, err := NewStandard("A", decimal.NewFromInt(100), 10)
	require.NoError(t, err)
	b, err := NewUnlimited("B", decimal.NewFromInt(100))
	require.NoError(t, err)

	a.SetPromotion(thirty)
	b.SetPromotion(thirty)
	assert.Same(t, a.Promotion().(*promo.PercentDiscount), b.Promotion().(*promo.PercentDiscount))

	// Clearing one product's promotion leaves the other untouched.
	a.SetPromotion(nil)
	assert.Nil(t, a.Promotion())
	assert.NotNil(t, b.Promotion())
}

func TestDescribe(t *testing.T) {
	thirty, err := promo.NewPercentDiscount("30% off!", 30)
	require.NoError(t, err)

	standard, err := NewStandard("MacBook Air M2", decimal.NewFromInt(1450), 100)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2, Price: $1450, Quantity: 100", standard.Describe())

	standard.SetPromotion(thirty)
	assert.Contains(t, standard.Describe(), "Promotion: 30% off!")

	unlimited, err := NewUnlimited("Windows License", decimal.NewFromInt(125))
	require.NoError(t, err)
	assert.Contains(t, unlimited.Describe(), "Windows License")
	assert.Contains(t, unlimited.Describe(), "Unlimited")

	capped, err := NewCapped("Shipping", decimal.NewFromInt(10), 250, 1)
	require.NoError(t, err)
	assert.Contains(t, capped.Describe(), "Maximum per order: 1")
	assert.Contains(t, capped.Describe(), "Quantity: 250")
}
