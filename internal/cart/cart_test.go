package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storefront/internal/domain"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func product(id int64, price, discount float64) domain.Product {
	return domain.Product{
		ID:                 id,
		Price:              dec(price),
		DiscountPercentage: dec(discount),
	}
}

func TestAddItem(t *testing.T) {
	p := product(1, 100, 10)

	t.Run("appends new item", func(t *testing.T) {
		items := AddItem(nil, p, 2)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("increments existing item", func(t *testing.T) {
		items := AddItem(AddItem(nil, p, 1), p, 2)
		assert.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		items := AddItem(nil, p, 1)
		AddItem(items, p, 5)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	items := AddItem(AddItem(nil, product(1, 10, 0), 1), product(2, 20, 0), 1)

	t.Run("removes matching item", func(t *testing.T) {
		got := RemoveItem(items, 1)
		assert.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		got := RemoveItem(items, 99)
		assert.Equal(t, items, got)
	})
}

func TestUpdateQuantity(t *testing.T) {
	items := AddItem(nil, product(1, 10, 0), 5)

	t.Run("sets quantity exactly", func(t *testing.T) {
		got := UpdateQuantity(items, 1, 2)
		assert.Equal(t, 2, got[0].Quantity)
	})

	t.Run("zero removes", func(t *testing.T) {
		got := UpdateQuantity(items, 1, 0)
		assert.Empty(t, got)
		assert.Equal(t, RemoveItem(items, 1), got)
	})

	t.Run("negative removes", func(t *testing.T) {
		assert.Empty(t, UpdateQuantity(items, 1, -3))
	})
}

func TestClear(t *testing.T) {
	assert.Empty(t, Clear())
}

func TestTotals(t *testing.T) {
	items := []domain.CartItem{
		{ID: 1, Product: product(1, 100, 10), Quantity: 2}, // 180, saves 20
		{ID: 2, Product: product(2, 50, 0), Quantity: 1},   // 50, saves 0
	}

	t.Run("subtotal", func(t *testing.T) {
		assert.True(t, Subtotal(items).Equal(dec(230)))
	})

	t.Run("savings", func(t *testing.T) {
		assert.True(t, Savings(items).Equal(dec(20)))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.True(t, Subtotal(nil).IsZero())
		assert.True(t, Savings(nil).IsZero())
	})

	t.Run("tax and total", func(t *testing.T) {
		tax := Tax(dec(230), DefaultTaxRate)
		assert.True(t, tax.Equal(dec(18.4)))
		assert.True(t, Total(dec(230), tax, decimal.Zero).Equal(dec(248.4)))
		assert.True(t, Total(dec(230), tax, dec(5)).Equal(dec(253.4)))
	})

	t.Run("computed together", func(t *testing.T) {
		totals := ComputeTotals(items, DefaultTaxRate, decimal.Zero)
		assert.True(t, totals.Subtotal.Equal(dec(230)))
		assert.True(t, totals.Savings.Equal(dec(20)))
		assert.True(t, totals.Tax.Equal(dec(18.4)))
		assert.True(t, totals.Total.Equal(dec(248.4)))
	})
}

func TestSavingsNeverNegative(t *testing.T) {
	items := []domain.CartItem{
		{ID: 1, Product: product(1, 9.99, 7.17), Quantity: 3},
		{ID: 2, Product: product(2, 19.99, 0), Quantity: 1},
	}

	assert.False(t, Savings(items).IsNegative())
}
