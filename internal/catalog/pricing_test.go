package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storefront/internal/domain"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 100, 0, 100},
		{"full discount", 100, 100, 0},
		{"ten percent", 100, 10, 90},
		{"fractional", 49.99, 12.96, 43.511296},
		{"zero price", 0, 50, 0},
		{"over one hundred not clamped", 100, 150, -50},
		{"negative percentage is a markup", 100, -10, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedPrice(dec(tt.price), dec(tt.discount))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %v", got, tt.want)
		})
	}
}

func TestItemTotal(t *testing.T) {
	p := domain.Product{Price: dec(100), DiscountPercentage: dec(10)}

	assert.True(t, ItemTotal(p, 3).Equal(dec(270)))
	assert.True(t, ItemTotal(p, 0).Equal(dec(0)))
}
