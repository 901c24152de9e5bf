// Package catalog implements the product derivation pipeline: discount
// pricing, filtering, searching and sorting over an in-memory product
// collection. All functions are pure; none mutate their inputs.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jafarshop/storefront/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// DiscountedPrice returns the unit price after applying the discount
// percentage. Percentages outside [0,100] are applied as-is, not clamped.
// Rounding is left to the presentation layer.
func DiscountedPrice(price, discountPercentage decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(discountPercentage).Div(oneHundred))
}

// ItemTotal returns the discounted price of a product times a quantity
func ItemTotal(product domain.Product, quantity int) decimal.Decimal {
	return DiscountedPrice(product.Price, product.DiscountPercentage).
		Mul(decimal.NewFromInt(int64(quantity)))
}
