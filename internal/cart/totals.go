package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
)

// DefaultTaxRate matches the storefront's flat 8% tax
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// Totals holds the monetary aggregates of an item list. All four
// fields are derived together from the same list; a Totals value is
// never patched field-by-field.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Savings  decimal.Decimal `json:"savings"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal sums the discounted item totals of the list
func Subtotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(catalog.ItemTotal(item.Product, item.Quantity))
	}
	return total
}

// Savings sums the difference between list price and discounted price
// across the item list.
func Savings(items []domain.CartItem) decimal.Decimal {
	savings := decimal.Zero
	for _, item := range items {
		original := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		savings = savings.Add(original.Sub(catalog.ItemTotal(item.Product, item.Quantity)))
	}
	return savings
}

// Tax applies a flat rate to a subtotal
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

// Total sums subtotal, tax and shipping
func Total(subtotal, tax, shipping decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax).Add(shipping)
}

// ComputeTotals recomputes every aggregate from the item list in one
// pass so a caller can never observe a stale or partial combination.
func ComputeTotals(items []domain.CartItem, taxRate, shipping decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	tax := Tax(subtotal, taxRate)
	return Totals{
		Subtotal: subtotal,
		Savings:  Savings(items),
		Tax:      tax,
		Total:    Total(subtotal, tax, shipping),
	}
}
