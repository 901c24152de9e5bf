package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jafarshop/storefront/internal/domain"
)

// passAll is the sentinel filter value that matches every product
const passAll = "all"

// FilterByCategory keeps products whose category equals the given one,
// compared case-insensitively. A nil or "all" category passes everything.
func FilterByCategory(products []domain.Product, category *string) []domain.Product {
	if category == nil || *category == passAll {
		return products
	}

	want := strings.ToLower(*category)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.ToLower(p.Category) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByPriceRange keeps products whose discounted price falls within
// the inclusive [min, max] bounds. A nil bound imposes no constraint.
func FilterByPriceRange(products []domain.Product, min, max *decimal.Decimal) []domain.Product {
	if min == nil && max == nil {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		price := DiscountedPrice(p.Price, p.DiscountPercentage)
		if min != nil && price.LessThan(*min) {
			continue
		}
		if max != nil && price.GreaterThan(*max) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterByBrand keeps products whose brand matches exactly
// (case-sensitive). A nil or "all" brand passes everything.
func FilterByBrand(products []domain.Product, brand *string) []domain.Product {
	if brand == nil || *brand == passAll {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Brand == *brand {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SearchProducts keeps products where the query appears as a
// case-insensitive substring of the title, description, category, brand
// or any tag. An empty or whitespace-only query passes everything.
func SearchProducts(products []domain.Product, query string) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	q := strings.ToLower(query)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ApplyAllFilters chains the filters as independent passes in the fixed
// order category, price range, brand, search. Each pass is idempotent so
// the order does not affect the result set.
func ApplyAllFilters(products []domain.Product, filters domain.ProductFilters) []domain.Product {
	filtered := products
	filtered = FilterByCategory(filtered, filters.Category)
	filtered = FilterByPriceRange(filtered, filters.MinPrice, filters.MaxPrice)
	filtered = FilterByBrand(filtered, filters.Brand)
	filtered = SearchProducts(filtered, filters.Search)
	return filtered
}
