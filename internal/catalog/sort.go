package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jafarshop/storefront/internal/domain"
)

// SortProducts returns a new slice ordered by the given sort option.
// The input is never mutated. Sorting is stable so tied elements keep
// their relative input order; "default" and unknown options preserve
// the input order entirely.
func SortProducts(products []domain.Product, sortBy domain.SortOption) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return discounted(sorted[i]).LessThan(discounted(sorted[j]))
		})
	case domain.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return discounted(sorted[j]).LessThan(discounted(sorted[i]))
		})
	case domain.SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Rating < sorted[i].Rating
		})
	case domain.SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	case domain.SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Title < sorted[i].Title
		})
	}

	return sorted
}

func discounted(p domain.Product) decimal.Decimal {
	return DiscountedPrice(p.Price, p.DiscountPercentage)
}
