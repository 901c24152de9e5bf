package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jafarshop/storefront/internal/domain"
)

// Facets summarizes the filterable dimensions of a product collection:
// the distinct categories and brands plus the discounted price bounds.
type Facets struct {
	Categories []string
	Brands     []string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
}

// CollectFacets derives the facet summary for a product collection.
// Categories and brands are de-duplicated and sorted; empty values are
// skipped. Price bounds are zero for an empty collection.
func CollectFacets(products []domain.Product) Facets {
	categories := make(map[string]struct{})
	brands := make(map[string]struct{})

	var f Facets
	for i, p := range products {
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		price := DiscountedPrice(p.Price, p.DiscountPercentage)
		if i == 0 {
			f.MinPrice = price
			f.MaxPrice = price
			continue
		}
		if price.LessThan(f.MinPrice) {
			f.MinPrice = price
		}
		if price.GreaterThan(f.MaxPrice) {
			f.MaxPrice = price
		}
	}

	f.Categories = sortedKeys(categories)
	f.Brands = sortedKeys(brands)
	return f
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
