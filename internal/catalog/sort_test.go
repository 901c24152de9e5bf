package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storefront/internal/domain"
)

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSortProducts(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "Charger", Price: dec(100), DiscountPercentage: dec(10), Rating: 4.5},
		{ID: 2, Title: "Adapter", Price: dec(50), Rating: 3.0},
		{ID: 3, Title: "Battery", Price: dec(90), Rating: 4.5},
	}

	tests := []struct {
		name   string
		sortBy domain.SortOption
		want   []int64
	}{
		// discounted prices: 90, 50, 90
		{"price ascending", domain.SortPriceAsc, []int64{2, 1, 3}},
		{"price descending", domain.SortPriceDesc, []int64{1, 3, 2}},
		{"rating descending keeps tie order", domain.SortRatingDesc, []int64{1, 3, 2}},
		{"name ascending", domain.SortNameAsc, []int64{2, 3, 1}},
		{"name descending", domain.SortNameDesc, []int64{1, 3, 2}},
		{"default preserves input order", domain.SortDefault, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortProducts(products, tt.sortBy)
			assert.Equal(t, tt.want, ids(got))
			// input untouched
			assert.Equal(t, []int64{1, 2, 3}, ids(products))
		})
	}
}

func TestSortProductsStable(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "A"},
	}

	got := SortProducts(products, domain.SortNameAsc)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestSortProductsExample(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Price: dec(100), DiscountPercentage: dec(10)},
		{ID: 2, Price: dec(50)},
	}

	got := SortProducts(products, domain.SortPriceAsc)
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestCollectFacets(t *testing.T) {
	facets := CollectFacets(testProducts())

	assert.Equal(t, []string{"Beauty", "beauty", "kitchen-accessories"}, facets.Categories)
	assert.Equal(t, []string{"Bravura", "Essence", "Velvet Touch"}, facets.Brands)
	assert.True(t, facets.MinPrice.Equal(dec(9.99)))
	assert.True(t, facets.MaxPrice.Equal(dec(40)))
}

func TestCollectFacetsEmpty(t *testing.T) {
	facets := CollectFacets(nil)

	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Brands)
	assert.True(t, facets.MinPrice.IsZero())
	assert.True(t, facets.MaxPrice.IsZero())
}
