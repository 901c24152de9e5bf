// Package cart implements cart item operations and the monetary
// aggregates derived from an item list. Operations return new slices;
// callers treat the item list as the single source of truth and
// recompute aggregates after every change.
package cart

import (
	"github.com/jafarshop/storefront/internal/domain"
)

// AddItem adds a product to the item list. If an item with the same
// product id already exists its quantity is incremented; otherwise a
// new item is appended.
func AddItem(items []domain.CartItem, product domain.Product, quantity int) []domain.CartItem {
	for i, item := range items {
		if item.ID == product.ID {
			updated := make([]domain.CartItem, len(items))
			copy(updated, items)
			updated[i].Quantity += quantity
			return updated
		}
	}

	updated := make([]domain.CartItem, len(items), len(items)+1)
	copy(updated, items)
	return append(updated, domain.CartItem{
		ID:       product.ID,
		Product:  product,
		Quantity: quantity,
	})
}

// RemoveItem drops the item with the given product id. Removing an
// absent id is a no-op, not an error.
func RemoveItem(items []domain.CartItem, productID int64) []domain.CartItem {
	updated := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			updated = append(updated, item)
		}
	}
	return updated
}

// UpdateQuantity sets the quantity of the item with the given product
// id exactly. A quantity of zero or less removes the item instead; a
// zero or negative entry never appears in the list.
func UpdateQuantity(items []domain.CartItem, productID int64, quantity int) []domain.CartItem {
	if quantity <= 0 {
		return RemoveItem(items, productID)
	}

	updated := make([]domain.CartItem, len(items))
	copy(updated, items)
	for i := range updated {
		if updated[i].ID == productID {
			updated[i].Quantity = quantity
		}
	}
	return updated
}

// Clear returns an empty item list
func Clear() []domain.CartItem {
	return []domain.CartItem{}
}
