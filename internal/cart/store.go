package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

// keyPrefix namespaces cart slots in redis, one JSON value per cart
const keyPrefix = "product-catalog-cart:"

// cartTTL expires abandoned carts
const cartTTL = 30 * 24 * time.Hour

// Store persists cart item lists to redis. Load degrades to an empty
// list on missing or unparseable values; it never returns an error to
// the caller.
type Store struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStore creates a redis-backed cart store
func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Save serializes the item list into the cart's slot
func (s *Store) Save(ctx context.Context, cartID string, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+cartID, data, cartTTL).Err()
}

// Load reads the cart's slot. A missing key or a value that fails to
// parse yields an empty item list, logged but never surfaced.
func (s *Store) Load(ctx context.Context, cartID string) []domain.CartItem {
	data, err := s.client.Get(ctx, keyPrefix+cartID).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Failed to load cart from storage", zap.String("cart_id", cartID), zap.Error(err))
		}
		return []domain.CartItem{}
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		s.logger.Warn("Corrupt cart in storage, starting empty", zap.String("cart_id", cartID), zap.Error(err))
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}

// Delete removes the cart's slot entirely
func (s *Store) Delete(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, keyPrefix+cartID).Err()
}
