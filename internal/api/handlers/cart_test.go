package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/repository"
)

func cartRouter(t *testing.T, repos *repository.Repositories) *gin.Engine {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	carts := cart.NewStore(client, logger)
	cfg := &config.Config{
		Checkout: config.CheckoutConfig{TaxRate: 0.08},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/carts", HandleCreateCart(cfg, carts, logger))
	router.GET("/v1/carts/:id", HandleGetCart(cfg, carts, logger))
	router.POST("/v1/carts/:id/items", HandleAddCartItem(cfg, repos, carts, logger))
	router.PUT("/v1/carts/:id/items/:productID", HandleUpdateCartItem(cfg, carts, logger))
	router.DELETE("/v1/carts/:id/items/:productID", HandleRemoveCartItem(cfg, carts, logger))
	router.DELETE("/v1/carts/:id", HandleClearCart(cfg, carts, logger))
	return router
}

func createCart(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := performRequest(router, "POST", "/v1/carts", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestCartLifecycle(t *testing.T) {
	repos := catalogRepos(
		newTestProduct(1, "Charger", "electronics", "Volt", 100, 10),
		newTestProduct(2, "Lipstick", "beauty", "Glow", 50, 0),
	)
	router := cartRouter(t, repos)
	cartID := createCart(t, router)

	t.Run("empty cart has zero totals", func(t *testing.T) {
		w := performRequest(router, "GET", "/v1/carts/"+cartID, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0.0, resp.Totals.Total)
	})

	t.Run("add increments existing items", func(t *testing.T) {
		body := `{"product_id": 1, "quantity": 1}`
		w := performRequest(router, "POST", "/v1/carts/"+cartID+"/items", body)
		require.Equal(t, http.StatusOK, w.Code)

		body = `{"product_id": 1, "quantity": 2}`
		w = performRequest(router, "POST", "/v1/carts/"+cartID+"/items", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
		// 3 * 90 discounted
		assert.Equal(t, 270.0, resp.Totals.Subtotal)
		assert.Equal(t, 30.0, resp.Totals.Savings)
		assert.InDelta(t, 21.6, resp.Totals.Tax, 0.0001)
		assert.InDelta(t, 291.6, resp.Totals.Total, 0.0001)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		body := `{"product_id": 2}`
		w := performRequest(router, "POST", "/v1/carts/"+cartID+"/items", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, 1, resp.Items[1].Quantity)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		body := `{"product_id": 99}`
		w := performRequest(router, "POST", "/v1/carts/"+cartID+"/items", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update sets quantity exactly", func(t *testing.T) {
		w := performRequest(router, "PUT", fmt.Sprintf("/v1/carts/%s/items/1", cartID), `{"quantity": 2}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Items[0].Quantity)
	})

	t.Run("zero quantity removes the item", func(t *testing.T) {
		w := performRequest(router, "PUT", fmt.Sprintf("/v1/carts/%s/items/1", cartID), `{"quantity": 0}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(2), resp.Items[0].ProductID)
	})

	t.Run("remove absent item is a no-op", func(t *testing.T) {
		w := performRequest(router, "DELETE", fmt.Sprintf("/v1/carts/%s/items/99", cartID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		w := performRequest(router, "DELETE", "/v1/carts/"+cartID, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp CartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0.0, resp.Totals.Subtotal)
	})
}
