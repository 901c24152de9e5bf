package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/pkg/errors"
)

// AddCartItemRequest represents the add-item payload
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest represents the set-quantity payload
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse represents one cart line in API responses
type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	LineTotal float64         `json:"line_total"`
	Product   ProductResponse `json:"product"`
}

// CartResponse represents a cart with its freshly computed totals
type CartResponse struct {
	ID     string             `json:"id"`
	Items  []CartItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
}

type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Savings  float64 `json:"savings"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// HandleCreateCart handles POST /v1/carts
func HandleCreateCart(cfg *config.Config, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := uuid.New().String()

		if err := carts.Save(c.Request.Context(), cartID, cart.Clear()); err != nil {
			logger.Error("Failed to create cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusCreated, cartResponse(cfg, cartID, nil))
	}
}

// HandleGetCart handles GET /v1/carts/:id
func HandleGetCart(cfg *config.Config, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")
		items := carts.Load(c.Request.Context(), cartID)
		c.JSON(http.StatusOK, cartResponse(cfg, cartID, items))
	}
}

// HandleAddCartItem handles POST /v1/carts/:id/items
func HandleAddCartItem(cfg *config.Config, repos *repository.Repositories, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "quantity must be positive"})
			return
		}

		product, err := repos.Product.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		items := carts.Load(c.Request.Context(), cartID)
		items = cart.AddItem(items, *product, quantity)

		if err := carts.Save(c.Request.Context(), cartID, items); err != nil {
			logger.Error("Failed to save cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cfg, cartID, items))
	}
}

// HandleUpdateCartItem handles PUT /v1/carts/:id/items/:productID
func HandleUpdateCartItem(cfg *config.Config, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")

		productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		items := carts.Load(c.Request.Context(), cartID)
		items = cart.UpdateQuantity(items, productID, req.Quantity)

		if err := carts.Save(c.Request.Context(), cartID, items); err != nil {
			logger.Error("Failed to save cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cfg, cartID, items))
	}
}

// HandleRemoveCartItem handles DELETE /v1/carts/:id/items/:productID
func HandleRemoveCartItem(cfg *config.Config, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")

		productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		items := carts.Load(c.Request.Context(), cartID)
		items = cart.RemoveItem(items, productID)

		if err := carts.Save(c.Request.Context(), cartID, items); err != nil {
			logger.Error("Failed to save cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cfg, cartID, items))
	}
}

// HandleClearCart handles DELETE /v1/carts/:id
func HandleClearCart(cfg *config.Config, carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")

		items := cart.Clear()
		if err := carts.Save(c.Request.Context(), cartID, items); err != nil {
			logger.Error("Failed to clear cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cfg, cartID, items))
	}
}

// cartResponse builds the response with items and totals recomputed
// together from the same item list.
func cartResponse(cfg *config.Config, cartID string, items []domain.CartItem) CartResponse {
	taxRate := decimal.NewFromFloat(cfg.Checkout.TaxRate)
	shipping := decimal.NewFromFloat(cfg.Checkout.FlatShipping)
	totals := cart.ComputeTotals(items, taxRate, shipping)

	itemResponses := make([]CartItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = CartItemResponse{
			ProductID: item.ID,
			Title:     item.Product.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price.InexactFloat64(),
			LineTotal: catalog.ItemTotal(item.Product, item.Quantity).InexactFloat64(),
			Product:   toProductResponse(item.Product),
		}
	}

	return CartResponse{
		ID:    cartID,
		Items: itemResponses,
		Totals: TotalsResponse{
			Subtotal: totals.Subtotal.InexactFloat64(),
			Savings:  totals.Savings.InexactFloat64(),
			Tax:      totals.Tax.InexactFloat64(),
			Shipping: shipping.InexactFloat64(),
			Total:    totals.Total.InexactFloat64(),
		},
	}
}
