package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/handlers"
	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, carts *cart.Store, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(repos, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		v1.GET("/facets", handlers.HandleGetFacets(repos, logger))

		v1.POST("/carts", handlers.HandleCreateCart(cfg, carts, logger))
		v1.GET("/carts/:id", handlers.HandleGetCart(cfg, carts, logger))
		v1.POST("/carts/:id/items", handlers.HandleAddCartItem(cfg, repos, carts, logger))
		v1.PUT("/carts/:id/items/:productID", handlers.HandleUpdateCartItem(cfg, carts, logger))
		v1.DELETE("/carts/:id/items/:productID", handlers.HandleRemoveCartItem(cfg, carts, logger))
		v1.DELETE("/carts/:id", handlers.HandleClearCart(cfg, carts, logger))

		v1.POST("/feedback", handlers.HandleSubmitFeedback(repos, logger))
		v1.POST("/feedback/validate", handlers.HandleValidateStep(logger))
		v1.GET("/feedback", handlers.HandleListSubmissions(repos, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
