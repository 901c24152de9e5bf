package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/pkg/errors"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DiscountedPrice    float64  `json:"discounted_price"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Tags               []string `json:"tags,omitempty"`
}

// ProductListResponse represents the product listing response
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// FacetsResponse represents the filter sidebar source data
type FacetsResponse struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
}

// HandleListProducts handles GET /v1/products
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := parseFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		products, err := repos.Product.GetAll(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load catalog", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		filtered := catalog.ApplyAllFilters(products, *filters)
		sorted := catalog.SortProducts(filtered, filters.SortBy)

		response := ProductListResponse{
			Total:    len(sorted),
			Products: make([]ProductResponse, len(sorted)),
		}
		for i, p := range sorted {
			response.Products[i] = toProductResponse(p)
		}

		c.JSON(http.StatusOK, response)
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		product, err := repos.Product.GetByID(c.Request.Context(), id)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}

// HandleGetFacets handles GET /v1/facets
func HandleGetFacets(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repos.Product.GetAll(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load catalog", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		facets := catalog.CollectFacets(products)
		c.JSON(http.StatusOK, FacetsResponse{
			Categories: facets.Categories,
			Brands:     facets.Brands,
			MinPrice:   facets.MinPrice.InexactFloat64(),
			MaxPrice:   facets.MaxPrice.InexactFloat64(),
		})
	}
}

func parseFilters(c *gin.Context) (*domain.ProductFilters, error) {
	filters := domain.ProductFilters{
		SortBy: domain.SortDefault,
		Search: c.Query("search"),
	}

	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if brand := c.Query("brand"); brand != "" {
		filters.Brand = &brand
	}

	if minStr := c.Query("min_price"); minStr != "" {
		min, err := decimal.NewFromString(minStr)
		if err != nil {
			return nil, &errors.ErrInvalidInput{Field: "min_price", Message: "must be a number"}
		}
		filters.MinPrice = &min
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		max, err := decimal.NewFromString(maxStr)
		if err != nil {
			return nil, &errors.ErrInvalidInput{Field: "max_price", Message: "must be a number"}
		}
		filters.MaxPrice = &max
	}

	if sortStr := c.Query("sort"); sortStr != "" {
		sortBy := domain.SortOption(sortStr)
		if !sortBy.IsValid() {
			return nil, &errors.ErrInvalidInput{Field: "sort", Message: "unknown sort option"}
		}
		filters.SortBy = sortBy
	}

	return &filters, nil
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price.InexactFloat64(),
		DiscountPercentage: p.DiscountPercentage.InexactFloat64(),
		DiscountedPrice:    catalog.DiscountedPrice(p.Price, p.DiscountPercentage).InexactFloat64(),
		Rating:             p.Rating,
		Stock:              p.Stock,
		Tags:               p.Tags,
	}
}
