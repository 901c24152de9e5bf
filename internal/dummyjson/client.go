// Package dummyjson is a client for the public demo product API the
// catalog is seeded from.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a demo product API client
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.SourceURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// productPayload mirrors the API's product shape
type productPayload struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Brand              string   `json:"brand"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Tags               []string `json:"tags"`
}

// productsResponse mirrors the API's paginated list envelope
type productsResponse struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// GetAllProducts pages through /products until the full catalog is
// fetched.
func (c *Client) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	const pageSize = 100

	var products []domain.Product
	skip := 0

	for {
		page, err := c.getPage(ctx, pageSize, skip)
		if err != nil {
			return nil, err
		}

		for _, p := range page.Products {
			products = append(products, toDomain(p))
		}

		skip += len(page.Products)
		if skip >= page.Total || len(page.Products) == 0 {
			break
		}
	}

	c.logger.Info("Fetched catalog from demo API", zap.Int("products", len(products)))
	return products, nil
}

func (c *Client) getPage(ctx context.Context, limit, skip int) (*productsResponse, error) {
	url := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("demo API returned status %d: %s", resp.StatusCode, string(body))
	}

	var page productsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &page, nil
}

func toDomain(p productPayload) domain.Product {
	return domain.Product{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              decimal.NewFromFloat(p.Price),
		DiscountPercentage: decimal.NewFromFloat(p.DiscountPercentage),
		Rating:             p.Rating,
		Stock:              p.Stock,
		Tags:               p.Tags,
	}
}
