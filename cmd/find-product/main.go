package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <search-query>")
		fmt.Println("Example: go run cmd/find-product/main.go \"mascara\"")
		os.Exit(1)
	}

	query := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)

	products, err := repos.Product.GetAll(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	matches := catalog.SearchProducts(products, query)
	if len(matches) == 0 {
		fmt.Printf("No products match %q\n", query)
		return
	}

	fmt.Printf("Found %d products matching %q:\n\n", len(matches), query)
	for _, p := range matches {
		price := catalog.DiscountedPrice(p.Price, p.DiscountPercentage)
		fmt.Printf("  [%d] %s | %s (%s) $%s", p.ID, p.Title, p.Category, p.Brand, price.StringFixed(2))
		if !p.DiscountPercentage.IsZero() {
			fmt.Printf(" (list $%s, %s%% off)", p.Price.StringFixed(2), p.DiscountPercentage.String())
		}
		fmt.Println()
	}
}
