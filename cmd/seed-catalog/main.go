package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/dummyjson"
	"github.com/jafarshop/storefront/internal/repository/postgres"
)

func main() {
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

	// Create repositories
	repos := postgres.NewRepositories(db, logger)

	// Fetch the catalog from the demo API
	client := dummyjson.NewClient(cfg.Catalog, logger)
	products, err := client.GetAllProducts(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch catalog: %v\n", err)
		os.Exit(1)
	}

	// Upsert each product
	seeded := 0
	for i := range products {
		if err := repos.Product.Upsert(context.Background(), &products[i]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to store product %d: %v\n", products[i].ID, err)
			os.Exit(1)
		}
		seeded++
	}

	fmt.Printf("Seeded %d products from %s\n", seeded, cfg.Catalog.SourceURL)
}
