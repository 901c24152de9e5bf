package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

type productRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB, logger *zap.Logger) *productRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, title, description, category, brand, price, discount_percentage, rating, stock, tags
		FROM products
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error("Failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *product)
	}

	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, title, description, category, brand, price, discount_percentage, rating, stock, tags
		FROM products
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		r.logger.Error("Failed to get product by ID", zap.Error(err))
		return nil, err
	}

	return product, nil
}

func (r *productRepository) Upsert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, title, description, category, brand, price, discount_percentage, rating, stock, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET title = $2, description = $3, category = $4, brand = $5,
		    price = $6, discount_percentage = $7, rating = $8, stock = $9, tags = $10
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.Category,
		product.Brand,
		product.Price,
		product.DiscountPercentage,
		product.Rating,
		product.Stock,
		pq.Array(product.Tags),
	)

	if err != nil {
		r.logger.Error("Failed to upsert product", zap.Int64("id", product.ID), zap.Error(err))
		return err
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var description, brand sql.NullString

	err := row.Scan(
		&product.ID,
		&product.Title,
		&description,
		&product.Category,
		&brand,
		&product.Price,
		&product.DiscountPercentage,
		&product.Rating,
		&product.Stock,
		pq.Array(&product.Tags),
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		product.Description = description.String
	}
	if brand.Valid {
		product.Brand = brand.String
	}

	return &product, nil
}
