package repository

import (
	"context"

	"github.com/jafarshop/storefront/internal/domain"
)

// ProductRepository provides access to the stored catalog
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) error
}

// SubmissionRepository stores the feedback submission history
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.FormSubmission) error
	List(ctx context.Context) ([]domain.FormSubmission, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Product    ProductRepository
	Submission SubmissionRepository
}
