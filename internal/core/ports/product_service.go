package ports

import (
	"context"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog item.
// Stock and Available are optional; the service applies defaults.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       *int
	Available   *bool
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
