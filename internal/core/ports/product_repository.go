package ports

import (
	"context"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// ProductPatch carries a partial product update. Nil fields are left
// untouched (merge semantics, not replace).
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *domain.ProductCategory
	Available   *bool
	Stock       *int
}

// Empty reports whether the patch changes nothing.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Available == nil && p.Stock == nil
}

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	// FindAll returns every product in store-native order.
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update merges the patch into the stored document, re-stamps
	// updated_at and returns the updated document.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete removes the document. Hard delete, non-recoverable.
	Delete(ctx context.Context, id string) error
}
