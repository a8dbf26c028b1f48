package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brewhouse/coffee-shop-api/internal/api/metrics"
	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
	"github.com/brewhouse/coffee-shop-api/internal/core/ports"
)

// ProductService implements catalog use cases.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns every product in store-native order. Callers must not rely
// on the ordering.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the required fields, applies defaults (stock 100,
// available true) and persists the product.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Description == "" || input.Price == 0 || input.Category == "" {
		return nil, domain.ErrMissingFields
	}
	if err := validateProductFields(&input.Price, (*domain.ProductCategory)(&input.Category)); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    domain.ProductCategory(input.Category),
		Available:   true,
		Stock:       domain.DefaultStock,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update merges the patch into the stored product. Provided fields are run
// through the same validators as create; absent fields are left untouched.
func (s *ProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.NewValidationError("name must not be empty")
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, domain.NewValidationError("description must not be empty")
	}
	if err := validateProductFields(patch.Price, patch.Category); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// validateProductFields checks the constraints shared by create and update.
// Nil fields are skipped.
func validateProductFields(price *float64, category *domain.ProductCategory) error {
	var msgs []string
	if price != nil && *price < 0 {
		msgs = append(msgs, "price must not be negative")
	}
	if category != nil && !category.Valid() {
		msgs = append(msgs, fmt.Sprintf("category must be one of: %v", domain.Categories))
	}
	if len(msgs) > 0 {
		return domain.NewValidationError(msgs...)
	}
	return nil
}
