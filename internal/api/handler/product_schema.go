package handler

import "github.com/brewhouse/coffee-shop-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"     validate:"gte=0"`
	Category    string  `json:"category"  validate:"omitempty,oneof=Espresso Cappuccino Latte Tea IceLatte"`
	Stock       *int    `json:"stock"     validate:"omitempty,gte=0"`
	Available   *bool   `json:"available"`
}

// updateProductRequest is a partial field set. Nil fields are left
// untouched; provided fields run through the same constraints as create.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Espresso Cappuccino Latte Tea IceLatte"`
	Stock       *int     `json:"stock"    validate:"omitempty,gte=0"`
	Available   *bool    `json:"available"`
}

type listProductsResponse struct {
	Message  string           `json:"message"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type deleteProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}
