package domain

import "time"

// ProductCategory is the closed set of menu categories.
type ProductCategory string

const (
	CategoryEspresso   ProductCategory = "Espresso"
	CategoryCappuccino ProductCategory = "Cappuccino"
	CategoryLatte      ProductCategory = "Latte"
	CategoryTea        ProductCategory = "Tea"
	CategoryIceLatte   ProductCategory = "IceLatte"
)

// Categories lists every valid product category.
var Categories = []ProductCategory{
	CategoryEspresso,
	CategoryCappuccino,
	CategoryLatte,
	CategoryTea,
	CategoryIceLatte,
}

// Valid reports whether the category belongs to the closed set.
func (c ProductCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const DefaultStock = 100

// Product is a catalog item. Timestamps are maintained by the repository
// on every write.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Available   bool            `json:"available"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
