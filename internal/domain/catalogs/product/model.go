// Package product provides the Product catalog.
package product

import (
	"context"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/entity"
	"storecatalog/internal/core/types"
)

// DefaultCategory is assigned when a product is created without a category.
const DefaultCategory = "some"

// Product is a catalog item sold by stores.
type Product struct {
	entity.Catalog

	// Price is non-negative
	Price types.Money `db:"price" json:"price"`

	// Category is free text
	Category string `db:"category" json:"category"`
}

// NewProduct creates a new Product with generated ID.
// An empty category falls back to DefaultCategory.
func NewProduct(name string, price types.Money, category string) *Product {
	if category == "" {
		category = DefaultCategory
	}
	return &Product{
		Catalog:  entity.NewCatalog(name),
		Price:    price,
		Category: category,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}

	return nil
}
