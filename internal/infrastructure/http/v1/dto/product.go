package dto

import (
	"storecatalog/internal/core/types"
	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/domain/catalogs/product"
)

// ProductRequest is the request body for creating a product.
// Price accepts a JSON number or a decimal string.
type ProductRequest struct {
	Name     string       `json:"name"`
	Price    *types.Money `json:"price"`
	Category string       `json:"category"`
}

// ToInput converts DTO to service input.
func (r *ProductRequest) ToInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
	}
}

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Category string      `json:"category"`
}

// FromProduct converts domain entity to response DTO.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}
