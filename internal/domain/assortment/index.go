package assortment

import (
	"context"
	"fmt"

	"storecatalog/internal/core/id"
)

// Index is a read-only view over the association set.
type Index struct {
	repo Repository
}

// NewIndex creates an Index over repo.
func NewIndex(repo Repository) *Index {
	return &Index{repo: repo}
}

// ProductsOfStore returns the product ids associated with a store,
// in insertion order with duplicates preserved.
func (x *Index) ProductsOfStore(ctx context.Context, storeID id.ID) ([]id.ID, error) {
	items, err := x.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list assortment of store %s: %w", storeID, err)
	}

	productIDs := make([]id.ID, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	return productIDs, nil
}

// StoreCountForProduct returns the number of distinct stores selling a product.
func (x *Index) StoreCountForProduct(ctx context.Context, productID id.ID) (int, error) {
	items, err := x.repo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("list assortment of product %s: %w", productID, err)
	}

	stores := make(map[id.ID]struct{}, len(items))
	for _, it := range items {
		stores[it.StoreID] = struct{}{}
	}
	return len(stores), nil
}
