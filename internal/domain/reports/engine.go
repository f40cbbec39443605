// Package reports computes aggregate views over stores, products and
// their assortment.
package reports

import (
	"context"
	"fmt"
	"strings"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
)

// StoreSource enumerates stores.
type StoreSource interface {
	List(ctx context.Context) ([]*store.Store, error)
}

// ProductSource resolves and enumerates products.
// GetByID must fail with NotFound for an unknown id.
type ProductSource interface {
	GetByID(ctx context.Context, productID id.ID) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
}

// AssortmentIndex answers membership and counting queries.
type AssortmentIndex interface {
	ProductsOfStore(ctx context.Context, storeID id.ID) ([]id.ID, error)
	StoreCountForProduct(ctx context.Context, productID id.ID) (int, error)
}

// QueryEngine implements the aggregate product queries.
type QueryEngine struct {
	stores   StoreSource
	products ProductSource
	index    AssortmentIndex
}

// NewQueryEngine creates a QueryEngine.
func NewQueryEngine(stores StoreSource, products ProductSource, index AssortmentIndex) *QueryEngine {
	return &QueryEngine{
		stores:   stores,
		products: products,
		index:    index,
	}
}

// FindProductsByLocation returns the products sold by stores whose location
// contains the given substring (literal, case-sensitive).
//
// Products are ordered by store enumeration order, then by association order
// within a store, each product appearing once. A nil location is a
// precondition failure. An association pointing at a missing product fails
// the whole query with NotFound.
func (e *QueryEngine) FindProductsByLocation(ctx context.Context, location *string) ([]*product.Product, error) {
	if location == nil {
		return nil, apperror.NewPrecondition("location")
	}

	stores, err := e.stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]*product.Product, 0)
	seen := make(map[id.ID]struct{})

	for _, st := range stores {
		if !strings.Contains(st.Location, *location) {
			continue
		}

		productIDs, err := e.index.ProductsOfStore(ctx, st.ID)
		if err != nil {
			return nil, err
		}

		for _, productID := range productIDs {
			if _, dup := seen[productID]; dup {
				continue
			}
			p, err := e.products.GetByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			seen[productID] = struct{}{}
			result = append(result, p)
		}
	}

	return result, nil
}

// FindUniqueProducts returns, in catalog order, the products sold by exactly
// one distinct store.
func (e *QueryEngine) FindUniqueProducts(ctx context.Context) ([]*product.Product, error) {
	products, err := e.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	result := make([]*product.Product, 0)
	for _, p := range products {
		count, err := e.index.StoreCountForProduct(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if count == 1 {
			result = append(result, p)
		}
	}

	return result, nil
}
