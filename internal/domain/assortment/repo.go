package assortment

import (
	"context"

	"storecatalog/internal/core/id"
)

// Repository defines the interface for association persistence.
// Associations are append-only.
type Repository interface {
	// Create inserts an association
	Create(ctx context.Context, item *Item) error

	// ListByStore returns associations of a store in insertion order
	ListByStore(ctx context.Context, storeID id.ID) ([]*Item, error)

	// ListByProduct returns associations of a product in insertion order
	ListByProduct(ctx context.Context, productID id.ID) ([]*Item, error)
}
