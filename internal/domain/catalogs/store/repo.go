package store

import (
	"context"

	"storecatalog/internal/domain"
)

// Repository defines the interface for Store persistence.
type Repository interface {
	domain.CatalogRepository[*Store]

	// FindByLocation returns stores whose location contains substring.
	// Matching is literal and case-sensitive; order follows List.
	FindByLocation(ctx context.Context, substring string) ([]*Store, error)
}
