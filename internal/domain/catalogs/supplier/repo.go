package supplier

import (
	"context"

	"storecatalog/internal/domain"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	domain.CatalogRepository[*Supplier]

	// FindByEmail retrieves supplier by email.
	// Returns NotFound when no supplier uses it.
	FindByEmail(ctx context.Context, email string) (*Supplier, error)
}
