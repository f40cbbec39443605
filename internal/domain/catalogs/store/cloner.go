package store

import (
	"context"

	"storecatalog/internal/core/id"
	"storecatalog/pkg/logger"
)

// Cloner duplicates store records under a new identity.
type Cloner struct {
	stores *Service
}

// NewCloner creates a Cloner writing through the given service.
func NewCloner(stores *Service) *Cloner {
	return &Cloner{stores: stores}
}

// Copy creates a new store with the name, location, email and last-update
// time of the source store. Product associations are not copied.
func (c *Cloner) Copy(ctx context.Context, sourceID id.ID) (*Store, error) {
	src, err := c.stores.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	clone := NewStore(src.Name, src.Location, src.Email)
	clone.UpdatedAt = src.UpdatedAt

	if err := c.stores.Create(ctx, clone); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "store copied", "source_id", src.ID, "store_id", clone.ID)
	return clone, nil
}
