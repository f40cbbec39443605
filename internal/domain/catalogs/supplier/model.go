// Package supplier provides the Supplier catalog.
// Suppliers are plain reference data with a unique email.
package supplier

import (
	"context"

	"storecatalog/internal/core/entity"
)

// Supplier is a goods supplier.
type Supplier struct {
	entity.Catalog
	entity.Timestamps

	// Email is required and unique across suppliers
	Email string `db:"email" json:"email"`

	Phone   string `db:"phone" json:"phone"`
	Address string `db:"address" json:"address"`
	Website string `db:"website" json:"website"`
}

// NewSupplier creates a new Supplier with generated ID.
func NewSupplier(name, email string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(name),
		Email:   email,
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	return entity.RequireText("email", s.Email)
}
