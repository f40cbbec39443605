package entity

import (
	"context"
	"strings"

	"storecatalog/internal/core/apperror"
)

// Catalog is the base type for reference data: stores, products, suppliers.
type Catalog struct {
	BaseEntity

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Name:       name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	return RequireText("name", c.Name)
}

// RequireText fails with a field validation error when value is blank.
// Whitespace-only values count as blank.
func RequireText(field, value string) error {
	if IsBlank(value) {
		return apperror.NewRequiredField(field)
	}
	return nil
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
