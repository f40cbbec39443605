// Package store provides the Store catalog: physical sales locations.
package store

import (
	"context"

	"storecatalog/internal/core/entity"
)

// Store is a physical sales location.
type Store struct {
	entity.Catalog
	entity.Timestamps

	// Location is a free-text street description, e.g. "ул. Ленина, 5"
	Location string `db:"location" json:"location"`

	// Email is required, its format is not checked
	Email string `db:"email" json:"email"`
}

// NewStore creates a new Store with generated ID.
func NewStore(name, location, email string) *Store {
	return &Store{
		Catalog:  entity.NewCatalog(name),
		Location: location,
		Email:    email,
	}
}

// Validate implements entity.Validatable interface.
// Fields are checked in order name, location, email; the first blank one is reported.
func (s *Store) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.RequireText("location", s.Location); err != nil {
		return err
	}
	return entity.RequireText("email", s.Email)
}

// Assign overwrites all mutable fields. Identity is untouched.
func (s *Store) Assign(name, location, email string) {
	s.Name = name
	s.Location = location
	s.Email = email
}
