// Package id provides identity generation for catalog records.
// Identities are UUIDv7, so sorting by id follows creation order.
package id

import (
	"github.com/google/uuid"
)

// ID is the identity type shared by stores, products, suppliers and assortment items.
type ID = uuid.UUID

// New generates a fresh time-ordered identity.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.New()
	}
	return v
}

// Parse converts a string to ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to ID and panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero identity.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether the identity was never assigned.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
