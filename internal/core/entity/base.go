// Package entity provides the building blocks shared by catalog records.
package entity

import (
	"context"
	"time"

	"storecatalog/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without storage access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Identifiable is implemented by every persisted record.
type Identifiable interface {
	GetID() id.ID
}

// BaseEntity contains the identity of a record.
// The identity is assigned once at construction and never rewritten.
type BaseEntity struct {
	ID id.ID `db:"id" json:"id"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity() BaseEntity {
	return BaseEntity{ID: id.New()}
}

// GetID returns the record identity.
func (b *BaseEntity) GetID() id.ID {
	return b.ID
}

// Timestamps holds the last-modification time of a mutable record.
type Timestamps struct {
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Touch sets UpdatedAt to the current time.
func (t *Timestamps) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// TouchIfUnset sets UpdatedAt only when it was never set.
func (t *Timestamps) TouchIfUnset() {
	if t.UpdatedAt.IsZero() {
		t.Touch()
	}
}
