package dto

import (
	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/domain/catalogs/store"
)

// --- Request DTOs ---

// StoreRequest is the request body for creating or updating a store.
// Blank fields are rejected by the domain with the failing field named.
type StoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// ToInput converts DTO to service input.
func (r *StoreRequest) ToInput() catalog.StoreInput {
	return catalog.StoreInput{
		Name:     r.Name,
		Location: r.Location,
		Email:    r.Email,
	}
}

// --- Response DTOs ---

// StoreResponse is the response body for a single store.
type StoreResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// FromStore converts domain entity to response DTO.
func FromStore(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:       s.ID.String(),
		Name:     s.Name,
		Location: s.Location,
		Email:    s.Email,
	}
}

// StoreListItem is the list view of a store. It omits the email.
type StoreListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// FromStoreListItem converts domain entity to list item DTO.
func FromStoreListItem(s *store.Store) StoreListItem {
	return StoreListItem{
		ID:       s.ID.String(),
		Name:     s.Name,
		Location: s.Location,
	}
}
