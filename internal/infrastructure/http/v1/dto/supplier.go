package dto

import (
	"storecatalog/internal/domain/catalogs/supplier"
)

// SupplierRequest is the request body for creating or updating a supplier.
type SupplierRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// ToEntity converts DTO to domain entity.
func (r *SupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Name, r.Email)
	r.ApplyTo(s)
	return s
}

// ApplyTo overwrites every mutable field of an existing supplier.
func (r *SupplierRequest) ApplyTo(s *supplier.Supplier) {
	s.Name = r.Name
	s.Email = r.Email
	s.Phone = r.Phone
	s.Address = r.Address
	s.Website = r.Website
}

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// FromSupplier converts domain entity to response DTO.
func FromSupplier(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID.String(),
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		Website: s.Website,
	}
}
