package handlers

import (
	"storecatalog/internal/domain/catalogs/supplier"
	"storecatalog/internal/infrastructure/http/v1/dto"
)

// SupplierHandler serves supplier CRUD.
type SupplierHandler = CatalogHandler[*supplier.Supplier, dto.SupplierRequest]

// NewSupplierHandler creates the supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*supplier.Supplier, dto.SupplierRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req dto.SupplierRequest) *supplier.Supplier {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.SupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *supplier.Supplier) any {
			return dto.FromSupplier(entity)
		},
	})
}
