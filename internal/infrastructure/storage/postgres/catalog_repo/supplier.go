package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"storecatalog/internal/domain/catalogs/supplier"
	"storecatalog/internal/infrastructure/storage/postgres"
)

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

var _ supplier.Repository = (*SupplierRepo)(nil)

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_suppliers",
			"supplier",
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}

// Create inserts a supplier; a taken email is reported as duplicate.
func (r *SupplierRepo) Create(ctx context.Context, s *supplier.Supplier) error {
	return r.create(ctx, s, s.Email)
}

// Update overwrites a supplier; a taken email is reported as duplicate.
func (r *SupplierRepo) Update(ctx context.Context, s *supplier.Supplier) error {
	return r.update(ctx, s, s.Email)
}

// FindByEmail retrieves supplier by email.
func (r *SupplierRepo) FindByEmail(ctx context.Context, email string) (*supplier.Supplier, error) {
	return r.FindOne(ctx, r.baseSelect().Where(squirrel.Eq{"email": email}).Limit(1), email)
}
