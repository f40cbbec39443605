package memory

import (
	"context"
	"strings"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
	"storecatalog/internal/domain/catalogs/supplier"
)

// --- Stores ---

// StoreRepo implements store.Repository.
type StoreRepo struct {
	t *table[store.Store]
}

var _ store.Repository = (*StoreRepo)(nil)

// Create stores a copy of s. A reused id is a conflict.
func (r *StoreRepo) Create(_ context.Context, s *store.Store) error {
	return r.t.insert(s.ID, *s)
}

// GetByID returns a copy of the store or NotFound.
func (r *StoreRepo) GetByID(_ context.Context, storeID id.ID) (*store.Store, error) {
	row, err := r.t.get(storeID)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites an existing store.
func (r *StoreRepo) Update(_ context.Context, s *store.Store) error {
	return r.t.replace(s.ID, *s)
}

// Delete removes the store or fails with NotFound.
func (r *StoreRepo) Delete(_ context.Context, storeID id.ID) error {
	return r.t.remove(storeID)
}

// List returns all stores in insertion order.
func (r *StoreRepo) List(_ context.Context) ([]*store.Store, error) {
	return pointers(r.t.scan(nil)), nil
}

// FindByLocation matches the substring literally and case-sensitively.
func (r *StoreRepo) FindByLocation(_ context.Context, substring string) ([]*store.Store, error) {
	rows := r.t.scan(func(s store.Store) bool {
		return strings.Contains(s.Location, substring)
	})
	return pointers(rows), nil
}

// --- Products ---

// ProductRepo implements product.Repository.
type ProductRepo struct {
	t *table[product.Product]
}

var _ product.Repository = (*ProductRepo)(nil)

// Create stores a copy of p.
func (r *ProductRepo) Create(_ context.Context, p *product.Product) error {
	return r.t.insert(p.ID, *p)
}

// GetByID returns a copy of the product or NotFound.
func (r *ProductRepo) GetByID(_ context.Context, productID id.ID) (*product.Product, error) {
	row, err := r.t.get(productID)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites an existing product.
func (r *ProductRepo) Update(_ context.Context, p *product.Product) error {
	return r.t.replace(p.ID, *p)
}

// Delete removes the product or fails with NotFound.
func (r *ProductRepo) Delete(_ context.Context, productID id.ID) error {
	return r.t.remove(productID)
}

// List returns all products in insertion order.
func (r *ProductRepo) List(_ context.Context) ([]*product.Product, error) {
	return pointers(r.t.scan(nil)), nil
}

// --- Suppliers ---

// SupplierRepo implements supplier.Repository.
// Email uniqueness is enforced under the table lock, like a unique index.
type SupplierRepo struct {
	t *table[supplier.Supplier]
}

var _ supplier.Repository = (*SupplierRepo)(nil)

func emailFree(email string) func(other supplier.Supplier) error {
	return func(other supplier.Supplier) error {
		if other.Email == email {
			return apperror.NewDuplicate("supplier", "email", email)
		}
		return nil
	}
}

// Create stores a copy of s. A taken email fails with DuplicateEntry.
func (r *SupplierRepo) Create(_ context.Context, s *supplier.Supplier) error {
	return r.t.insertChecked(s.ID, *s, emailFree(s.Email))
}

// GetByID returns a copy of the supplier or NotFound.
func (r *SupplierRepo) GetByID(_ context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	row, err := r.t.get(supplierID)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites an existing supplier. The email must not belong to another one.
func (r *SupplierRepo) Update(_ context.Context, s *supplier.Supplier) error {
	return r.t.replaceChecked(s.ID, *s, emailFree(s.Email))
}

// Delete removes the supplier or fails with NotFound.
func (r *SupplierRepo) Delete(_ context.Context, supplierID id.ID) error {
	return r.t.remove(supplierID)
}

// List returns all suppliers in insertion order.
func (r *SupplierRepo) List(_ context.Context) ([]*supplier.Supplier, error) {
	return pointers(r.t.scan(nil)), nil
}

// FindByEmail returns the supplier owning email or NotFound.
func (r *SupplierRepo) FindByEmail(_ context.Context, email string) (*supplier.Supplier, error) {
	rows := r.t.scan(func(s supplier.Supplier) bool { return s.Email == email })
	if len(rows) == 0 {
		return nil, apperror.NewNotFound("supplier", email)
	}
	return &rows[0], nil
}

// --- Assortment ---

// AssortmentRepo implements assortment.Repository.
type AssortmentRepo struct {
	t *table[assortment.Item]
}

var _ assortment.Repository = (*AssortmentRepo)(nil)

// Create appends an association. Duplicate store/product pairs are allowed.
func (r *AssortmentRepo) Create(_ context.Context, item *assortment.Item) error {
	return r.t.insert(item.ID, *item)
}

// ListByStore returns the associations of a store in insertion order.
func (r *AssortmentRepo) ListByStore(_ context.Context, storeID id.ID) ([]*assortment.Item, error) {
	rows := r.t.scan(func(it assortment.Item) bool { return it.StoreID == storeID })
	return pointers(rows), nil
}

// ListByProduct returns the associations of a product in insertion order.
func (r *AssortmentRepo) ListByProduct(_ context.Context, productID id.ID) ([]*assortment.Item, error) {
	rows := r.t.scan(func(it assortment.Item) bool { return it.ProductID == productID })
	return pointers(rows), nil
}
