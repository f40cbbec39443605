// Package catalog orchestrates store and product operations and the
// aggregate queries over the store assortment.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/internal/core/tx"
	"storecatalog/internal/core/types"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
	"storecatalog/internal/domain/reports"
	"storecatalog/pkg/logger"
)

// StoreInput carries the mutable fields of a store.
type StoreInput struct {
	Name     string
	Location string
	Email    string
}

// ProductInput carries the fields of a new product.
// A nil Price is a validation failure.
type ProductInput struct {
	Name     string
	Price    *types.Money
	Category string
}

// Service is the entry point of the catalog API.
type Service struct {
	stores     *store.Service
	products   *product.Service
	assortment assortment.Repository
	txManager  tx.Manager
	engine     *reports.QueryEngine
	cloner     *store.Cloner
}

// Config wires the catalog service.
type Config struct {
	Stores     store.Repository
	Products   product.Repository
	Assortment assortment.Repository
	TxManager  tx.Manager // nil means tx.Direct
}

// NewService composes the catalog service from its repositories.
func NewService(cfg Config) *Service {
	txm := cfg.TxManager
	if txm == nil {
		txm = tx.Direct
	}

	stores := store.NewService(cfg.Stores, txm)
	products := product.NewService(cfg.Products, txm)
	index := assortment.NewIndex(cfg.Assortment)

	return &Service{
		stores:     stores,
		products:   products,
		assortment: cfg.Assortment,
		txManager:  txm,
		engine:     reports.NewQueryEngine(stores, products, index),
		cloner:     store.NewCloner(stores),
	}
}

// --- Stores ---

// CreateStore validates the input and persists a new store.
func (s *Service) CreateStore(ctx context.Context, in StoreInput) (*store.Store, error) {
	st := store.NewStore(in.Name, in.Location, in.Email)
	if err := s.stores.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// UpdateStore overwrites name, location and email of an existing store.
func (s *Service) UpdateStore(ctx context.Context, storeID id.ID, in StoreInput) (*store.Store, error) {
	st, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	st.Assign(in.Name, in.Location, in.Email)
	if err := s.stores.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStore removes a store. Fails with NotFound if it does not exist.
// Associations of the store are left in place.
func (s *Service) DeleteStore(ctx context.Context, storeID id.ID) error {
	return s.stores.Delete(ctx, storeID)
}

// FindStoreByID returns a store or NotFound.
func (s *Service) FindStoreByID(ctx context.Context, storeID id.ID) (*store.Store, error) {
	return s.stores.GetByID(ctx, storeID)
}

// ListAllStores returns every store in enumeration order.
func (s *Service) ListAllStores(ctx context.Context) ([]*store.Store, error) {
	return s.stores.List(ctx)
}

// ListStoresByLocation returns stores whose location contains substring.
func (s *Service) ListStoresByLocation(ctx context.Context, substring string) ([]*store.Store, error) {
	return s.stores.FindByLocation(ctx, substring)
}

// ListAllStoresSortedByName returns every store sorted by name.
// The sort is stable and compares names byte-wise.
func (s *Service) ListAllStoresSortedByName(ctx context.Context) ([]*store.Store, error) {
	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return strings.Compare(stores[i].Name, stores[j].Name) < 0
	})
	return stores, nil
}

// CopyStore clones a store under a new identity.
func (s *Service) CopyStore(ctx context.Context, storeID id.ID) (*store.Store, error) {
	return s.cloner.Copy(ctx, storeID)
}

// --- Products ---

// CreateProduct persists a new product and records that storeID sells it.
//
// The product and the association are written in two separate transactions.
// A failure of the second write leaves the product without association.
// The store itself is not checked for existence.
func (s *Service) CreateProduct(ctx context.Context, storeID id.ID, in ProductInput) (*product.Product, error) {
	if in.Price == nil {
		return nil, apperror.NewRequiredField("price")
	}

	p := product.NewProduct(in.Name, *in.Price, in.Category)
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	item := assortment.NewItem(storeID, p.ID)
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.assortment.Create(ctx, item)
	})
	if err != nil {
		logger.Error(ctx, "product stored without assortment link",
			"product_id", p.ID, "store_id", storeID, "error", err)
		return nil, fmt.Errorf("link product %s to store %s: %w", p.ID, storeID, err)
	}

	logger.Info(ctx, "product created", "product_id", p.ID, "store_id", storeID)
	return p, nil
}

// FindProductsByLocation returns products sold on a matching location.
func (s *Service) FindProductsByLocation(ctx context.Context, location *string) ([]*product.Product, error) {
	return s.engine.FindProductsByLocation(ctx, location)
}

// FindUniqueProducts returns products sold by exactly one store.
func (s *Service) FindUniqueProducts(ctx context.Context) ([]*product.Product, error) {
	return s.engine.FindUniqueProducts(ctx)
}
