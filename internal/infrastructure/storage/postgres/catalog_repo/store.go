package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"storecatalog/internal/domain/catalogs/store"
	"storecatalog/internal/infrastructure/storage/postgres"
)

// StoreRepo implements store.Repository.
type StoreRepo struct {
	*BaseCatalogRepo[*store.Store]
}

var _ store.Repository = (*StoreRepo)(nil)

// NewStoreRepo creates a new store repository.
func NewStoreRepo(txm *postgres.TxManager) *StoreRepo {
	return &StoreRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_stores",
			"store",
			postgres.ExtractDBColumns[store.Store](),
			func() *store.Store { return &store.Store{} },
		),
	}
}

// locationQuery matches a literal, case-sensitive substring.
// strpos avoids LIKE wildcards in the user input.
func (r *StoreRepo) locationQuery(substring string) squirrel.SelectBuilder {
	return r.baseSelect().Where(squirrel.Expr("strpos(location, ?) > 0", substring))
}

// FindByLocation returns stores whose location contains substring.
func (r *StoreRepo) FindByLocation(ctx context.Context, substring string) ([]*store.Store, error) {
	return r.FindAll(ctx, r.locationQuery(substring))
}
