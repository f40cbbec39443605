package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storecatalog/internal/core/id"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/infrastructure/storage/postgres"
)

// AssortmentRepo implements assortment.Repository over store_products.
// The table has no foreign keys: dangling references surface at query time.
type AssortmentRepo struct {
	txm       *postgres.TxManager
	tableName string
	cols      []string
}

var _ assortment.Repository = (*AssortmentRepo)(nil)

// NewAssortmentRepo creates a new association repository.
func NewAssortmentRepo(txm *postgres.TxManager) *AssortmentRepo {
	return &AssortmentRepo{
		txm:       txm,
		tableName: "store_products",
		cols:      postgres.ExtractDBColumns[assortment.Item](),
	}
}

func (r *AssortmentRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *AssortmentRepo) insertQuery(item *assortment.Item) squirrel.InsertBuilder {
	return r.builder().
		Insert(r.tableName).
		Columns("id", "store_id", "product_id").
		Values(item.ID, item.StoreID, item.ProductID)
}

func (r *AssortmentRepo) listQuery(column string, key id.ID) squirrel.SelectBuilder {
	return r.builder().
		Select(r.cols...).
		From(r.tableName).
		Where(squirrel.Eq{column: key}).
		OrderBy("id")
}

// Create inserts an association.
func (r *AssortmentRepo) Create(ctx context.Context, item *assortment.Item) error {
	sql, args, err := r.insertQuery(item).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, postgres.TranslateError(err, ""))
	}
	return nil
}

// ListByStore returns the associations of a store in insertion order.
func (r *AssortmentRepo) ListByStore(ctx context.Context, storeID id.ID) ([]*assortment.Item, error) {
	return r.list(ctx, r.listQuery("store_id", storeID))
}

// ListByProduct returns the associations of a product in insertion order.
func (r *AssortmentRepo) ListByProduct(ctx context.Context, productID id.ID) ([]*assortment.Item, error) {
	return r.list(ctx, r.listQuery("product_id", productID))
}

func (r *AssortmentRepo) list(ctx context.Context, q squirrel.SelectBuilder) ([]*assortment.Item, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]*assortment.Item, 0)
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}
	return items, nil
}
