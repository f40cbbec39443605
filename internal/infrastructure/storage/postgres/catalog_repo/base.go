// Package catalog_repo provides PostgreSQL implementations for catalog repositories.
package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/internal/infrastructure/storage/postgres"
)

// BaseCatalogRepo provides common CRUD operations for catalog entities.
// Embed this in specific catalog repositories.
type BaseCatalogRepo[T any] struct {
	txm        *postgres.TxManager
	tableName  string
	entityName string
	selectCols []string
	newFn      func() T
}

// NewBaseCatalogRepo creates a new base catalog repository.
func NewBaseCatalogRepo[T any](
	txm *postgres.TxManager,
	tableName string,
	entityName string,
	selectCols []string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		txm:        txm,
		tableName:  tableName,
		entityName: entityName,
		selectCols: selectCols,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseCatalogRepo[T]) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// columnValues returns the known columns of entity, optionally without id.
func (r *BaseCatalogRepo[T]) columnValues(entity T, withID bool) (map[string]any, error) {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return nil, fmt.Errorf("no db tags found in %T", entity)
	}

	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" && !withID {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}
	return filtered, nil
}

func (r *BaseCatalogRepo[T]) insertQuery(entity T) (squirrel.InsertBuilder, error) {
	data, err := r.columnValues(entity, true)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}
	return r.Builder().Insert(r.tableName).SetMap(data), nil
}

// updateQuery overwrites every column except id.
func (r *BaseCatalogRepo[T]) updateQuery(entity T) (squirrel.UpdateBuilder, error) {
	entityID, ok := postgres.StructToMap(entity)["id"]
	if !ok {
		return squirrel.UpdateBuilder{}, fmt.Errorf("%T has no 'id' field with db tag", entity)
	}
	data, err := r.columnValues(entity, false)
	if err != nil {
		return squirrel.UpdateBuilder{}, err
	}
	return r.Builder().
		Update(r.tableName).
		SetMap(data).
		Where(squirrel.Eq{"id": entityID}), nil
}

// baseSelect creates a SELECT builder in enumeration order.
// UUIDv7 ids sort by creation time.
func (r *BaseCatalogRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		OrderBy("id")
}

// Create inserts a new entity using its "db" tags.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	return r.create(ctx, entity, "")
}

func (r *BaseCatalogRepo[T]) create(ctx context.Context, entity T, uniqueValue string) error {
	q, err := r.insertQuery(entity)
	if err != nil {
		return err
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, postgres.TranslateError(err, uniqueValue))
	}
	return nil
}

// Update overwrites an existing entity. A missing row is NotFound.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	return r.update(ctx, entity, "")
}

func (r *BaseCatalogRepo[T]) update(ctx context.Context, entity T, uniqueValue string) error {
	q, err := r.updateQuery(entity)
	if err != nil {
		return err
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, postgres.TranslateError(err, uniqueValue))
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, fmt.Sprint(postgres.StructToMap(entity)["id"]))
	}
	return nil
}

// GetByID retrieves entity by ID.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	return r.FindOne(ctx, r.baseSelect().Where(squirrel.Eq{"id": entityID}).Limit(1), entityID.String())
}

// FindOne executes a SELECT query and returns a single entity.
// key is reported in the NotFound details.
func (r *BaseCatalogRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, key string) (T, error) {
	entity := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.entityName, key)
		}
		return entity, fmt.Errorf("get %s: %w", r.entityName, err)
	}
	return entity, nil
}

// FindAll executes a SELECT query and returns all rows.
func (r *BaseCatalogRepo[T]) FindAll(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]T, 0)
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entityName, err)
	}
	return items, nil
}

// List returns every entity ordered by id.
func (r *BaseCatalogRepo[T]) List(ctx context.Context) ([]T, error) {
	return r.FindAll(ctx, r.baseSelect())
}

// Delete performs physical removal from the database.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName, postgres.TranslateError(err, ""))
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, entityID.String())
	}
	return nil
}
